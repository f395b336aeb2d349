package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/walletwatch/backend/internal/types"
	"gorm.io/gorm"
)

// scoped narrows a query to a personal or a group scope. A nil groupID means
// the personal scope of ownerID, otherwise all records of the group match
// regardless of which member created them.
func scoped(db *gorm.DB, ownerID uuid.UUID, groupID *uuid.UUID) *gorm.DB {
	if groupID != nil {
		return db.Where("group_id = ?", *groupID)
	}

	return db.Where("owner_id = ? AND group_id IS NULL", ownerID)
}

// ListExpenses returns all expenses for a personal or group scope.
func ListExpenses(ownerID uuid.UUID, groupID *uuid.UUID) ([]Expense, error) {
	var expenses []Expense

	err := scoped(DB, ownerID, groupID).Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("getting expenses failed: %w", err)
	}

	return expenses, nil
}

// ExpensesInMonth returns the expenses of a scope that fall into the month.
// The category filter is left to the usage calculator.
func ExpensesInMonth(ownerID uuid.UUID, groupID *uuid.UUID, month types.Month) ([]Expense, error) {
	var expenses []Expense

	start, end := month.Bounds()
	err := scoped(DB, ownerID, groupID).
		Where("date >= ? AND date <= ?", start, end).
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("getting expenses for %s failed: %w", month, err)
	}

	return expenses, nil
}

// GetBudget returns the budget for a scope, category and month.
// There is at most one, enforced by the unique index.
func GetBudget(ownerID uuid.UUID, groupID *uuid.UUID, category string, month types.Month) (Budget, error) {
	var budget Budget

	err := scoped(DB, ownerID, groupID).
		Where("category = ?", category).
		Where("month >= date(?) AND month < date(?)", month, month.AddDate(0, 1)).
		First(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}

// ListBudgets returns all budgets of a scope for the month.
func ListBudgets(ownerID uuid.UUID, groupID *uuid.UUID, month types.Month) ([]Budget, error) {
	var budgets []Budget

	err := scoped(DB, ownerID, groupID).
		Where("month >= date(?) AND month < date(?)", month, month.AddDate(0, 1)).
		Order("category ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, fmt.Errorf("getting budgets for %s failed: %w", month, err)
	}

	return budgets, nil
}

// BudgetTotal returns the sum of the personal budget limits of a user for the month.
func BudgetTotal(ownerID uuid.UUID, month types.Month) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := DB.Table("budgets").
		Where("owner_id = ? AND group_id IS NULL", ownerID).
		Where("month >= date(?) AND month < date(?)", month, month.AddDate(0, 1)).
		Where("deleted_at IS NULL").
		Select("SUM(monthly_limit)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting budget total failed: %w", err)
	}

	return sum.Decimal, nil
}

// MonthlyIncomeTotal returns the sum of all active income sources of a user,
// converted to their monthly equivalent.
//
// The frequency conversion happens here instead of in SQL so that the
// decimal math stays exact.
func MonthlyIncomeTotal(ownerID uuid.UUID) (decimal.Decimal, error) {
	var sources []IncomeSource

	err := DB.Where("owner_id = ? AND active = ?", ownerID, true).Find(&sources).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting income sources failed: %w", err)
	}

	total := decimal.Zero
	for _, source := range sources {
		total = total.Add(source.MonthlyAmount())
	}

	return total, nil
}

// SavingsCommitmentTotal returns the sum of the monthly contributions of all
// active savings goals of a user.
func SavingsCommitmentTotal(ownerID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := DB.Table("savings_goals").
		Where("owner_id = ? AND active = ?", ownerID, true).
		Where("deleted_at IS NULL").
		Select("SUM(monthly_contribution)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting savings commitments failed: %w", err)
	}

	return sum.Decimal, nil
}
