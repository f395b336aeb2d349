package usage

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/walletwatch/backend/internal/models"
	"github.com/walletwatch/backend/internal/types"
)

// Snapshot is the point-in-time usage of one budget. It is derived data,
// never persisted, and always recomputed from the full expense set.
type Snapshot struct {
	Category        string          `json:"category" example:"Groceries"`
	Month           types.Month     `json:"month" example:"2026-08-01T00:00:00Z"`
	BudgetLimit     decimal.Decimal `json:"budgetLimit" example:"500"`
	TotalSpent      decimal.Decimal `json:"totalSpent" example:"200"`
	RemainingAmount decimal.Decimal `json:"remainingAmount" example:"300"`
	PercentageUsed  decimal.Decimal `json:"percentageUsed" example:"40"`
	Status          Status          `json:"status" example:"safe"`
	ExpenseCount    int             `json:"expenseCount" example:"7"`
	Trend           Trend           `json:"trend"`
}

// CalculationInput carries everything the usage calculation needs.
//
// Expenses and PreviousExpenses may contain records outside the target
// category or month, the calculator filters them itself. Now is injected
// for the elapsed-day math and defaults to the wall clock.
type CalculationInput struct {
	Category         string
	BudgetLimit      decimal.Decimal
	Month            types.Month
	Expenses         []models.Expense
	PreviousExpenses []models.Expense
	Now              time.Time
}

// Calculate aggregates the expenses for one category and month into a
// usage snapshot with trend projection.
func Calculate(in CalculationInput) Snapshot {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	total, count := sumCategory(in.Expenses, in.Category, in.Month)
	previousTotal, _ := sumCategory(in.PreviousExpenses, in.Category, in.Month.AddDate(0, -1))

	percentage := decimal.Zero
	if in.BudgetLimit.IsPositive() {
		percentage = total.Div(in.BudgetLimit).Mul(hundred)
	}

	return Snapshot{
		Category:        in.Category,
		Month:           in.Month,
		BudgetLimit:     in.BudgetLimit,
		TotalSpent:      total,
		RemainingAmount: in.BudgetLimit.Sub(total),
		PercentageUsed:  percentage,
		Status:          ClassifyUsage(percentage),
		ExpenseCount:    count,
		Trend:           newTrend(total, previousTotal, in.BudgetLimit, in.Month, now),
	}
}

// sumCategory sums the amounts of all expenses matching the category and
// month and returns the sum together with the number of matches.
func sumCategory(expenses []models.Expense, category string, month types.Month) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0

	for _, expense := range expenses {
		if expense.Category != category || !month.Contains(expense.Date) {
			continue
		}

		total = total.Add(expense.Amount)
		count++
	}

	return total, count
}
