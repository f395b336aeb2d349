package v1

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/walletwatch/backend/internal/alerting"
	"github.com/walletwatch/backend/internal/models"
	"github.com/walletwatch/backend/internal/types"
	"github.com/walletwatch/backend/internal/usage"
)

// newChecker wires the alerting engine to the database and the log sink.
func newChecker() alerting.Checker {
	return alerting.Checker{
		Trackers: alerting.GormTrackerStore{DB: models.DB},
		Sink:     alerting.LogSink{Logger: log.Logger},
		Members:  alerting.GormMemberLister{DB: models.DB},
	}
}

// snapshotForBudget recomputes the usage snapshot for a budget from the full
// expense set of its scope. Snapshots are never cached.
func snapshotForBudget(budget models.Budget, now time.Time) (usage.Snapshot, error) {
	current, err := models.ExpensesInMonth(budget.OwnerID, budget.GroupID, budget.Month)
	if err != nil {
		return usage.Snapshot{}, err
	}

	previous, err := models.ExpensesInMonth(budget.OwnerID, budget.GroupID, budget.Month.AddDate(0, -1))
	if err != nil {
		return usage.Snapshot{}, err
	}

	return usage.Calculate(usage.CalculationInput{
		Category:         budget.Category,
		BudgetLimit:      budget.MonthlyLimit,
		Month:            budget.Month,
		Expenses:         current,
		PreviousExpenses: previous,
		Now:              now,
	}), nil
}

// checkBudgetThresholds runs the threshold check for the budget the expense
// counts against, if one exists.
//
// This runs after the expense is saved. Whatever goes wrong here is logged
// and swallowed: a failed alert check must never fail the expense write.
func checkBudgetThresholds(ctx context.Context, expense models.Expense) {
	month := types.MonthOf(expense.Date)

	budget, err := models.GetBudget(expense.OwnerID, expense.GroupID, expense.Category, month)
	if err != nil {
		if !errors.Is(err, models.ErrResourceNotFound) {
			log.Error().Err(err).Msg("threshold check: loading budget failed")
		}
		return
	}

	snapshot, err := snapshotForBudget(budget, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("threshold check: computing usage failed")
		return
	}

	newChecker().CheckBudget(ctx, alerting.Check{
		BudgetID:   budget.ID,
		OwnerID:    budget.OwnerID,
		GroupID:    budget.GroupID,
		Category:   budget.Category,
		Month:      budget.Month,
		TotalSpent: snapshot.TotalSpent,
		Limit:      budget.MonthlyLimit,
	})
}

// allocationForOwner computes the allocation state of a user with the given
// candidate deltas applied.
func allocationForOwner(ownerID uuid.UUID, month types.Month, budgetDelta, savingsDelta decimal.Decimal) (usage.AllocationResult, error) {
	income, err := models.MonthlyIncomeTotal(ownerID)
	if err != nil {
		return usage.AllocationResult{}, err
	}

	budgets, err := models.BudgetTotal(ownerID, month)
	if err != nil {
		return usage.AllocationResult{}, err
	}

	savings, err := models.SavingsCommitmentTotal(ownerID)
	if err != nil {
		return usage.AllocationResult{}, err
	}

	return usage.ValidateAllocation(usage.AllocationInput{
		MonthlyIncome: income,
		BudgetTotal:   budgets,
		SavingsTotal:  savings,
		BudgetDelta:   budgetDelta,
		SavingsDelta:  savingsDelta,
	}), nil
}
