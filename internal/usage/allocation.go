package usage

import "github.com/shopspring/decimal"

// AllocationInput carries the already-summed totals the validator compares.
// The sums come from the store layer; the validator itself never reads state.
type AllocationInput struct {
	MonthlyIncome decimal.Decimal
	BudgetTotal   decimal.Decimal
	SavingsTotal  decimal.Decimal

	// Candidate changes that have not been committed yet. Zero when
	// validating the current state as-is.
	BudgetDelta  decimal.Decimal
	SavingsDelta decimal.Decimal
}

// AllocationResult reports whether the planned budgets and savings
// commitments fit into the declared income.
//
// Over-allocation is a soft constraint: callers surface the result as a
// warning and let the user proceed anyway, it is never a hard rejection.
type AllocationResult struct {
	TotalMonthlyIncome decimal.Decimal `json:"totalMonthlyIncome" example:"4000"`
	TotalBudgets       decimal.Decimal `json:"totalBudgets" example:"3500"`
	TotalSavings       decimal.Decimal `json:"totalSavings" example:"800"`
	TotalAllocated     decimal.Decimal `json:"totalAllocated" example:"4300"`
	Unallocated        decimal.Decimal `json:"unallocated" example:"-300"`
	OverAllocation     decimal.Decimal `json:"overAllocation" example:"300"`
	IsValid            bool            `json:"isValid" example:"false"`
}

// ValidateAllocation recomputes the allocation as if the candidate deltas
// were applied, without mutating anything.
func ValidateAllocation(in AllocationInput) AllocationResult {
	budgets := in.BudgetTotal.Add(in.BudgetDelta)
	savings := in.SavingsTotal.Add(in.SavingsDelta)
	allocated := budgets.Add(savings)
	unallocated := in.MonthlyIncome.Sub(allocated)

	overAllocation := decimal.Zero
	if allocated.GreaterThan(in.MonthlyIncome) {
		overAllocation = allocated.Sub(in.MonthlyIncome)
	}

	return AllocationResult{
		TotalMonthlyIncome: in.MonthlyIncome,
		TotalBudgets:       budgets,
		TotalSavings:       savings,
		TotalAllocated:     allocated,
		Unallocated:        unallocated,
		OverAllocation:     overAllocation,
		IsValid:            !unallocated.IsNegative(),
	}
}
