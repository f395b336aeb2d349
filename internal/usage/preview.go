package usage

import "github.com/shopspring/decimal"

// Impact is the hypothetical effect of committing one more expense against a
// budget. Nothing is persisted; callers use it to warn the user before the
// expense is saved.
type Impact struct {
	TotalSpent       decimal.Decimal `json:"totalSpent" example:"510"`
	RemainingAmount  decimal.Decimal `json:"remainingAmount" example:"-10"`
	PercentageUsed   decimal.Decimal `json:"percentageUsed" example:"102"`
	Status           Status          `json:"status" example:"over"`
	WillExceedBudget bool            `json:"willExceedBudget" example:"true"`
	StatusWillChange bool            `json:"statusWillChange" example:"true"`
}

// PreviewExpense computes the snapshot state after adding amount to the
// current snapshot and reports whether that would exceed the budget or
// change the display status.
func PreviewExpense(before Snapshot, amount decimal.Decimal) Impact {
	total := before.TotalSpent.Add(amount)

	percentage := decimal.Zero
	if before.BudgetLimit.IsPositive() {
		percentage = total.Div(before.BudgetLimit).Mul(hundred)
	}

	status := ClassifyUsage(percentage)

	return Impact{
		TotalSpent:       total,
		RemainingAmount:  before.BudgetLimit.Sub(total),
		PercentageUsed:   percentage,
		Status:           status,
		WillExceedBudget: percentage.GreaterThan(hundred),
		StatusWillChange: status != before.Status,
	}
}
