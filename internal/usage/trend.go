package usage

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/walletwatch/backend/internal/types"
)

// Trend describes how spending develops over the month.
//
// The projection is a linear run-rate extrapolation from the average daily
// rate observed so far. It intentionally ignores seasonality and day-of-week
// patterns; this is a dashboard hint, not a statistical forecast.
type Trend struct {
	ComparedToPreviousMonth   decimal.Decimal `json:"comparedToPreviousMonth" example:"-12.5"` // percentage delta vs. the prior month's total
	AverageSpendingRate       decimal.Decimal `json:"averageSpendingRate" example:"20"`        // spend per elapsed day
	ProjectedEndOfPeriodTotal decimal.Decimal `json:"projectedEndOfPeriodTotal" example:"600"`
	DaysUntilOverBudget       *int            `json:"daysUntilOverBudget,omitempty" example:"15"`
}

// newTrend computes the month-over-month delta and the end-of-month
// projection for the given totals.
//
// DaysUntilOverBudget is only set when the projection exceeds the limit and
// money is actually flowing; nil is semantically distinct from "0 days left".
func newTrend(currentTotal, previousTotal, limit decimal.Decimal, month types.Month, now time.Time) Trend {
	trend := Trend{
		ComparedToPreviousMonth:   decimal.Zero,
		AverageSpendingRate:       decimal.Zero,
		ProjectedEndOfPeriodTotal: currentTotal,
	}

	if previousTotal.IsPositive() {
		trend.ComparedToPreviousMonth = currentTotal.Sub(previousTotal).Div(previousTotal).Mul(hundred)
	}

	daysPassed := month.ElapsedDays(now)
	if daysPassed == 0 {
		return trend
	}

	trend.AverageSpendingRate = currentTotal.Div(decimal.NewFromInt(int64(daysPassed)))

	daysRemaining := month.Days() - daysPassed
	trend.ProjectedEndOfPeriodTotal = currentTotal.Add(trend.AverageSpendingRate.Mul(decimal.NewFromInt(int64(daysRemaining))))

	if trend.ProjectedEndOfPeriodTotal.GreaterThan(limit) && trend.AverageSpendingRate.IsPositive() {
		days := int(limit.Sub(currentTotal).Div(trend.AverageSpendingRate).Ceil().IntPart())
		if days < 0 {
			// Already over budget
			days = 0
		}
		trend.DaysUntilOverBudget = &days
	}

	return trend
}
