// Package usage implements the budget usage calculators.
//
// Everything in this package is a pure function of its inputs: no database
// access, no hidden state. Snapshots are recomputed from the full expense
// set on every call instead of being maintained incrementally, which trades
// compute for freedom from drift.
package usage

import "github.com/shopspring/decimal"

// Status describes how much of a budget is used, for display purposes.
type Status string

const (
	StatusSafe     Status = "safe"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
	StatusOver     Status = "over"
)

// Rank orders statuses from safe to over.
func (s Status) Rank() int {
	switch s {
	case StatusWarning:
		return 1
	case StatusCritical:
		return 2
	case StatusOver:
		return 3
	default:
		return 0
	}
}

var (
	hundred = decimal.NewFromInt(100)
	ninety  = decimal.NewFromInt(90)
	seventy = decimal.NewFromInt(70)
)

// ClassifyUsage maps a usage percentage to a display status.
//
// The bins are evaluated high to low: over 100 is "over", 91-100 is
// "critical", 71-90 is "warning", everything below is "safe".
//
// These display bins are intentionally offset from the 75/90/100 alert
// thresholds in the alerting package. Unifying the two tables would change
// observable alert timing, so keep them separate.
func ClassifyUsage(percentage decimal.Decimal) Status {
	switch {
	case percentage.GreaterThan(hundred):
		return StatusOver
	case percentage.GreaterThan(ninety):
		return StatusCritical
	case percentage.GreaterThan(seventy):
		return StatusWarning
	default:
		return StatusSafe
	}
}
