// Package alerting implements the per-budget, per-month threshold tracking
// that keeps notification delivery idempotent.
//
// Each budget month has three alert trip-points. They are deliberately not
// the same numbers as the display status bins in the usage package: the
// warning alert fires at 75% while the warning status begins at 71%. The two
// tables must stay independent.
package alerting

// Level is one of the three alert trip-points of a budget month.
type Level string

const (
	LevelWarning  Level = "warning"
	LevelCritical Level = "critical"
	LevelExceeded Level = "exceeded"
)

// Levels contains all levels, ordered from lowest to highest threshold.
var Levels = []Level{LevelWarning, LevelCritical, LevelExceeded}

// Threshold returns the usage percentage at which the level fires.
func (l Level) Threshold() int64 {
	switch l {
	case LevelCritical:
		return 90
	case LevelExceeded:
		return 100
	default:
		return 75
	}
}
