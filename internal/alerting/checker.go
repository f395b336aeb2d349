package alerting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/walletwatch/backend/internal/models"
	"github.com/walletwatch/backend/internal/types"
)

// TrackerStore persists which thresholds have already fired per budget month.
type TrackerStore interface {
	// GetOrCreate loads the tracker for (tracker.BudgetID, tracker.Month),
	// lazily creating it with all thresholds untriggered.
	GetOrCreate(ctx context.Context, tracker models.ThresholdTracker) (models.ThresholdTracker, error)

	// Claim marks the given levels as triggered and returns the levels this
	// call actually won. A level that is already triggered is not returned,
	// so concurrent checkers cannot both claim the same level. Claim also
	// updates the tracker's last-checked timestamp.
	Claim(ctx context.Context, budgetID uuid.UUID, month types.Month, levels []Level, now time.Time) ([]Level, error)

	// DeleteExpired removes all trackers for months before the given month
	// and returns how many were deleted.
	DeleteExpired(ctx context.Context, before types.Month) (int64, error)
}

// Sink receives notification intents. Delivery is fire-and-forget from the
// engine's perspective.
type Sink interface {
	Emit(ctx context.Context, intent Intent) error
}

// MemberLister resolves the members of a group for notification fan-out.
type MemberLister interface {
	GroupMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
}

// Checker decides which budget alerts are newly due and emits them exactly
// once per budget month. All collaborators are injected, the checker holds
// no ambient state.
type Checker struct {
	Trackers TrackerStore
	Sink     Sink
	Members  MemberLister
}

// Check carries the usage state of one budget at the time of a check.
type Check struct {
	BudgetID   uuid.UUID
	OwnerID    uuid.UUID
	GroupID    *uuid.UUID
	Category   string
	Month      types.Month
	TotalSpent decimal.Decimal
	Limit      decimal.Decimal
	Now        time.Time
}

// CheckBudget determines which alert thresholds the budget has newly
// crossed, emits one notification intent per due threshold and recipient,
// and persists the thresholds as triggered.
//
// A threshold is claimed in the store before its intents are emitted. If
// emission then fails, the threshold stays triggered: delivery is
// at-most-once with no automatic redelivery, which avoids alert storms on
// retry. A single check can fire several thresholds at once, e.g. an
// expense that jumps usage from 60% to 105% fires all three.
//
// CheckBudget never returns an error. This runs inside the caller's primary
// write path (saving an expense); failures here are logged and swallowed so
// they cannot abort that write. The emitted intents are returned for
// observability.
func (c Checker) CheckBudget(ctx context.Context, check Check) []Intent {
	now := check.Now
	if now.IsZero() {
		now = time.Now().In(time.UTC)
	}

	percentage := usagePercentage(check.TotalSpent, check.Limit)

	tracker, err := c.Trackers.GetOrCreate(ctx, models.ThresholdTracker{
		BudgetID: check.BudgetID,
		Month:    check.Month,
		OwnerID:  check.OwnerID,
		GroupID:  check.GroupID,
		Category: check.Category,
	})
	if err != nil {
		log.Error().Err(err).Str("budget", check.BudgetID.String()).Msg("threshold check: loading tracker failed")
		return nil
	}

	due := make([]Level, 0, len(Levels))
	for _, level := range Levels {
		if percentage >= level.Threshold() && !triggered(tracker, level) {
			due = append(due, level)
		}
	}

	claimed, err := c.Trackers.Claim(ctx, check.BudgetID, check.Month, due, now)
	if err != nil {
		log.Error().Err(err).Str("budget", check.BudgetID.String()).Msg("threshold check: claiming thresholds failed")
	}

	if len(claimed) == 0 {
		return nil
	}

	recipients := c.recipients(ctx, check)

	intents := make([]Intent, 0, len(claimed)*len(recipients))
	for _, level := range claimed {
		for _, recipient := range recipients {
			intent := newIntent(level, Alert{
				RecipientID: recipient,
				BudgetID:    check.BudgetID,
				GroupID:     check.GroupID,
				Month:       check.Month,
				Category:    check.Category,
				Percentage:  percentage,
				Spent:       check.TotalSpent,
				Limit:       check.Limit,
			})

			if err := c.Sink.Emit(ctx, intent); err != nil {
				log.Error().Err(err).
					Str("budget", check.BudgetID.String()).
					Str("level", string(level)).
					Msg("threshold check: emitting notification failed")
				continue
			}

			alertsEmitted.WithLabelValues(string(level)).Inc()
			intents = append(intents, intent)
		}
	}

	return intents
}

// recipients resolves who gets notified: the owner for personal budgets,
// every member for group budgets. If member resolution fails, the owner is
// notified as a fallback rather than nobody.
func (c Checker) recipients(ctx context.Context, check Check) []uuid.UUID {
	if check.GroupID == nil || c.Members == nil {
		return []uuid.UUID{check.OwnerID}
	}

	members, err := c.Members.GroupMembers(ctx, *check.GroupID)
	if err != nil || len(members) == 0 {
		if err != nil {
			log.Error().Err(err).Str("group", check.GroupID.String()).Msg("threshold check: resolving group members failed")
		}
		return []uuid.UUID{check.OwnerID}
	}

	return members
}

// usagePercentage returns the usage percentage rounded to the nearest
// integer. This rounding is for threshold comparison only, the display
// percentage stays exact.
func usagePercentage(spent, limit decimal.Decimal) int64 {
	if !limit.IsPositive() {
		return 0
	}

	return spent.Div(limit).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func triggered(tracker models.ThresholdTracker, level Level) bool {
	switch level {
	case LevelCritical:
		return tracker.CriticalTriggered
	case LevelExceeded:
		return tracker.ExceededTriggered
	default:
		return tracker.WarningTriggered
	}
}
