package alerting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/walletwatch/backend/internal/models"
	"github.com/walletwatch/backend/internal/types"
	"gorm.io/gorm"
)

// GormTrackerStore is the database-backed TrackerStore.
type GormTrackerStore struct {
	DB *gorm.DB
}

var _ TrackerStore = GormTrackerStore{}

// GetOrCreate loads the tracker for the budget month, creating it with all
// thresholds untriggered if it does not exist yet.
func (s GormTrackerStore) GetOrCreate(ctx context.Context, tracker models.ThresholdTracker) (models.ThresholdTracker, error) {
	var result models.ThresholdTracker

	err := s.DB.WithContext(ctx).
		Where(models.ThresholdTracker{BudgetID: tracker.BudgetID, Month: tracker.Month}).
		Attrs(tracker).
		FirstOrCreate(&result).Error
	if err != nil {
		return models.ThresholdTracker{}, fmt.Errorf("loading threshold tracker failed: %w", err)
	}

	return result, nil
}

// Claim sets the triggered flag for each level with a conditional update:
// the flag is only set where it is currently false, and only levels whose
// update changed a row are returned. Two concurrent claims for the same
// level therefore resolve to exactly one winner in the database.
func (s GormTrackerStore) Claim(ctx context.Context, budgetID uuid.UUID, month types.Month, levels []Level, now time.Time) ([]Level, error) {
	claimed := make([]Level, 0, len(levels))

	for _, level := range levels {
		res := s.DB.WithContext(ctx).
			Model(&models.ThresholdTracker{}).
			Where("budget_id = ? AND month = ?", budgetID, month).
			Where(fmt.Sprintf("%s_triggered = ?", level), false).
			Updates(map[string]any{
				fmt.Sprintf("%s_triggered", level):    true,
				fmt.Sprintf("%s_triggered_at", level): now,
			})
		if res.Error != nil {
			return claimed, fmt.Errorf("claiming %s threshold failed: %w", level, res.Error)
		}

		if res.RowsAffected == 1 {
			claimed = append(claimed, level)
		}
	}

	err := s.DB.WithContext(ctx).
		Model(&models.ThresholdTracker{}).
		Where("budget_id = ? AND month = ?", budgetID, month).
		Update("last_checked_at", now).Error
	if err != nil {
		return claimed, fmt.Errorf("updating tracker check timestamp failed: %w", err)
	}

	return claimed, nil
}

// DeleteExpired removes all trackers for months strictly before the given
// month. Trackers are the only mutable state of the alerting engine;
// deleting a month's tracker re-arms all thresholds for that budget.
func (s GormTrackerStore) DeleteExpired(ctx context.Context, before types.Month) (int64, error) {
	res := s.DB.WithContext(ctx).
		Unscoped().
		Where("month < ?", before).
		Delete(&models.ThresholdTracker{})
	if res.Error != nil {
		return 0, fmt.Errorf("deleting expired trackers failed: %w", res.Error)
	}

	trackerSweeps.Inc()
	return res.RowsAffected, nil
}
