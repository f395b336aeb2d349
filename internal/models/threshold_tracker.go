package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/walletwatch/backend/internal/types"
	"gorm.io/gorm"
)

// ThresholdTracker records which alert thresholds have already fired for one
// budget in one month, so that downstream notification delivery stays
// idempotent.
//
// The (BudgetID, Month) pair is the primary key, therefore the timestamps
// are managed in the Timestamps struct. Trackers are created lazily on the
// first check of a month with all thresholds untriggered. Within a month a
// triggered flag never goes back to false; trackers for past months are
// bulk-deleted by the sweep instead.
type ThresholdTracker struct {
	Timestamps
	BudgetID uuid.UUID   `gorm:"primaryKey"`
	Month    types.Month `gorm:"primaryKey"`
	OwnerID  uuid.UUID
	GroupID  *uuid.UUID
	Category string

	WarningTriggered    bool
	WarningTriggeredAt  *time.Time
	CriticalTriggered   bool
	CriticalTriggeredAt *time.Time
	ExceededTriggered   bool
	ExceededTriggeredAt *time.Time

	LastCheckedAt time.Time
}

func (t *ThresholdTracker) BeforeSave(_ *gorm.DB) error {
	if t.LastCheckedAt.IsZero() {
		t.LastCheckedAt = time.Now().In(time.UTC)
	}

	return nil
}
