package models

import (
	"github.com/google/uuid"
)

// GroupMember maps a user into a group. Membership and roles are managed by
// the account service; the backend only reads this table to fan out group
// budget notifications.
type GroupMember struct {
	Timestamps
	GroupID uuid.UUID `gorm:"primaryKey"`
	UserID  uuid.UUID `gorm:"primaryKey"`
}
