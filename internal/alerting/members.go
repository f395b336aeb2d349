package alerting

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/walletwatch/backend/internal/models"
	"gorm.io/gorm"
)

// GormMemberLister resolves group members from the membership table that the
// account service maintains.
type GormMemberLister struct {
	DB *gorm.DB
}

var _ MemberLister = GormMemberLister{}

func (l GormMemberLister) GroupMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	var members []models.GroupMember

	err := l.DB.WithContext(ctx).Where("group_id = ?", groupID).Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("getting group members failed: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		ids = append(ids, member.UserID)
	}

	return ids, nil
}
