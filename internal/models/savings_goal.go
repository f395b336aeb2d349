package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsGoal is a savings target with a committed monthly contribution.
// The monthly contribution counts against the owner's income allocation.
type SavingsGoal struct {
	DefaultModel
	Name                string
	Note                string
	TargetAmount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	MonthlyContribution decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	OwnerID             uuid.UUID
	Active              bool
}

func (s *SavingsGoal) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Note = strings.TrimSpace(s.Note)

	return nil
}

func (s *SavingsGoal) AfterSave(_ *gorm.DB) error {
	if s.MonthlyContribution.IsNegative() {
		return ErrSavingsContributionNegative
	}

	return nil
}
