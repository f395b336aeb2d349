package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single dated, categorized expense record.
//
// An expense is either personal (GroupID is nil) or belongs to a group.
// The engine only ever reads category, amount and date.
type Expense struct {
	DefaultModel
	Category string
	Note     string
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date     time.Time
	OwnerID  uuid.UUID
	GroupID  *uuid.UUID
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Category = strings.TrimSpace(e.Category)
	e.Note = strings.TrimSpace(e.Note)

	if e.Category == "" {
		return ErrExpenseCategoryRequired
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	}

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if e.Amount.IsNegative() {
		return ErrExpenseAmountNegative
	}

	return nil
}
