package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/walletwatch/backend/internal/types"
	"gorm.io/gorm"
)

// Budget is a spending limit for one category in one month.
//
// A budget is scoped to either a single user or a group. There is at most
// one budget per scope, category and month, enforced by the unique index.
type Budget struct {
	DefaultModel
	Category     string          `gorm:"uniqueIndex:budget_scope_category_month"`
	Note         string
	MonthlyLimit decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Month        types.Month     `gorm:"uniqueIndex:budget_scope_category_month"`
	OwnerID      uuid.UUID       `gorm:"uniqueIndex:budget_scope_category_month"`
	GroupID      *uuid.UUID      `gorm:"uniqueIndex:budget_scope_category_month"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)
	b.Note = strings.TrimSpace(b.Note)

	if b.Category == "" {
		return ErrBudgetCategoryRequired
	}

	return nil
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	// SQLite treats NULLs as distinct in unique indexes, so the index does
	// not catch duplicate personal budgets. Check those here.
	if b.GroupID != nil {
		return nil
	}

	var count int64
	err := tx.Model(&Budget{}).
		Where("category = ? AND owner_id = ? AND group_id IS NULL", strings.TrimSpace(b.Category), b.OwnerID).
		Where("month >= date(?) AND month < date(?)", b.Month, b.Month.AddDate(0, 1)).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrBudgetNotUnique
	}

	return nil
}

// Non-positive limits are rejected here so that the usage calculators
// never see a budget they would have to guard against.
func (b *Budget) AfterSave(_ *gorm.DB) error {
	if !b.MonthlyLimit.IsPositive() {
		return ErrBudgetLimitNotPositive
	}

	return nil
}
