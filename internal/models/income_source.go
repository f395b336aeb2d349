package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeFrequency is how often an income source pays out.
type IncomeFrequency string

const (
	IncomeFrequencyMonthly  IncomeFrequency = "monthly"
	IncomeFrequencyBiweekly IncomeFrequency = "biweekly"
	IncomeFrequencyWeekly   IncomeFrequency = "weekly"
	IncomeFrequencyYearly   IncomeFrequency = "yearly"
	IncomeFrequencyOnce     IncomeFrequency = "once"
)

// IncomeSource is a declared source of income for a user.
type IncomeSource struct {
	DefaultModel
	Name      string
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Frequency IncomeFrequency
	OwnerID   uuid.UUID
	Active    bool
}

func (i *IncomeSource) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)

	switch i.Frequency {
	case IncomeFrequencyMonthly, IncomeFrequencyBiweekly, IncomeFrequencyWeekly, IncomeFrequencyYearly, IncomeFrequencyOnce:
	default:
		return ErrIncomeFrequencyInvalid
	}

	return nil
}

func (i *IncomeSource) AfterSave(_ *gorm.DB) error {
	if i.Amount.IsNegative() {
		return ErrIncomeAmountNegative
	}

	return nil
}

var (
	twelve    = decimal.NewFromInt(12)
	twentySix = decimal.NewFromInt(26)
	fiftyTwo  = decimal.NewFromInt(52)
)

// MonthlyAmount converts the income to its monthly equivalent.
// One-time income does not contribute to recurring monthly income.
func (i IncomeSource) MonthlyAmount() decimal.Decimal {
	switch i.Frequency {
	case IncomeFrequencyBiweekly:
		return i.Amount.Mul(twentySix).Div(twelve)
	case IncomeFrequencyWeekly:
		return i.Amount.Mul(fiftyTwo).Div(twelve)
	case IncomeFrequencyYearly:
		return i.Amount.Div(twelve)
	case IncomeFrequencyOnce:
		return decimal.Zero
	default:
		return i.Amount
	}
}
