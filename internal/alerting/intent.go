package alerting

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/walletwatch/backend/internal/types"
)

// Intent is a decision that a notification should be delivered. It carries
// everything a delivery transport needs; rendering and transport are not the
// engine's concern.
//
// The three variants form a closed set, one per alert level.
type Intent interface {
	Level() Level
	Recipient() uuid.UUID
}

// Alert carries the fields shared by all notification intents.
type Alert struct {
	RecipientID uuid.UUID       `json:"recipientId"`
	BudgetID    uuid.UUID       `json:"budgetId"`
	GroupID     *uuid.UUID      `json:"groupId,omitempty"`
	Month       types.Month     `json:"month"`
	Category    string          `json:"category"`
	Percentage  int64           `json:"percentage"`
	Spent       decimal.Decimal `json:"spent"`
	Limit       decimal.Decimal `json:"limit"`
}

// Recipient returns the user the notification is addressed to.
func (a Alert) Recipient() uuid.UUID {
	return a.RecipientID
}

// WarningAlert fires when a budget reaches 75% usage.
type WarningAlert struct {
	Alert
}

func (WarningAlert) Level() Level { return LevelWarning }

// CriticalAlert fires when a budget reaches 90% usage.
type CriticalAlert struct {
	Alert
}

func (CriticalAlert) Level() Level { return LevelCritical }

// ExceededAlert fires when a budget is fully used up. It additionally
// carries the amount by which the budget is exceeded.
type ExceededAlert struct {
	Alert
	Overage decimal.Decimal `json:"overage"`
}

func (ExceededAlert) Level() Level { return LevelExceeded }

// newIntent builds the intent variant for a level.
func newIntent(level Level, alert Alert) Intent {
	switch level {
	case LevelCritical:
		return CriticalAlert{Alert: alert}
	case LevelExceeded:
		overage := decimal.Zero
		if alert.Spent.GreaterThan(alert.Limit) {
			overage = alert.Spent.Sub(alert.Limit)
		}
		return ExceededAlert{Alert: alert, Overage: overage}
	default:
		return WarningAlert{Alert: alert}
	}
}
