package models_test

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/walletwatch/backend/internal/models"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestExpenseTrimWhitespace() {
	category := "  Groceries \t"
	note := " Weekly shopping    "

	expense := suite.createTestExpense(models.Expense{
		Category: category,
		Note:     note,
		Amount:   decimal.NewFromFloat(17.32),
		OwnerID:  uuid.New(),
	})

	assert.Equal(suite.T(), strings.TrimSpace(category), expense.Category)
	assert.Equal(suite.T(), strings.TrimSpace(note), expense.Note)
}

func (suite *TestSuiteStandard) TestExpenseCategoryRequired() {
	err := models.DB.Create(&models.Expense{
		Amount:  decimal.NewFromFloat(10),
		OwnerID: uuid.New(),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrExpenseCategoryRequired)
}

func (suite *TestSuiteStandard) TestExpenseDateDefaults() {
	expense := suite.createTestExpense(models.Expense{
		Category: "Groceries",
		Amount:   decimal.NewFromFloat(10),
		OwnerID:  uuid.New(),
	})

	assert.False(suite.T(), expense.Date.IsZero())
	assert.WithinDuration(suite.T(), time.Now(), expense.Date, time.Minute)
}

func (suite *TestSuiteStandard) TestExpenseAfterSave() {
	tests := []struct {
		amount decimal.Decimal
		err    error
	}{
		{decimal.NewFromFloat(-10), models.ErrExpenseAmountNegative},
		{decimal.Zero, nil},
		{decimal.NewFromFloat(17.32), nil},
	}

	for _, tt := range tests {
		e := models.Expense{
			Amount: tt.amount,
		}

		err := e.AfterSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err)
	}
}
