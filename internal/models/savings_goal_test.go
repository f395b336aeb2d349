package models_test

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/walletwatch/backend/internal/models"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestSavingsGoalAfterSave() {
	tests := []struct {
		contribution decimal.Decimal
		err          error
	}{
		{decimal.NewFromFloat(-10), models.ErrSavingsContributionNegative},
		{decimal.Zero, nil},
		{decimal.NewFromFloat(250), nil},
	}

	for _, tt := range tests {
		g := models.SavingsGoal{
			MonthlyContribution: tt.contribution,
		}

		err := g.AfterSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err)
	}
}

func (suite *TestSuiteStandard) TestSavingsGoalTrimWhitespace() {
	name := "  Emergency fund \t"
	note := " Three months of expenses    "

	goal := suite.createTestSavingsGoal(models.SavingsGoal{
		Name:                name,
		Note:                note,
		TargetAmount:        decimal.NewFromFloat(10000),
		MonthlyContribution: decimal.NewFromFloat(250),
		OwnerID:             uuid.New(),
		Active:              true,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), goal.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), goal.Note)
}
