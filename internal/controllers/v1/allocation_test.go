package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v1 "github.com/walletwatch/backend/internal/controllers/v1"
	"github.com/walletwatch/backend/internal/models"
	"github.com/walletwatch/backend/internal/types"
	"github.com/walletwatch/backend/test"
)

func (suite *TestSuiteStandard) TestAllocationGet() {
	ownerID := uuid.New()
	month := types.NewMonth(2026, 8)

	_ = suite.createTestIncomeSource(models.IncomeSource{Name: "Salary", Amount: decimal.NewFromFloat(3000), Frequency: models.IncomeFrequencyMonthly, OwnerID: ownerID, Active: true})
	_ = suite.createTestBudget(models.Budget{Category: "Groceries", MonthlyLimit: decimal.NewFromFloat(400), Month: month, OwnerID: ownerID})
	_ = suite.createTestBudget(models.Budget{Category: "Dining", MonthlyLimit: decimal.NewFromFloat(150), Month: month, OwnerID: ownerID})
	_ = suite.createTestSavingsGoal(models.SavingsGoal{Name: "Emergency fund", TargetAmount: decimal.NewFromFloat(10000), MonthlyContribution: decimal.NewFromFloat(250), OwnerID: ownerID, Active: true})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/allocation?owner=%s&month=2026-08", ownerID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	assert.True(suite.T(), response.Data.TotalMonthlyIncome.Equal(decimal.NewFromFloat(3000)))
	assert.True(suite.T(), response.Data.TotalBudgets.Equal(decimal.NewFromFloat(550)))
	assert.True(suite.T(), response.Data.TotalSavings.Equal(decimal.NewFromFloat(250)))
	assert.True(suite.T(), response.Data.TotalAllocated.Equal(decimal.NewFromFloat(800)))
	assert.True(suite.T(), response.Data.Unallocated.Equal(decimal.NewFromFloat(2200)))
	assert.True(suite.T(), response.Data.IsValid)
}

// Candidate deltas are applied without committing anything, so the client
// can validate a planned budget before creating it.
func (suite *TestSuiteStandard) TestAllocationGetWithDeltas() {
	ownerID := uuid.New()

	_ = suite.createTestIncomeSource(models.IncomeSource{Name: "Salary", Amount: decimal.NewFromFloat(1000), Frequency: models.IncomeFrequencyMonthly, OwnerID: ownerID, Active: true})
	_ = suite.createTestBudget(models.Budget{Category: "Groceries", MonthlyLimit: decimal.NewFromFloat(400), Month: types.NewMonth(2026, 8), OwnerID: ownerID})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/allocation?owner=%s&month=2026-08&budgetDelta=500&savingsDelta=200", ownerID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	assert.True(suite.T(), response.Data.TotalAllocated.Equal(decimal.NewFromFloat(1100)))
	assert.True(suite.T(), response.Data.OverAllocation.Equal(decimal.NewFromFloat(100)))
	assert.False(suite.T(), response.Data.IsValid)

	// The deltas were not persisted
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Budget{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestAllocationGetNoOwner() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/allocation", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAllocationGetInvalidMonth() {
	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/allocation?owner=%s&month=whenever", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
