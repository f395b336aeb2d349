package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v1 "github.com/walletwatch/backend/internal/controllers/v1"
	"github.com/walletwatch/backend/internal/models"
	"github.com/walletwatch/backend/test"
)

func (suite *TestSuiteStandard) TestSavingsGoalsCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings-goals", []v1.SavingsGoalEditable{
		{Name: "Emergency fund", TargetAmount: decimal.NewFromFloat(10000), MonthlyContribution: decimal.NewFromFloat(250), OwnerID: uuid.New(), Active: true},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.SavingsGoalCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	assert.Equal(suite.T(), "Emergency fund", response.Data[0].Data.Name)
	assert.Contains(suite.T(), response.Data[0].Data.Links.Self, "/v1/savings-goals/")
}

func (suite *TestSuiteStandard) TestSavingsGoalsCreateNegativeContribution() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings-goals", []v1.SavingsGoalEditable{
		{Name: "Emergency fund", TargetAmount: decimal.NewFromFloat(10000), MonthlyContribution: decimal.NewFromFloat(-250), OwnerID: uuid.New(), Active: true},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.SavingsGoalCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Error)
	assert.Equal(suite.T(), models.ErrSavingsContributionNegative.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestSavingsGoalsGetFilters() {
	ownerID := uuid.New()

	_ = suite.createTestSavingsGoal(models.SavingsGoal{Name: "Emergency fund", TargetAmount: decimal.NewFromFloat(10000), MonthlyContribution: decimal.NewFromFloat(250), OwnerID: ownerID, Active: true})
	_ = suite.createTestSavingsGoal(models.SavingsGoal{Name: "Done", TargetAmount: decimal.NewFromFloat(500), MonthlyContribution: decimal.NewFromFloat(100), OwnerID: ownerID, Active: false})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/savings-goals?owner=%s&active=true", ownerID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SavingsGoalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	assert.Equal(suite.T(), "Emergency fund", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestSavingsGoalUpdate() {
	goal := suite.createTestSavingsGoal(models.SavingsGoal{Name: "Vacation", TargetAmount: decimal.NewFromFloat(2000), MonthlyContribution: decimal.NewFromFloat(100), OwnerID: uuid.New(), Active: true})

	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/savings-goals/"+goal.ID.String(), map[string]any{
		"monthlyContribution": "150",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SavingsGoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.MonthlyContribution.Equal(decimal.NewFromFloat(150)))
	assert.Equal(suite.T(), "Vacation", response.Data.Name)
}

func (suite *TestSuiteStandard) TestSavingsGoalDelete() {
	goal := suite.createTestSavingsGoal(models.SavingsGoal{Name: "Vacation", TargetAmount: decimal.NewFromFloat(2000), MonthlyContribution: decimal.NewFromFloat(100), OwnerID: uuid.New(), Active: true})

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/savings-goals/"+goal.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/savings-goals/"+goal.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
