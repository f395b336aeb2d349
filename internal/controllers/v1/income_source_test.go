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

func (suite *TestSuiteStandard) TestIncomeSourcesCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/income-sources", []v1.IncomeSourceEditable{
		{Name: "Salary", Amount: decimal.NewFromFloat(2800), Frequency: models.IncomeFrequencyMonthly, OwnerID: uuid.New(), Active: true},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.IncomeSourceCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	assert.Equal(suite.T(), "Salary", response.Data[0].Data.Name)
	assert.True(suite.T(), response.Data[0].Data.MonthlyAmount.Equal(decimal.NewFromFloat(2800)))
}

func (suite *TestSuiteStandard) TestIncomeSourcesCreateInvalidFrequency() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/income-sources", []v1.IncomeSourceEditable{
		{Name: "Salary", Amount: decimal.NewFromFloat(2800), Frequency: "daily", OwnerID: uuid.New(), Active: true},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.IncomeSourceCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Error)
	assert.Equal(suite.T(), models.ErrIncomeFrequencyInvalid.Error(), *response.Data[0].Error)
}

// The monthly equivalent in the response normalizes the frequency, weekly
// income shows up as amount * 52 / 12.
func (suite *TestSuiteStandard) TestIncomeSourcesCreateWeekly() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/income-sources", []v1.IncomeSourceEditable{
		{Name: "Side job", Amount: decimal.NewFromFloat(300), Frequency: models.IncomeFrequencyWeekly, OwnerID: uuid.New(), Active: true},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.IncomeSourceCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	assert.True(suite.T(), response.Data[0].Data.MonthlyAmount.Equal(decimal.NewFromFloat(1300)))
}

func (suite *TestSuiteStandard) TestIncomeSourcesGetFilters() {
	ownerID := uuid.New()

	_ = suite.createTestIncomeSource(models.IncomeSource{Name: "Salary", Amount: decimal.NewFromFloat(3000), OwnerID: ownerID, Active: true})
	_ = suite.createTestIncomeSource(models.IncomeSource{Name: "Old job", Amount: decimal.NewFromFloat(2000), OwnerID: ownerID, Active: false})
	_ = suite.createTestIncomeSource(models.IncomeSource{Name: "Other user", Amount: decimal.NewFromFloat(1000), OwnerID: uuid.New(), Active: true})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/income-sources?owner=%s", ownerID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.IncomeSourceListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/income-sources?owner=%s&active=true", ownerID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	assert.Equal(suite.T(), "Salary", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestIncomeSourceGetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/income-sources/"+uuid.New().String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestIncomeSourceUpdate() {
	source := suite.createTestIncomeSource(models.IncomeSource{Name: "Salary", Amount: decimal.NewFromFloat(2800), OwnerID: uuid.New(), Active: true})

	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/income-sources/"+source.ID.String(), map[string]any{
		"active": false,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.IncomeSourceResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.False(suite.T(), response.Data.Active)
	assert.Equal(suite.T(), "Salary", response.Data.Name)
}

func (suite *TestSuiteStandard) TestIncomeSourceDelete() {
	source := suite.createTestIncomeSource(models.IncomeSource{Name: "Salary", Amount: decimal.NewFromFloat(2800), OwnerID: uuid.New(), Active: true})

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/income-sources/"+source.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/income-sources/"+source.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
