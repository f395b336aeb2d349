package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v1 "github.com/walletwatch/backend/internal/controllers/v1"
	"github.com/walletwatch/backend/internal/models"
	"github.com/walletwatch/backend/internal/types"
	"github.com/walletwatch/backend/internal/usage"
	"github.com/walletwatch/backend/test"
)

func (suite *TestSuiteStandard) TestExpensesCreate() {
	ownerID := uuid.New()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{
		{Category: "Groceries", Amount: decimal.NewFromFloat(17.32), Date: time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC), OwnerID: ownerID},
		{Category: "Dining", Amount: decimal.NewFromFloat(42), Date: time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC), OwnerID: ownerID},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 2) {
		assert.Equal(suite.T(), "Groceries", response.Data[0].Data.Category)
		assert.Contains(suite.T(), response.Data[0].Data.Links.Self, "/v1/expenses/")
	}
}

func (suite *TestSuiteStandard) TestExpensesCreateInvalidBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", `{ "this is not valid JSON`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpensesCreateNegativeAmount() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{
		{Category: "Groceries", Amount: decimal.NewFromFloat(-10), OwnerID: uuid.New()},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 1) {
		assert.Equal(suite.T(), models.ErrExpenseAmountNegative.Error(), *response.Data[0].Error)
	}
}

// Saving an expense that crosses a threshold marks the tracker, and the
// tracker stays marked for subsequent expenses.
func (suite *TestSuiteStandard) TestExpensesCreateMarksThresholds() {
	ownerID := uuid.New()
	budget := suite.createTestBudget(models.Budget{
		Category:     "Groceries",
		MonthlyLimit: decimal.NewFromFloat(100),
		Month:        types.NewMonth(2026, 8),
		OwnerID:      ownerID,
	})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{
		{Category: "Groceries", Amount: decimal.NewFromFloat(80), Date: time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC), OwnerID: ownerID},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var tracker models.ThresholdTracker
	suite.Require().Nil(models.DB.First(&tracker, "budget_id = ?", budget.ID).Error)
	assert.True(suite.T(), tracker.WarningTriggered)
	assert.False(suite.T(), tracker.CriticalTriggered)
	assert.False(suite.T(), tracker.ExceededTriggered)

	// The next expense pushes usage past the limit, firing the remaining
	// two levels
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{
		{Category: "Groceries", Amount: decimal.NewFromFloat(25), Date: time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC), OwnerID: ownerID},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	suite.Require().Nil(models.DB.First(&tracker, "budget_id = ?", budget.ID).Error)
	assert.True(suite.T(), tracker.CriticalTriggered)
	assert.True(suite.T(), tracker.ExceededTriggered)
}

// An expense without a matching budget saves fine, there is just nothing to
// alert on.
func (suite *TestSuiteStandard) TestExpensesCreateWithoutBudget() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{
		{Category: "Groceries", Amount: decimal.NewFromFloat(80), Date: time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC), OwnerID: uuid.New()},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.ThresholdTracker{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestExpensesGetFilters() {
	ownerID := uuid.New()

	_ = suite.createTestExpense(models.Expense{Category: "Groceries", Amount: decimal.NewFromFloat(10), OwnerID: ownerID, Date: time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestExpense(models.Expense{Category: "Gross income tax", Amount: decimal.NewFromFloat(20), OwnerID: ownerID, Date: time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestExpense(models.Expense{Category: "Dining", Amount: decimal.NewFromFloat(30), OwnerID: ownerID, Date: time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestExpense(models.Expense{Category: "Groceries", Amount: decimal.NewFromFloat(40), OwnerID: ownerID, Date: time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)})

	tests := []struct {
		query string
		count int
	}{
		{fmt.Sprintf("owner=%s", ownerID), 4},
		{fmt.Sprintf("owner=%s&month=2026-08", ownerID), 3},
		{fmt.Sprintf("owner=%s&category=Groceries", ownerID), 2},
		{fmt.Sprintf("owner=%s&category=Gro*", ownerID), 3},
		{fmt.Sprintf("owner=%s&category=Gro*&month=2026-08", ownerID), 2},
		{"owner=" + uuid.New().String(), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/expenses?"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetPagination() {
	ownerID := uuid.New()
	for i := 0; i < 5; i++ {
		_ = suite.createTestExpense(models.Expense{Category: "Groceries", Amount: decimal.NewFromFloat(10), OwnerID: ownerID, Date: time.Date(2026, 8, 3+i, 0, 0, 0, 0, time.UTC)})
	}

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?owner=%s&offset=2&limit=2", ownerID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 2)
	if assert.NotNil(suite.T(), response.Pagination) {
		assert.Equal(suite.T(), int64(5), response.Pagination.Total)
		assert.Equal(suite.T(), uint(2), response.Pagination.Offset)
	}
}

func (suite *TestSuiteStandard) TestExpensesGetInvalidMonth() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?month=definitely-not-a-month", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseGet() {
	expense := suite.createTestExpense(models.Expense{Category: "Groceries", Amount: decimal.NewFromFloat(10), OwnerID: uuid.New()})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/"+expense.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), expense.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestExpenseGetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/"+uuid.New().String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

// A partial update only touches the fields in the body.
func (suite *TestSuiteStandard) TestExpenseUpdate() {
	expense := suite.createTestExpense(models.Expense{Category: "Groceries", Note: "initial", Amount: decimal.NewFromFloat(10), OwnerID: uuid.New()})

	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/expenses/"+expense.ID.String(), map[string]any{
		"note": "updated",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "updated", response.Data.Note)
	assert.Equal(suite.T(), "Groceries", response.Data.Category)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(10)))
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	expense := suite.createTestExpense(models.Expense{Category: "Groceries", Amount: decimal.NewFromFloat(10), OwnerID: uuid.New()})

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/expenses/"+expense.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/"+expense.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensePreview() {
	ownerID := uuid.New()
	_ = suite.createTestBudget(models.Budget{
		Category:     "Groceries",
		MonthlyLimit: decimal.NewFromFloat(500),
		Month:        types.NewMonth(2026, 8),
		OwnerID:      ownerID,
	})
	_ = suite.createTestExpense(models.Expense{Category: "Groceries", Amount: decimal.NewFromFloat(450), OwnerID: ownerID, Date: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses/preview", v1.ExpensePreviewRequest{
		Category: "Groceries",
		Amount:   decimal.NewFromFloat(100),
		Date:     time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		OwnerID:  ownerID,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpensePreviewResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	assert.True(suite.T(), response.Data.Impact.WillExceedBudget)
	assert.Equal(suite.T(), usage.StatusOver, response.Data.Impact.Status)
	assert.True(suite.T(), response.Data.Impact.TotalSpent.Equal(decimal.NewFromFloat(550)))

	// Nothing was persisted
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Expense{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

// Previewing against a category without a budget is a 404, there is nothing
// to compare against.
func (suite *TestSuiteStandard) TestExpensePreviewNoBudget() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses/preview", v1.ExpensePreviewRequest{
		Category: "Groceries",
		Amount:   decimal.NewFromFloat(100),
		Date:     time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		OwnerID:  uuid.New(),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
