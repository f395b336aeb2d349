package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	v1 "github.com/walletwatch/backend/internal/controllers/v1"
	"github.com/walletwatch/backend/internal/models"
	"github.com/walletwatch/backend/internal/types"
	"github.com/walletwatch/backend/test"
)

func (suite *TestSuiteStandard) createTestTracker(tracker models.ThresholdTracker) models.ThresholdTracker {
	if tracker.BudgetID == uuid.Nil {
		tracker.BudgetID = uuid.New()
	}
	if tracker.Month.IsZero() {
		tracker.Month = types.NewMonth(2026, 8)
	}

	err := models.DB.Create(&tracker).Error
	if err != nil {
		suite.Assert().FailNow("ThresholdTracker could not be saved", "Error: %s, ThresholdTracker: %#v", err, tracker)
	}

	return tracker
}

func (suite *TestSuiteStandard) TestTrackersGet() {
	ownerID := uuid.New()

	tracker := suite.createTestTracker(models.ThresholdTracker{
		OwnerID:          ownerID,
		Category:         "Groceries",
		Month:            types.NewMonth(2026, 8),
		WarningTriggered: true,
	})
	_ = suite.createTestTracker(models.ThresholdTracker{
		OwnerID:  ownerID,
		Category: "Dining",
		Month:    types.NewMonth(2026, 7),
	})
	_ = suite.createTestTracker(models.ThresholdTracker{
		OwnerID:  uuid.New(),
		Category: "Groceries",
	})

	tests := []struct {
		query string
		count int
	}{
		{fmt.Sprintf("owner=%s", ownerID), 2},
		{fmt.Sprintf("owner=%s&month=2026-08", ownerID), 1},
		{fmt.Sprintf("budget=%s", tracker.BudgetID), 1},
		{"owner=" + uuid.New().String(), 0},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/trackers?"+tt.query, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.TrackerListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		assert.Len(suite.T(), response.Data, tt.count, "query: %s", tt.query)
	}
}

func (suite *TestSuiteStandard) TestTrackersGetSorted() {
	ownerID := uuid.New()

	_ = suite.createTestTracker(models.ThresholdTracker{OwnerID: ownerID, Category: "Dining", Month: types.NewMonth(2026, 7)})
	_ = suite.createTestTracker(models.ThresholdTracker{OwnerID: ownerID, Category: "Groceries", Month: types.NewMonth(2026, 8)})
	_ = suite.createTestTracker(models.ThresholdTracker{OwnerID: ownerID, Category: "Dining", Month: types.NewMonth(2026, 8)})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/trackers?owner=%s", ownerID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TrackerListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 3)
	assert.Equal(suite.T(), "Dining", response.Data[0].Category)
	assert.Equal(suite.T(), types.NewMonth(2026, 8), response.Data[0].Month)
	assert.Equal(suite.T(), types.NewMonth(2026, 7), response.Data[2].Month)
}

// The sweep deletes trackers for months before the given one, re-arming
// their thresholds. The current month stays untouched.
func (suite *TestSuiteStandard) TestTrackersSweep() {
	_ = suite.createTestTracker(models.ThresholdTracker{Category: "Groceries", Month: types.NewMonth(2026, 5)})
	_ = suite.createTestTracker(models.ThresholdTracker{Category: "Groceries", Month: types.NewMonth(2026, 6)})
	kept := suite.createTestTracker(models.ThresholdTracker{Category: "Groceries", Month: types.NewMonth(2026, 8)})

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/trackers?before=2026-08", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TrackerSweepResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), int64(2), response.Deleted)

	var remaining []models.ThresholdTracker
	suite.Require().Nil(models.DB.Find(&remaining).Error)
	suite.Require().Len(remaining, 1)
	assert.Equal(suite.T(), kept.BudgetID, remaining[0].BudgetID)
}

func (suite *TestSuiteStandard) TestTrackersSweepNoBefore() {
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/trackers", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/trackers?before=yesterday", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
