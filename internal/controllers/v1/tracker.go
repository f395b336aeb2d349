package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/walletwatch/backend/internal/alerting"
	"github.com/walletwatch/backend/internal/httputil"
	"github.com/walletwatch/backend/internal/models"
	"github.com/walletwatch/backend/internal/types"
	ww_uuid "github.com/walletwatch/backend/internal/uuid"
)

func RegisterTrackerRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetDelete)
	r.GET("", GetTrackers)
	r.DELETE("", SweepTrackers)
}

type Tracker struct {
	BudgetID string      `json:"budgetId" example:"6b9e2f3a-4c1d-4a0e-8f7b-2a3b4c5d6e7f"`
	Month    types.Month `json:"month" example:"2026-08-01T00:00:00Z"`
	Category string      `json:"category" example:"Groceries"`

	WarningTriggered    bool       `json:"warningTriggered" example:"true"`
	WarningTriggeredAt  *time.Time `json:"warningTriggeredAt"`
	CriticalTriggered   bool       `json:"criticalTriggered" example:"false"`
	CriticalTriggeredAt *time.Time `json:"criticalTriggeredAt"`
	ExceededTriggered   bool       `json:"exceededTriggered" example:"false"`
	ExceededTriggeredAt *time.Time `json:"exceededTriggeredAt"`

	LastCheckedAt time.Time `json:"lastCheckedAt" example:"2026-08-12T10:11:12Z"`
}

func newTracker(model models.ThresholdTracker) Tracker {
	return Tracker{
		BudgetID:            model.BudgetID.String(),
		Month:               model.Month,
		Category:            model.Category,
		WarningTriggered:    model.WarningTriggered,
		WarningTriggeredAt:  model.WarningTriggeredAt,
		CriticalTriggered:   model.CriticalTriggered,
		CriticalTriggeredAt: model.CriticalTriggeredAt,
		ExceededTriggered:   model.ExceededTriggered,
		ExceededTriggeredAt: model.ExceededTriggeredAt,
		LastCheckedAt:       model.LastCheckedAt,
	}
}

type TrackerListResponse struct {
	Data  []Tracker `json:"data"`                                                          // List of resources
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TrackerSweepResponse struct {
	Error   *string `json:"error" example:"the before query parameter must be set to a month in YYYY-MM format"` // The error, if any occurred
	Deleted int64   `json:"deleted" example:"12"`                                                                // The number of trackers deleted
}

type TrackerQueryFilter struct {
	OwnerID ww_uuid.UUID `form:"owner"`  // By owner ID
	GroupID ww_uuid.UUID `form:"group"`  // By group ID
	Budget  ww_uuid.UUID `form:"budget"` // By budget ID
	Month   string       `form:"month"`  // By month in YYYY-MM format
}

// @Summary		Get threshold trackers
// @Description	Returns a list of threshold trackers
// @Tags			Trackers
// @Produce		json
// @Success		200	{object}	TrackerListResponse
// @Failure		400	{object}	TrackerListResponse
// @Failure		500	{object}	TrackerListResponse
// @Router			/v1/trackers [get]
// @Param			owner	query	string	false	"Filter by owner ID"
// @Param			group	query	string	false	"Filter by group ID"
// @Param			budget	query	string	false	"Filter by budget ID"
// @Param			month	query	string	false	"Filter by month in YYYY-MM format"
func GetTrackers(c *gin.Context) {
	var filter TrackerQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TrackerListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.Order("month DESC, category ASC")

	if filter.OwnerID != ww_uuid.Nil {
		q = q.Where("owner_id = ?", filter.OwnerID.UUID)
	}

	if filter.GroupID != ww_uuid.Nil {
		q = q.Where("group_id = ?", filter.GroupID.UUID)
	}

	if filter.Budget != ww_uuid.Nil {
		q = q.Where("budget_id = ?", filter.Budget.UUID)
	}

	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			s := httputil.ErrInvalidMonth.Error()
			c.JSON(http.StatusBadRequest, TrackerListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("month >= date(?) AND month < date(?)", month, month.AddDate(0, 1))
	}

	var trackers []models.ThresholdTracker
	err := q.Find(&trackers).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TrackerListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Tracker, 0, len(trackers))
	for _, tracker := range trackers {
		data = append(data, newTracker(tracker))
	}

	c.JSON(http.StatusOK, TrackerListResponse{Data: data})
}

// @Summary		Sweep threshold trackers
// @Description	Deletes all trackers for months before the given one. Deleting a tracker re-arms all thresholds for its budget month.
// @Tags			Trackers
// @Produce		json
// @Success		200		{object}	TrackerSweepResponse
// @Failure		400		{object}	TrackerSweepResponse
// @Failure		500		{object}	TrackerSweepResponse
// @Param			before	query		string	true	"Trackers for months before this YYYY-MM month are deleted"
// @Router			/v1/trackers [delete]
func SweepTrackers(c *gin.Context) {
	before := c.Query("before")
	if before == "" {
		e := errBeforeMonthNotSet.Error()
		c.JSON(http.StatusBadRequest, TrackerSweepResponse{
			Error: &e,
		})
		return
	}

	month, err := types.ParseMonth(before)
	if err != nil {
		e := errBeforeMonthNotSet.Error()
		c.JSON(http.StatusBadRequest, TrackerSweepResponse{
			Error: &e,
		})
		return
	}

	store := alerting.GormTrackerStore{DB: models.DB}
	deleted, err := store.DeleteExpired(c.Request.Context(), month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TrackerSweepResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TrackerSweepResponse{Deleted: deleted})
}
