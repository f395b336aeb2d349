package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/walletwatch/backend/internal/httputil"
	"github.com/walletwatch/backend/internal/models"
	"github.com/walletwatch/backend/internal/types"
	"github.com/walletwatch/backend/internal/usage"
	ww_uuid "github.com/walletwatch/backend/internal/uuid"
)

func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month/usage", httputil.OptionsGet)
	r.GET("/:month/usage", GetMonthUsage)
}

type MonthUsageResponse struct {
	Error *string     `json:"error" example:"parsing month failed, the format must be YYYY-MM"` // The error, if any occurred
	Data  *MonthUsage `json:"data"`                                                             // Usage for all budgets of the month
}

type MonthUsage struct {
	Month   types.Month      `json:"month" example:"2026-08-01T00:00:00Z"`
	Budgets []usage.Snapshot `json:"budgets"` // One snapshot per budget, ordered by category
}

type MonthUsageQueryFilter struct {
	OwnerID ww_uuid.UUID `form:"owner"` // By owner ID
	GroupID ww_uuid.UUID `form:"group"` // By group ID
}

// @Summary		Get month usage
// @Description	Returns usage snapshots for all budgets of a month, recomputed from the expense set
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthUsageResponse
// @Failure		400		{object}	MonthUsageResponse
// @Failure		500		{object}	MonthUsageResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Param			owner	query		string	false	"Filter by owner ID"
// @Param			group	query		string	false	"Filter by group ID"
// @Router			/v1/months/{month}/usage [get]
func GetMonthUsage(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthUsageResponse{
			Error: &e,
		})
		return
	}

	month, err := types.ParseMonth(uri.Month)
	if err != nil {
		e := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, MonthUsageResponse{
			Error: &e,
		})
		return
	}

	var filter MonthUsageQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthUsageResponse{
			Error: &e,
		})
		return
	}

	if filter.OwnerID == ww_uuid.Nil && filter.GroupID == ww_uuid.Nil {
		e := errOwnerIDParameter.Error()
		c.JSON(http.StatusBadRequest, MonthUsageResponse{
			Error: &e,
		})
		return
	}

	var groupID *uuid.UUID
	if filter.GroupID != ww_uuid.Nil {
		groupID = &filter.GroupID.UUID
	}

	budgets, err := models.ListBudgets(filter.OwnerID.UUID, groupID, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthUsageResponse{
			Error: &e,
		})
		return
	}

	now := time.Now()
	snapshots := make([]usage.Snapshot, 0, len(budgets))
	for _, budget := range budgets {
		snapshot, err := snapshotForBudget(budget, now)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), MonthUsageResponse{
				Error: &e,
			})
			return
		}

		snapshots = append(snapshots, snapshot)
	}

	c.JSON(http.StatusOK, MonthUsageResponse{
		Data: &MonthUsage{
			Month:   month,
			Budgets: snapshots,
		},
	})
}
