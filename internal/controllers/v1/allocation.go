package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/walletwatch/backend/internal/httputil"
	"github.com/walletwatch/backend/internal/types"
	"github.com/walletwatch/backend/internal/usage"
	ww_uuid "github.com/walletwatch/backend/internal/uuid"
)

func RegisterAllocationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetAllocation)
}

type AllocationResponse struct {
	Error *string                 `json:"error" example:"the ownerId parameter must be set"` // The error, if any occurred
	Data  *usage.AllocationResult `json:"data"`                                              // The allocation state
}

type AllocationQueryFilter struct {
	OwnerID      ww_uuid.UUID    `form:"owner"`        // The user whose allocation to compute
	Month        string          `form:"month"`        // The month in YYYY-MM format, defaults to the current month
	BudgetDelta  decimal.Decimal `form:"budgetDelta"`  // A candidate change to the budget total
	SavingsDelta decimal.Decimal `form:"savingsDelta"` // A candidate change to the savings commitment total
}

// @Summary		Get allocation
// @Description	Returns the allocation state of a user, optionally with candidate budget and savings deltas applied. Over-allocation is reported, never rejected.
// @Tags			Allocation
// @Produce		json
// @Success		200				{object}	AllocationResponse
// @Failure		400				{object}	AllocationResponse
// @Failure		500				{object}	AllocationResponse
// @Param			owner			query		string	true	"The owner ID"
// @Param			month			query		string	false	"The month in YYYY-MM format. Defaults to the current month."
// @Param			budgetDelta		query		string	false	"A candidate change to the budget total"
// @Param			savingsDelta	query		string	false	"A candidate change to the savings commitment total"
// @Router			/v1/allocation [get]
func GetAllocation(c *gin.Context) {
	var filter AllocationQueryFilter

	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{
			Error: &e,
		})
		return
	}

	if filter.OwnerID == ww_uuid.Nil {
		e := errOwnerIDParameter.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{
			Error: &e,
		})
		return
	}

	month := types.CurrentMonth()
	if filter.Month != "" {
		var err error
		month, err = types.ParseMonth(filter.Month)
		if err != nil {
			e := httputil.ErrInvalidMonth.Error()
			c.JSON(http.StatusBadRequest, AllocationResponse{
				Error: &e,
			})
			return
		}
	}

	allocation, err := allocationForOwner(filter.OwnerID.UUID, month, filter.BudgetDelta, filter.SavingsDelta)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{Data: &allocation})
}
