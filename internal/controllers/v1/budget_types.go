package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/walletwatch/backend/internal/httputil"
	"github.com/walletwatch/backend/internal/models"
	"github.com/walletwatch/backend/internal/types"
	"github.com/walletwatch/backend/internal/usage"
	ww_uuid "github.com/walletwatch/backend/internal/uuid"
)

type BudgetEditable struct {
	Category     string          `json:"category" example:"Groceries"`
	Note         string          `json:"note" example:"Everything from the supermarket" default:""`
	MonthlyLimit decimal.Decimal `json:"monthlyLimit" example:"400" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`
	Month        types.Month     `json:"month" example:"2026-08-01T00:00:00Z"`
	OwnerID      uuid.UUID       `json:"ownerId" example:"d9e4e4a6-6e5c-4f0a-9c3b-0f2a41f3e7a2"`
	GroupID      *uuid.UUID      `json:"groupId" example:"52d967f3-6f4a-4d0c-9c39-52b2c5c3f0c4"`
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Category:     editable.Category,
		Note:         editable.Note,
		MonthlyLimit: editable.MonthlyLimit,
		Month:        editable.Month,
		OwnerID:      editable.OwnerID,
		GroupID:      editable.GroupID,
	}
}

type BudgetLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/budgets/6b9e2f3a-4c1d-4a0e-8f7b-2a3b4c5d6e7f"`       // The budget itself
	Usage string `json:"usage" example:"https://example.com/api/v1/budgets/6b9e2f3a-4c1d-4a0e-8f7b-2a3b4c5d6e7f/usage"` // The usage snapshot for this budget
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

// newBudget returns the API v1 representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	self := fmt.Sprintf("%s/budgets/%s", httputil.RequestPathV1(c), model.ID)

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Category:     model.Category,
			Note:         model.Note,
			MonthlyLimit: model.MonthlyLimit,
			Month:        model.Month,
			OwnerID:      model.OwnerID,
			GroupID:      model.GroupID,
		},
		Links: BudgetLinks{
			Self:  self,
			Usage: self + "/usage",
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of resources
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created resources
}

func (r *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error      *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data       *Budget                 `json:"data"`                                                          // The resource
	Allocation *usage.AllocationResult `json:"allocation,omitempty"`                                          // Allocation state after the change, set for personal budgets
}

type BudgetQueryFilter struct {
	OwnerID  ww_uuid.UUID `form:"owner"`    // By owner ID
	GroupID  ww_uuid.UUID `form:"group"`    // By group ID
	Category string       `form:"category"` // By category, glob patterns are supported
	Month    string       `form:"month"`    // By month in YYYY-MM format
}

type BudgetUsageResponse struct {
	Error *string         `json:"error" example:"there is no budget matching your query"` // The error, if any occurred
	Data  *usage.Snapshot `json:"data"`                                                   // The usage snapshot
}
