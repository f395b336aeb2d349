package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/walletwatch/backend/internal/httputil"
	"github.com/walletwatch/backend/internal/models"
	ww_uuid "github.com/walletwatch/backend/internal/uuid"
)

type ExpenseEditable struct {
	Category string          `json:"category" example:"Groceries"`
	Note     string          `json:"note" example:"Weekly shopping" default:""`
	Amount   decimal.Decimal `json:"amount" example:"17.32" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`
	Date     time.Time       `json:"date" example:"2026-08-12T00:00:00Z"`
	OwnerID  uuid.UUID       `json:"ownerId" example:"d9e4e4a6-6e5c-4f0a-9c3b-0f2a41f3e7a2"`
	GroupID  *uuid.UUID      `json:"groupId" example:"52d967f3-6f4a-4d0c-9c39-52b2c5c3f0c4"`
}

// model returns the database resource for the API representation of the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Category: editable.Category,
		Note:     editable.Note,
		Amount:   editable.Amount,
		Date:     editable.Date,
		OwnerID:  editable.OwnerID,
		GroupID:  editable.GroupID,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/d1d0a1e7-cc8e-4dfc-a0a6-1b2c3d4e5f6a"` // The expense itself
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

// newExpense returns the API v1 representation of the resource
func newExpense(c *gin.Context, model models.Expense) Expense {
	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Category: model.Category,
			Note:     model.Note,
			Amount:   model.Amount,
			Date:     model.Date,
			OwnerID:  model.OwnerID,
			GroupID:  model.GroupID,
		},
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/expenses/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created resources
}

func (r *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Expense `json:"data"`                                                          // The resource
}

type ExpenseQueryFilter struct {
	OwnerID  ww_uuid.UUID `form:"owner"`    // By owner ID
	GroupID  ww_uuid.UUID `form:"group"`    // By group ID
	Category string       `form:"category"` // By category, glob patterns are supported
	Month    string       `form:"month"`    // By month in YYYY-MM format
	Offset   uint         `form:"offset"`   // The offset of the first expense returned. Defaults to 0.
	Limit    int          `form:"limit"`    // Maximum number of expenses to return. Defaults to 50.
}

// ExpensePreviewRequest is a candidate expense that has not been committed.
type ExpensePreviewRequest struct {
	Category string          `json:"category" example:"Groceries"`
	Amount   decimal.Decimal `json:"amount" example:"42.00"`
	Date     time.Time       `json:"date" example:"2026-08-12T00:00:00Z"`
	OwnerID  uuid.UUID       `json:"ownerId"`
	GroupID  *uuid.UUID      `json:"groupId"`
}
