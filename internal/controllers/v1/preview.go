package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/walletwatch/backend/internal/httputil"
	"github.com/walletwatch/backend/internal/models"
	"github.com/walletwatch/backend/internal/types"
	"github.com/walletwatch/backend/internal/usage"
)

type ExpensePreviewResponse struct {
	Error *string         `json:"error" example:"there is no budget matching your query"` // The error, if any occurred
	Data  *ExpensePreview `json:"data"`                                                   // The preview result
}

type ExpensePreview struct {
	Before usage.Snapshot `json:"before"` // The usage snapshot before the candidate expense
	Impact usage.Impact   `json:"impact"` // What committing the candidate expense would change
}

// @Summary		Preview expense impact
// @Description	Computes what committing a candidate expense would do to the matching budget without saving anything
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpensePreviewResponse
// @Failure		400		{object}	ExpensePreviewResponse
// @Failure		404		{object}	ExpensePreviewResponse
// @Failure		500		{object}	ExpensePreviewResponse
// @Param			expense	body		ExpensePreviewRequest	true	"Candidate expense"
// @Router			/v1/expenses/preview [post]
func PreviewExpense(c *gin.Context) {
	var request ExpensePreviewRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpensePreviewResponse{
			Error: &e,
		})
		return
	}

	date := request.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	budget, err := models.GetBudget(request.OwnerID, request.GroupID, request.Category, types.MonthOf(date))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpensePreviewResponse{
			Error: &e,
		})
		return
	}

	before, err := snapshotForBudget(budget, time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpensePreviewResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ExpensePreviewResponse{
		Data: &ExpensePreview{
			Before: before,
			Impact: usage.PreviewExpense(before, request.Amount),
		},
	})
}
