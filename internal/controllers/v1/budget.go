package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"github.com/walletwatch/backend/internal/httputil"
	"github.com/walletwatch/backend/internal/models"
	"github.com/walletwatch/backend/internal/types"
	ww_uuid "github.com/walletwatch/backend/internal/uuid"
	"golang.org/x/exp/slices"
)

func RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudgets)
		r.GET("", GetBudgets)
		r.POST("", CreateBudgets)
	}
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
	{
		r.OPTIONS("/:id/usage", httputil.OptionsGet)
		r.GET("/:id/usage", GetBudgetUsage)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create budgets
// @Description	Creates new budgets. For personal budgets, the allocation state after the create is part of the response. Over-allocation is reported, not rejected.
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			budgets	body		[]BudgetEditable	true	"Budgets"
// @Router			/v1/budgets [post]
func CreateBudgets(c *gin.Context) {
	var budgets []BudgetEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &budgets)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetCreateResponse{}

	for _, create := range budgets {
		budget := create.model()
		err = models.DB.Create(&budget).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newBudget(c, budget)
		response := BudgetResponse{Data: &apiResource}

		// Personal budgets count against the owner's income, so the response
		// reports how the plan stands with the new budget included
		if budget.GroupID == nil {
			allocation, err := allocationForOwner(budget.OwnerID, budget.Month, decimal.Zero, decimal.Zero)
			if err != nil {
				log.Error().Err(err).Msg("budget create: computing allocation failed")
			} else {
				response.Allocation = &allocation
			}
		}

		r.Data = append(r.Data, response)
	}

	c.JSON(status, r)
}

// @Summary		Get budgets
// @Description	Returns a list of budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		400	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
// @Param			owner		query	string	false	"Filter by owner ID"
// @Param			group		query	string	false	"Filter by group ID"
// @Param			category	query	string	false	"Filter by category. Glob patterns are supported."
// @Param			month		query	string	false	"Filter by month in YYYY-MM format"
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.Order("budgets.month DESC, budgets.category ASC")

	if filter.OwnerID != ww_uuid.Nil {
		q = q.Where("owner_id = ?", filter.OwnerID.UUID)
	}

	if filter.GroupID != ww_uuid.Nil {
		q = q.Where("group_id = ?", filter.GroupID.UUID)
	}

	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			s := httputil.ErrInvalidMonth.Error()
			c.JSON(http.StatusBadRequest, BudgetListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("month >= date(?) AND month < date(?)", month, month.AddDate(0, 1))
	}

	var budgets []models.Budget
	err := q.Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	if filter.Category != "" {
		budgets = slices.DeleteFunc(budgets, func(b models.Budget) bool {
			return !glob.Glob(filter.Category, b.Category)
		})
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &apiResource})
}

// @Summary		Get budget usage
// @Description	Returns the usage snapshot for a budget, recomputed from the expenses in its month
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetUsageResponse
// @Failure		400	{object}	BudgetUsageResponse
// @Failure		404	{object}	BudgetUsageResponse
// @Failure		500	{object}	BudgetUsageResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/usage [get]
func GetBudgetUsage(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetUsageResponse{
			Error: &e,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetUsageResponse{
			Error: &e,
		})
		return
	}

	snapshot, err := snapshotForBudget(budget, time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetUsageResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetUsageResponse{Data: &snapshot})
}

// @Summary		Update budget
// @Description	Updates an existing budget. Only values to be updated need to be specified. For personal budgets, the allocation state after the update is part of the response.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	data := BudgetEditable{
		Category:     budget.Category,
		Note:         budget.Note,
		MonthlyLimit: budget.MonthlyLimit,
		Month:        budget.Month,
		OwnerID:      budget.OwnerID,
		GroupID:      budget.GroupID,
	}

	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&budget).Select("Category", "Note", "MonthlyLimit", "Month", "OwnerID", "GroupID").Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBudget(c, budget)
	response := BudgetResponse{Data: &apiResource}

	// Raising a limit is exactly when over-allocation matters, so a PATCH
	// reports the allocation state just like a create does
	if budget.GroupID == nil {
		allocation, err := allocationForOwner(budget.OwnerID, budget.Month, decimal.Zero, decimal.Zero)
		if err != nil {
			log.Error().Err(err).Msg("budget update: computing allocation failed")
		} else {
			response.Allocation = &allocation
		}
	}

	c.JSON(http.StatusOK, response)
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
