package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/walletwatch/backend/internal/httputil"
	"github.com/walletwatch/backend/internal/models"
	ww_uuid "github.com/walletwatch/backend/internal/uuid"
)

func RegisterSavingsGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSavingsGoals)
		r.GET("", GetSavingsGoals)
		r.POST("", CreateSavingsGoals)
	}
	{
		r.OPTIONS("/:id", OptionsSavingsGoalDetail)
		r.GET("/:id", GetSavingsGoal)
		r.PATCH("/:id", UpdateSavingsGoal)
		r.DELETE("/:id", DeleteSavingsGoal)
	}
}

type SavingsGoalEditable struct {
	Name                string          `json:"name" example:"Emergency fund"`
	Note                string          `json:"note" example:"Three months of expenses" default:""`
	TargetAmount        decimal.Decimal `json:"targetAmount" example:"10000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution" example:"250" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"`
	OwnerID             uuid.UUID       `json:"ownerId" example:"d9e4e4a6-6e5c-4f0a-9c3b-0f2a41f3e7a2"`
	Active              bool            `json:"active" example:"true" default:"true"`
}

// model returns the database resource for the API representation of the editable fields
func (editable SavingsGoalEditable) model() models.SavingsGoal {
	return models.SavingsGoal{
		Name:                editable.Name,
		Note:                editable.Note,
		TargetAmount:        editable.TargetAmount,
		MonthlyContribution: editable.MonthlyContribution,
		OwnerID:             editable.OwnerID,
		Active:              editable.Active,
	}
}

type SavingsGoalLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/savings-goals/9a7d3b21-8f4e-4c6a-b1d2-3e4f5a6b7c8d"` // The savings goal itself
}

type SavingsGoal struct {
	models.DefaultModel
	SavingsGoalEditable
	Links SavingsGoalLinks `json:"links"`
}

// newSavingsGoal returns the API v1 representation of the resource
func newSavingsGoal(c *gin.Context, model models.SavingsGoal) SavingsGoal {
	return SavingsGoal{
		DefaultModel: model.DefaultModel,
		SavingsGoalEditable: SavingsGoalEditable{
			Name:                model.Name,
			Note:                model.Note,
			TargetAmount:        model.TargetAmount,
			MonthlyContribution: model.MonthlyContribution,
			OwnerID:             model.OwnerID,
			Active:              model.Active,
		},
		Links: SavingsGoalLinks{
			Self: fmt.Sprintf("%s/savings-goals/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type SavingsGoalListResponse struct {
	Data  []SavingsGoal `json:"data"`                                                          // List of resources
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SavingsGoalCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SavingsGoalResponse `json:"data"`                                                          // List of created resources
}

func (r *SavingsGoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, SavingsGoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SavingsGoalResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *SavingsGoal `json:"data"`                                                          // The resource
}

type SavingsGoalQueryFilter struct {
	OwnerID ww_uuid.UUID `form:"owner"`  // By owner ID
	Active  string       `form:"active"` // By active state, "true" or "false"
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsGoals
// @Success		204
// @Router			/v1/savings-goals [options]
func OptionsSavingsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsGoals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id} [options]
func OptionsSavingsGoalDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.SavingsGoal{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create savings goals
// @Description	Creates new savings goals
// @Tags			SavingsGoals
// @Produce		json
// @Success		201		{object}	SavingsGoalCreateResponse
// @Failure		400		{object}	SavingsGoalCreateResponse
// @Failure		500		{object}	SavingsGoalCreateResponse
// @Param			goals	body		[]SavingsGoalEditable	true	"Savings goals"
// @Router			/v1/savings-goals [post]
func CreateSavingsGoals(c *gin.Context) {
	var goals []SavingsGoalEditable

	err := httputil.BindData(c, &goals)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := SavingsGoalCreateResponse{}

	for _, create := range goals {
		goal := create.model()
		err = models.DB.Create(&goal).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newSavingsGoal(c, goal)
		r.Data = append(r.Data, SavingsGoalResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get savings goals
// @Description	Returns a list of savings goals
// @Tags			SavingsGoals
// @Produce		json
// @Success		200	{object}	SavingsGoalListResponse
// @Failure		400	{object}	SavingsGoalListResponse
// @Failure		500	{object}	SavingsGoalListResponse
// @Router			/v1/savings-goals [get]
// @Param			owner	query	string	false	"Filter by owner ID"
// @Param			active	query	string	false	"Filter by active state"
func GetSavingsGoals(c *gin.Context) {
	var filter SavingsGoalQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SavingsGoalListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.Order("name ASC")

	if filter.OwnerID != ww_uuid.Nil {
		q = q.Where("owner_id = ?", filter.OwnerID.UUID)
	}

	if filter.Active != "" {
		q = q.Where("active = ?", filter.Active == "true")
	}

	var goals []models.SavingsGoal
	err := q.Find(&goals).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalListResponse{
			Error: &s,
		})
		return
	}

	data := make([]SavingsGoal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newSavingsGoal(c, goal))
	}

	c.JSON(http.StatusOK, SavingsGoalListResponse{Data: data})
}

// @Summary		Get savings goal
// @Description	Returns a specific savings goal
// @Tags			SavingsGoals
// @Produce		json
// @Success		200	{object}	SavingsGoalResponse
// @Failure		400	{object}	SavingsGoalResponse
// @Failure		404	{object}	SavingsGoalResponse
// @Failure		500	{object}	SavingsGoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id} [get]
func GetSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	var goal models.SavingsGoal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSavingsGoal(c, goal)
	c.JSON(http.StatusOK, SavingsGoalResponse{Data: &apiResource})
}

// @Summary		Update savings goal
// @Description	Updates an existing savings goal. Only values to be updated need to be specified.
// @Tags			SavingsGoals
// @Accept			json
// @Produce		json
// @Success		200		{object}	SavingsGoalResponse
// @Failure		400		{object}	SavingsGoalResponse
// @Failure		404		{object}	SavingsGoalResponse
// @Failure		500		{object}	SavingsGoalResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		SavingsGoalEditable	true	"Savings goal"
// @Router			/v1/savings-goals/{id} [patch]
func UpdateSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	var goal models.SavingsGoal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	data := SavingsGoalEditable{
		Name:                goal.Name,
		Note:                goal.Note,
		TargetAmount:        goal.TargetAmount,
		MonthlyContribution: goal.MonthlyContribution,
		OwnerID:             goal.OwnerID,
		Active:              goal.Active,
	}

	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&goal).Select("Name", "Note", "TargetAmount", "MonthlyContribution", "OwnerID", "Active").Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSavingsGoal(c, goal)
	c.JSON(http.StatusOK, SavingsGoalResponse{Data: &apiResource})
}

// @Summary		Delete savings goal
// @Description	Deletes a savings goal
// @Tags			SavingsGoals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id} [delete]
func DeleteSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var goal models.SavingsGoal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&goal).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
