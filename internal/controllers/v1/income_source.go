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

func RegisterIncomeSourceRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsIncomeSources)
		r.GET("", GetIncomeSources)
		r.POST("", CreateIncomeSources)
	}
	{
		r.OPTIONS("/:id", OptionsIncomeSourceDetail)
		r.GET("/:id", GetIncomeSource)
		r.PATCH("/:id", UpdateIncomeSource)
		r.DELETE("/:id", DeleteIncomeSource)
	}
}

type IncomeSourceEditable struct {
	Name      string                 `json:"name" example:"Salary"`
	Amount    decimal.Decimal        `json:"amount" example:"2800" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`
	Frequency models.IncomeFrequency `json:"frequency" example:"monthly" enums:"monthly,biweekly,weekly,yearly,once"`
	OwnerID   uuid.UUID              `json:"ownerId" example:"d9e4e4a6-6e5c-4f0a-9c3b-0f2a41f3e7a2"`
	Active    bool                   `json:"active" example:"true" default:"true"`
}

// model returns the database resource for the API representation of the editable fields
func (editable IncomeSourceEditable) model() models.IncomeSource {
	return models.IncomeSource{
		Name:      editable.Name,
		Amount:    editable.Amount,
		Frequency: editable.Frequency,
		OwnerID:   editable.OwnerID,
		Active:    editable.Active,
	}
}

type IncomeSourceLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/income-sources/195dcac2-71dc-4f54-8b4e-7d4b0a1c2d3e"` // The income source itself
}

type IncomeSource struct {
	models.DefaultModel
	IncomeSourceEditable
	MonthlyAmount decimal.Decimal   `json:"monthlyAmount" example:"2800"` // The monthly equivalent of the income
	Links         IncomeSourceLinks `json:"links"`
}

// newIncomeSource returns the API v1 representation of the resource
func newIncomeSource(c *gin.Context, model models.IncomeSource) IncomeSource {
	return IncomeSource{
		DefaultModel: model.DefaultModel,
		IncomeSourceEditable: IncomeSourceEditable{
			Name:      model.Name,
			Amount:    model.Amount,
			Frequency: model.Frequency,
			OwnerID:   model.OwnerID,
			Active:    model.Active,
		},
		MonthlyAmount: model.MonthlyAmount(),
		Links: IncomeSourceLinks{
			Self: fmt.Sprintf("%s/income-sources/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type IncomeSourceListResponse struct {
	Data  []IncomeSource `json:"data"`                                                          // List of resources
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeSourceCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []IncomeSourceResponse `json:"data"`                                                          // List of created resources
}

func (r *IncomeSourceCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, IncomeSourceResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeSourceResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *IncomeSource `json:"data"`                                                          // The resource
}

type IncomeSourceQueryFilter struct {
	OwnerID ww_uuid.UUID `form:"owner"`  // By owner ID
	Active  string       `form:"active"` // By active state, "true" or "false"
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			IncomeSources
// @Success		204
// @Router			/v1/income-sources [options]
func OptionsIncomeSources(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			IncomeSources
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income-sources/{id} [options]
func OptionsIncomeSourceDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.IncomeSource{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create income sources
// @Description	Creates new income sources
// @Tags			IncomeSources
// @Produce		json
// @Success		201		{object}	IncomeSourceCreateResponse
// @Failure		400		{object}	IncomeSourceCreateResponse
// @Failure		500		{object}	IncomeSourceCreateResponse
// @Param			sources	body		[]IncomeSourceEditable	true	"Income sources"
// @Router			/v1/income-sources [post]
func CreateIncomeSources(c *gin.Context) {
	var sources []IncomeSourceEditable

	err := httputil.BindData(c, &sources)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := IncomeSourceCreateResponse{}

	for _, create := range sources {
		source := create.model()
		err = models.DB.Create(&source).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newIncomeSource(c, source)
		r.Data = append(r.Data, IncomeSourceResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get income sources
// @Description	Returns a list of income sources
// @Tags			IncomeSources
// @Produce		json
// @Success		200	{object}	IncomeSourceListResponse
// @Failure		400	{object}	IncomeSourceListResponse
// @Failure		500	{object}	IncomeSourceListResponse
// @Router			/v1/income-sources [get]
// @Param			owner	query	string	false	"Filter by owner ID"
// @Param			active	query	string	false	"Filter by active state"
func GetIncomeSources(c *gin.Context) {
	var filter IncomeSourceQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, IncomeSourceListResponse{
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

	var sources []models.IncomeSource
	err := q.Find(&sources).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeSourceListResponse{
			Error: &s,
		})
		return
	}

	data := make([]IncomeSource, 0, len(sources))
	for _, source := range sources {
		data = append(data, newIncomeSource(c, source))
	}

	c.JSON(http.StatusOK, IncomeSourceListResponse{Data: data})
}

// @Summary		Get income source
// @Description	Returns a specific income source
// @Tags			IncomeSources
// @Produce		json
// @Success		200	{object}	IncomeSourceResponse
// @Failure		400	{object}	IncomeSourceResponse
// @Failure		404	{object}	IncomeSourceResponse
// @Failure		500	{object}	IncomeSourceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income-sources/{id} [get]
func GetIncomeSource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceResponse{
			Error: &e,
		})
		return
	}

	var source models.IncomeSource
	err = models.DB.First(&source, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceResponse{
			Error: &e,
		})
		return
	}

	apiResource := newIncomeSource(c, source)
	c.JSON(http.StatusOK, IncomeSourceResponse{Data: &apiResource})
}

// @Summary		Update income source
// @Description	Updates an existing income source. Only values to be updated need to be specified.
// @Tags			IncomeSources
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeSourceResponse
// @Failure		400		{object}	IncomeSourceResponse
// @Failure		404		{object}	IncomeSourceResponse
// @Failure		500		{object}	IncomeSourceResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			source	body		IncomeSourceEditable	true	"Income source"
// @Router			/v1/income-sources/{id} [patch]
func UpdateIncomeSource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceResponse{
			Error: &e,
		})
		return
	}

	var source models.IncomeSource
	err = models.DB.First(&source, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceResponse{
			Error: &e,
		})
		return
	}

	data := IncomeSourceEditable{
		Name:      source.Name,
		Amount:    source.Amount,
		Frequency: source.Frequency,
		OwnerID:   source.OwnerID,
		Active:    source.Active,
	}

	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&source).Select("Name", "Amount", "Frequency", "OwnerID", "Active").Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceResponse{
			Error: &e,
		})
		return
	}

	apiResource := newIncomeSource(c, source)
	c.JSON(http.StatusOK, IncomeSourceResponse{Data: &apiResource})
}

// @Summary		Delete income source
// @Description	Deletes an income source
// @Tags			IncomeSources
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income-sources/{id} [delete]
func DeleteIncomeSource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var source models.IncomeSource
	err = models.DB.First(&source, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&source).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
