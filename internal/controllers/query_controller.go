package controllers

import (
	"net/http"

	"github.com/aurumtrade/aurum-api/internal/actions"
	"github.com/aurumtrade/aurum-api/internal/models"
	"github.com/aurumtrade/aurum-api/internal/services"
	"github.com/aurumtrade/aurum-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// QueryController handles contact-form submissions and the admin inbox.
type QueryController struct {
	actions *actions.Actions
	service services.QueryService
}

// NewQueryController creates a new instance of QueryController
func NewQueryController(acts *actions.Actions, service services.QueryService) *QueryController {
	return &QueryController{actions: acts, service: service}
}

// CreateQuery godoc
// @Summary Submit a contact query
// @Description Public endpoint; no authentication required
// @Tags queries
// @Accept json
// @Produce json
// @Param body body validation.CreateQueryInput true "Query payload"
// @Success 201 {object} models.ActionResult
// @Failure 400 {object} models.ActionResult
// @Router /api/v1/public/queries [post]
func (qc *QueryController) CreateQuery(c *gin.Context) {
	var in validation.CreateQueryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("Invalid request body."))
		return
	}

	res := qc.actions.CreateQuery(c.Request.Context(), in)
	c.JSON(statusFor(res, http.StatusCreated), res)
}

// ListQueries godoc
// @Summary List submitted contact queries
// @Tags queries
// @Produce json
// @Success 200 {array} models.Query
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/queries [get]
func (qc *QueryController) ListQueries(c *gin.Context) {
	queries, err := qc.service.ListQueries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve queries"})
		return
	}
	c.JSON(http.StatusOK, queries)
}
