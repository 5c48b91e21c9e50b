package controllers

import (
	"errors"
	"net/http"

	"github.com/aurumtrade/aurum-api/internal/actions"
	"github.com/aurumtrade/aurum-api/internal/middleware"
	"github.com/aurumtrade/aurum-api/internal/models"
	"github.com/aurumtrade/aurum-api/internal/services"
	"github.com/aurumtrade/aurum-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// NewsController handles HTTP requests related to news articles
type NewsController interface {
	// ListNews retrieves all articles, optionally filtered by tag
	ListNews(c *gin.Context)
	// GetNewsBySlug retrieves a single article by slug
	GetNewsBySlug(c *gin.Context)
	// CreateNews creates a new article (admin only)
	CreateNews(c *gin.Context)
	// EditNews updates an article's content fields (admin only)
	EditNews(c *gin.Context)
	// DeleteNews deletes an article by id (admin only)
	DeleteNews(c *gin.Context)
}

type newsController struct {
	actions *actions.Actions
	service services.NewsService
}

// NewNewsController creates a new instance of NewsController
func NewNewsController(acts *actions.Actions, service services.NewsService) NewsController {
	return &newsController{actions: acts, service: service}
}

// ListNews godoc
// @Summary List news articles
// @Description Get all articles, newest first, optionally filtered by tag
// @Tags news
// @Produce json
// @Param tag query string false "Filter by tag"
// @Success 200 {array} models.News
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/news [get]
func (nc *newsController) ListNews(ctx *gin.Context) {
	articles, err := nc.service.ListNews(ctx.Query("tag"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve news"})
		return
	}
	ctx.JSON(http.StatusOK, articles)
}

// GetNewsBySlug godoc
// @Summary Get a news article by slug
// @Tags news
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} models.News
// @Failure 404 {object} map[string]string
// @Router /api/v1/public/news/{slug} [get]
func (nc *newsController) GetNewsBySlug(ctx *gin.Context) {
	article, err := nc.service.GetNewsBySlug(ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve news"})
		return
	}
	ctx.JSON(http.StatusOK, article)
}

// CreateNews godoc
// @Summary Create a news article
// @Tags news
// @Accept json
// @Produce json
// @Param body body validation.CreateNewsInput true "Article payload"
// @Success 201 {object} models.ActionResult
// @Failure 400 {object} models.ActionResult
// @Failure 401 {object} models.ActionResult
// @Failure 403 {object} models.ActionResult
// @Security BearerAuth
// @Router /api/v1/admin/news [post]
func (nc *newsController) CreateNews(ctx *gin.Context) {
	var in validation.CreateNewsInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, models.Fail("Invalid request body."))
		return
	}

	res := nc.actions.CreateNews(ctx.Request.Context(), middleware.BearerToken(ctx), in)
	ctx.JSON(statusFor(res, http.StatusCreated), res)
}

// EditNews godoc
// @Summary Edit a news article
// @Description Update content fields; the slug never changes
// @Tags news
// @Accept json
// @Produce json
// @Param id path string true "Article id"
// @Param body body validation.EditNewsInput true "Update payload"
// @Success 200 {object} models.ActionResult
// @Failure 400 {object} models.ActionResult
// @Failure 401 {object} models.ActionResult
// @Failure 403 {object} models.ActionResult
// @Security BearerAuth
// @Router /api/v1/admin/news/{id} [put]
func (nc *newsController) EditNews(ctx *gin.Context) {
	var in validation.EditNewsInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, models.Fail("Invalid request body."))
		return
	}
	// The path, not the body, names the target article.
	in.ID = ctx.Param("id")

	res := nc.actions.EditNews(ctx.Request.Context(), middleware.BearerToken(ctx), in)
	ctx.JSON(statusFor(res, http.StatusOK), res)
}

// DeleteNews godoc
// @Summary Delete a news article
// @Tags news
// @Produce json
// @Param id path string true "Article id"
// @Success 200 {object} models.ActionResult
// @Failure 401 {object} models.ActionResult
// @Failure 403 {object} models.ActionResult
// @Security BearerAuth
// @Router /api/v1/admin/news/{id} [delete]
func (nc *newsController) DeleteNews(ctx *gin.Context) {
	in := validation.DeleteNewsInput{NewsID: ctx.Param("id")}

	res := nc.actions.DeleteNews(ctx.Request.Context(), middleware.BearerToken(ctx), in)
	ctx.JSON(statusFor(res, http.StatusOK), res)
}
