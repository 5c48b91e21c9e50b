package controllers

import (
	"net/http"

	"github.com/aurumtrade/aurum-api/internal/actions"
	"github.com/aurumtrade/aurum-api/internal/auth"
	"github.com/aurumtrade/aurum-api/internal/middleware"
	"github.com/aurumtrade/aurum-api/internal/models"
	"github.com/aurumtrade/aurum-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// authResponse is the signup/signin envelope extended with the issued
// bearer token.
type authResponse struct {
	models.ActionResult
	Token string `json:"token,omitempty"`
}

// AuthController handles the sign-up/sign-in/sign-out endpoints.
type AuthController struct {
	actions  *actions.Actions
	provider *auth.Provider
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(acts *actions.Actions, provider *auth.Provider) *AuthController {
	return &AuthController{actions: acts, provider: provider}
}

// Signup godoc
// @Summary Register an allow-listed admin account
// @Description Create an account for an email on the admin allow-list
// @Tags auth
// @Accept json
// @Produce json
// @Param body body validation.SignupInput true "Signup payload"
// @Success 201 {object} authResponse
// @Failure 400 {object} models.ActionResult
// @Failure 403 {object} models.ActionResult
// @Router /api/v1/auth/signup [post]
func (ac *AuthController) Signup(c *gin.Context) {
	var in validation.SignupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("Invalid request body."))
		return
	}

	res, token := ac.actions.Signup(c.Request.Context(), in)
	c.JSON(statusFor(res, http.StatusCreated), authResponse{ActionResult: res, Token: token})
}

// Signin godoc
// @Summary Sign in an allow-listed admin account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body validation.SigninInput true "Signin payload"
// @Success 200 {object} authResponse
// @Failure 400 {object} models.ActionResult
// @Failure 403 {object} models.ActionResult
// @Router /api/v1/auth/signin [post]
func (ac *AuthController) Signin(c *gin.Context) {
	var in validation.SigninInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("Invalid request body."))
		return
	}

	res, token := ac.actions.Signin(c.Request.Context(), in)
	c.JSON(statusFor(res, http.StatusOK), authResponse{ActionResult: res, Token: token})
}

// Signout godoc
// @Summary Revoke the current session
// @Tags auth
// @Produce json
// @Success 200 {object} models.ActionResult
// @Security BearerAuth
// @Router /api/v1/auth/signout [post]
func (ac *AuthController) Signout(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token != "" {
		if err := ac.provider.SignOut(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, models.Fail("Failed to sign out."))
			return
		}
	}
	c.JSON(http.StatusOK, models.Ok("Signed out."))
}
