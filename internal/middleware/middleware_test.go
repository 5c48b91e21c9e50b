package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aurumtrade/aurum-api/internal/auth"
	"github.com/aurumtrade/aurum-api/internal/models"
	"github.com/aurumtrade/aurum-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *auth.Provider, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Session{}))

	provider := auth.NewProvider(db, services.NewUserService(db), "test-jwt-secret-key-32-characters", time.Hour)

	router := gin.New()
	router.GET("/guarded", Authenticate(provider), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.MustGet(ContextUserID)})
	})
	return router, provider, db
}

func request(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticateMissingToken(t *testing.T) {
	router, _, _ := setupRouter(t)
	rec := request(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	router, _, _ := setupRouter(t)
	rec := request(router, "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleForbidsMember(t *testing.T) {
	router, provider, _ := setupRouter(t)

	token, err := provider.SignUpEmail(context.Background(), auth.SignUpBody{
		Name:     "Member",
		Email:    "member@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	rec := request(router, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleAllowsAdmin(t *testing.T) {
	router, provider, db := setupRouter(t)

	token, err := provider.SignUpEmail(context.Background(), auth.SignUpBody{
		Name:     "Admin",
		Email:    "admin@aurumtrade.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "admin@aurumtrade.com").Update("role", models.RoleAdmin).Error)

	rec := request(router, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
