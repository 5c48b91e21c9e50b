package auth

import (
	"context"
	"testing"
	"time"

	"github.com/aurumtrade/aurum-api/internal/models"
	"github.com/aurumtrade/aurum-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProvider(t *testing.T, ttl time.Duration) (*Provider, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Session{})
	require.NoError(t, err)

	users := services.NewUserService(db)
	return NewProvider(db, users, "test-jwt-secret-key-32-characters", ttl), db
}

func TestSignUpEmailOpensSession(t *testing.T) {
	provider, _ := setupProvider(t, time.Hour)
	ctx := context.Background()

	token, err := provider.SignUpEmail(ctx, SignUpBody{
		Name:     "Suprim",
		Email:    "suprim@aurumtrade.com",
		Password: "sup3r-secret",
	})
	require.NoError(t, err)
	assert.Contains(t, token, ".") // JWTs have dots

	session, err := provider.GetSession(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, models.RoleMember, session.Role)
}

func TestSignUpEmailDuplicate(t *testing.T) {
	provider, _ := setupProvider(t, time.Hour)
	ctx := context.Background()

	_, err := provider.SignUpEmail(ctx, SignUpBody{Name: "A", Email: "a@aurumtrade.com", Password: "password1"})
	require.NoError(t, err)

	_, err = provider.SignUpEmail(ctx, SignUpBody{Name: "B", Email: "a@aurumtrade.com", Password: "password2"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Email is already registered.", apiErr.Message)
}

func TestSignInEmail(t *testing.T) {
	provider, _ := setupProvider(t, time.Hour)
	ctx := context.Background()

	_, err := provider.SignUpEmail(ctx, SignUpBody{Name: "A", Email: "a@aurumtrade.com", Password: "password1"})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		token, err := provider.SignInEmail(ctx, SignInBody{Email: "a@aurumtrade.com", Password: "password1"})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := provider.SignInEmail(ctx, SignInBody{Email: "a@aurumtrade.com", Password: "wrong"})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Invalid email or password.", apiErr.Message)
	})

	t.Run("unknown email reads the same as wrong password", func(t *testing.T) {
		_, err := provider.SignInEmail(ctx, SignInBody{Email: "nobody@aurumtrade.com", Password: "password1"})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Invalid email or password.", apiErr.Message)
	})
}

func TestGetSessionRejectsGarbage(t *testing.T) {
	provider, _ := setupProvider(t, time.Hour)
	ctx := context.Background()

	for _, token := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		session, err := provider.GetSession(ctx, token)
		require.NoError(t, err)
		assert.Nil(t, session)
	}
}

func TestGetSessionReflectsPromotion(t *testing.T) {
	provider, db := setupProvider(t, time.Hour)
	ctx := context.Background()

	token, err := provider.SignUpEmail(ctx, SignUpBody{Name: "A", Email: "a@aurumtrade.com", Password: "password1"})
	require.NoError(t, err)

	// Promote after the session was issued; the live session picks it up.
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "a@aurumtrade.com").Update("role", models.RoleAdmin).Error)

	session, err := provider.GetSession(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, models.RoleAdmin, session.Role)
}

func TestSignOutRevokes(t *testing.T) {
	provider, _ := setupProvider(t, time.Hour)
	ctx := context.Background()

	token, err := provider.SignUpEmail(ctx, SignUpBody{Name: "A", Email: "a@aurumtrade.com", Password: "password1"})
	require.NoError(t, err)

	require.NoError(t, provider.SignOut(ctx, token))

	session, err := provider.GetSession(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestPurgeExpiredSessions(t *testing.T) {
	provider, db := setupProvider(t, -time.Minute)
	ctx := context.Background()

	_, err := provider.SignUpEmail(ctx, SignUpBody{Name: "A", Email: "a@aurumtrade.com", Password: "password1"})
	require.NoError(t, err)

	var count int64
	db.Model(&models.Session{}).Count(&count)
	require.EqualValues(t, 1, count)

	require.NoError(t, provider.PurgeExpiredSessions(ctx))

	db.Model(&models.Session{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestExpiredSessionDoesNotResolve(t *testing.T) {
	provider, _ := setupProvider(t, -time.Minute)
	ctx := context.Background()

	token, err := provider.SignUpEmail(ctx, SignUpBody{Name: "A", Email: "a@aurumtrade.com", Password: "password1"})
	require.NoError(t, err)

	session, err := provider.GetSession(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, session)
}
