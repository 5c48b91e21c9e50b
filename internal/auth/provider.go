// Package auth implements the email sign-up/sign-in provider backing the
// site's admin area: bcrypt credentials, JWT bearer tokens, and a persisted
// session per issued token so sign-out actually revokes.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/aurumtrade/aurum-api/internal/models"
	"github.com/aurumtrade/aurum-api/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// APIError is a domain-level provider failure (duplicate email, bad
// credentials) whose message is safe to surface verbatim to the caller.
// Anything else the provider returns is an unexpected error and must be
// replaced with a generic message before reaching a user.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// SessionInfo is what the rest of the application sees of a session.
type SessionInfo struct {
	UserID uint
	Role   string
}

// SignUpBody is the payload for SignUpEmail.
type SignUpBody struct {
	Name     string
	Email    string
	Password string
}

// SignInBody is the payload for SignInEmail.
type SignInBody struct {
	Email    string
	Password string
}

// Provider issues and resolves sessions for email-identified users.
type Provider struct {
	users    services.UserService
	sessions *SessionStore
	secret   []byte
	ttl      time.Duration
}

func NewProvider(db *gorm.DB, users services.UserService, jwtSecret string, sessionTTL time.Duration) *Provider {
	return &Provider{
		users:    users,
		sessions: NewSessionStore(db),
		secret:   []byte(jwtSecret),
		ttl:      sessionTTL,
	}
}

// SignUpEmail creates a user with a bcrypt-hashed password and opens a
// session for them. A reused email yields an APIError.
func (p *Provider) SignUpEmail(ctx context.Context, body SignUpBody) (string, error) {
	user := &models.User{
		Name:  body.Name,
		Email: body.Email,
		Role:  models.RoleMember,
	}
	user.Password = body.Password
	if err := user.HashPassword(); err != nil {
		return "", err
	}

	if err := p.users.CreateUser(user); err != nil {
		if err == services.ErrEmailTaken {
			return "", &APIError{Message: "Email is already registered."}
		}
		return "", err
	}

	return p.openSession(ctx, user)
}

// SignInEmail verifies credentials and opens a session. Both an unknown email
// and a wrong password yield the same APIError.
func (p *Provider) SignInEmail(ctx context.Context, body SignInBody) (string, error) {
	user, err := p.users.GetUserByEmail(body.Email)
	if err != nil || !user.CheckPassword(body.Password) {
		return "", &APIError{Message: "Invalid email or password."}
	}
	return p.openSession(ctx, user)
}

// GetSession resolves a bearer token to its session. It returns (nil, nil)
// when there is no live session: a malformed, unsigned, expired, or revoked
// token all read as "not signed in", never as an error.
func (p *Provider) GetSession(ctx context.Context, token string) (*SessionInfo, error) {
	if token == "" {
		return nil, nil
	}
	if !p.verifyToken(token) {
		return nil, nil
	}

	session, err := p.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	// The role comes from the user row, not the token claims, so a promotion
	// or demotion applies to sessions already in flight.
	user, err := p.users.GetUserByID(session.UserID)
	if err != nil {
		return nil, err
	}
	return &SessionInfo{UserID: user.ID, Role: user.Role}, nil
}

// SignOut revokes the session for a token. Unknown tokens are a no-op.
func (p *Provider) SignOut(ctx context.Context, token string) error {
	return p.sessions.DeleteByToken(ctx, token)
}

// PurgeExpiredSessions removes sessions past their expiry. GetSession already
// drops expired rows lazily; this clears out rows that are never looked
// up again.
func (p *Provider) PurgeExpiredSessions(ctx context.Context) error {
	return p.sessions.DeleteExpired(ctx)
}

// openSession signs a JWT for the user and persists the matching session row.
func (p *Provider) openSession(ctx context.Context, user *models.User) (string, error) {
	now := time.Now()
	expiresAt := now.Add(p.ttl)

	claims := jwt.MapClaims{
		"uid": user.ID,
		"sid": uuid.NewString(),
		"exp": expiresAt.Unix(),
		"iat": now.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", err
	}

	session := &models.Session{
		ID:        claims["sid"].(string),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := p.sessions.Create(ctx, session); err != nil {
		return "", err
	}

	log.WithFields(log.Fields{"user_id": user.ID, "session_id": session.ID}).Debug("Session opened")
	return token, nil
}

// verifyToken checks the JWT signature and its time claims.
func (p *Provider) verifyToken(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		// Pin the signing method to prevent algorithm confusion attacks.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	return err == nil && token.Valid
}
