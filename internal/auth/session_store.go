package auth

import (
	"context"
	"errors"
	"time"

	"github.com/aurumtrade/aurum-api/internal/models"
	"gorm.io/gorm"
)

// SessionStore persists sign-in sessions. A session row existing for a token
// is what makes the token live; deleting the row revokes it.
type SessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Create(ctx context.Context, session *models.Session) error {
	return s.db.WithContext(ctx).Create(session).Error
}

// GetByToken returns the session for a token, or nil when the token has no
// live session. Expired rows are removed on the way out.
func (s *SessionStore) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if session.Expired() {
		_ = s.DeleteByToken(ctx, token)
		return nil, nil
	}
	return &session, nil
}

func (s *SessionStore) DeleteByToken(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{}).Error
}

// DeleteExpired removes all sessions past their expiry.
func (s *SessionStore) DeleteExpired(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("expires_at < ?", time.Now()).Delete(&models.Session{}).Error
}
