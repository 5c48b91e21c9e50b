package models

import "time"

// Session is a persisted sign-in session. The bearer token is a JWT, but the
// row is the source of truth for revocation: signing out deletes the row and
// the token stops resolving even before it expires.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session's lifetime has elapsed.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
