package models

import (
	"crypto/rand"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a []string as a JSON text column so it works across
// the sqlite and postgres drivers.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// News represents a published news article.
// Slug is assigned once at creation and never recomputed on edit.
type News struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"not null" json:"description"`
	Images      StringList `gorm:"type:text" json:"images"`
	Tags        StringList `gorm:"type:text" json:"tags"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	AuthorID    uint       `gorm:"not null" json:"authorId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

const newsIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewsIDLength is the length of the random token used as a News primary key.
const NewsIDLength = 7

// NewNewsID returns a short random token suitable as a News primary key.
func NewNewsID() string {
	buf := make([]byte, NewsIDLength)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand failure means the host is broken
	}
	for i, b := range buf {
		buf[i] = newsIDAlphabet[int(b)%len(newsIDAlphabet)]
	}
	return string(buf)
}
