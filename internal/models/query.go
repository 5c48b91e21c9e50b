package models

import "time"

// Query is a contact-form submission from a site visitor.
// Rows are only ever inserted; nothing in this codebase mutates or deletes them.
type Query struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Subject     string    `gorm:"not null" json:"subject"`
	Email       string    `gorm:"not null" json:"email"`
	PhoneNumber string    `json:"phoneNumber"` // stored as text even though validated numeric
	Message     string    `gorm:"not null" json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}
