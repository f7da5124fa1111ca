// Package model contains the database models used across the application
package model

import "time"

type User struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string  `gorm:"not null" json:"-"`
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`

	// Cleared on first successful redemption. A nil value means the
	// account is either verified or never had a token issued.
	VerificationToken *string `gorm:"uniqueIndex" json:"-"`
	Verified          bool    `gorm:"default:false" json:"verified"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
