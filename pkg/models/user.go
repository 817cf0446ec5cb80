// Package models defines the storefront domain entities and their
// persistence mapping.
package models

import (
	"fmt"
	"time"
)

// User represents one registered storefront account.
//
// The login key is the single unique field used to identify an account
// at authentication time; it may hold an email address or a username,
// the system does not care which. The plaintext password is never
// stored, only its bcrypt hash, and the hash is never serialized.
type User struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Login        string     `gorm:"uniqueIndex;not null;size:255" json:"login"`
	PasswordHash string     `gorm:"not null" json:"-"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`

	// Products created by this user
	Products []Product `gorm:"foreignKey:UserID" json:"products,omitempty"`

	// Orders placed by this user
	Orders []Order `gorm:"foreignKey:UserID" json:"orders,omitempty"`
}

// TableName returns the table name for User.
func (User) TableName() string {
	return "users"
}

// Validate checks if the user has valid configuration.
func (u *User) Validate() error {
	if u.Login == "" {
		return fmt.Errorf("login is required")
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	return nil
}
