// Package auth provides JWT authentication functionality for the storefront API.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents JWT claims for storefront authentication.
//
// Identity is carried by the user's UUID alone; everything else about
// the user (login, timestamps) is looked up from the store on each
// request so stale claims cannot outlive account changes.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the unique identifier (UUID) for the user.
	UserID string `json:"uid"`

	// Login is the human-readable login key, included for debuggability.
	Login string `json:"login,omitempty"`
}
