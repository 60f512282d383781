package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims represents the JWT claims
type JWTClaims struct {
	UserID string     `json:"user_id"`
	Email  string     `json:"email"`
	Role   UserRole   `json:"role"`
	Status UserStatus `json:"status"`

	jwt.RegisteredClaims
}

// Actor identifies who performs an operation. Every lifecycle operation takes one explicitly.
type Actor struct {
	ID    string
	Role  UserRole
	Email string
}

// ActorFromClaims builds the acting identity from validated token claims
func ActorFromClaims(claims *JWTClaims) Actor {
	return Actor{ID: claims.UserID, Role: claims.Role, Email: claims.Email}
}

func (a Actor) IsPrivileged() bool { return a.Role.IsPrivileged() }

func (a Actor) IsStaff() bool { return a.Role.IsStaff() }
