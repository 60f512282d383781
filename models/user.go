package models

import "time"

// UserRole represents the role of a user
type UserRole string

const (
	UserRoleCustomer   UserRole = "CUSTOMER"
	UserRoleTechnician UserRole = "TECHNICIAN"
	UserRoleManager    UserRole = "MANAGER"
	UserRoleAdmin      UserRole = "ADMIN"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCustomer, UserRoleTechnician, UserRoleManager, UserRoleAdmin:
		return true
	}
	return false
}

// IsPrivileged reports whether the role may override the request lifecycle
func (r UserRole) IsPrivileged() bool {
	return r == UserRoleAdmin || r == UserRoleManager
}

// IsStaff reports whether the role works on service requests
func (r UserRole) IsStaff() bool {
	return r.IsPrivileged() || r == UserRoleTechnician
}

// CanBeAssigned reports whether users with this role can own a service request
func (r UserRole) CanBeAssigned() bool {
	return r == UserRoleTechnician || r == UserRoleManager
}

// UserStatus represents the status of a user account
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// User represents a user in the system
type User struct {
	ID           string     `json:"id" dynamodbav:"id"`
	Email        string     `json:"email" dynamodbav:"email"`
	Name         string     `json:"name" dynamodbav:"name"`
	PasswordHash string     `json:"-" dynamodbav:"password_hash"`
	Phone        *string    `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Role         UserRole   `json:"role" dynamodbav:"role"`
	Status       UserStatus `json:"status" dynamodbav:"status"`
	CreatedAt    time.Time  `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" dynamodbav:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" dynamodbav:"last_login_at,omitempty"`
}

// RegisterUser represents the request structure for customer self-registration
// @Description Customer registration request
type RegisterUser struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	Password string `json:"password" validate:"required,min=8" example:"securePassword123"`
	Name     string `json:"name" validate:"required,min=2,max=100" example:"Jane Doe"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=32" example:"+1234567890"`
}

// CreateUserRequest is used by administrators to create staff accounts
type CreateUserRequest struct {
	RegisterUser
	Role UserRole `json:"role" validate:"required,oneof=CUSTOMER TECHNICIAN MANAGER ADMIN" example:"TECHNICIAN"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	Password string `json:"password" validate:"required" example:"securePassword123"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}
