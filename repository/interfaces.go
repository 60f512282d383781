package repository

import (
	"context"
	"techservice-backend/models"
	"time"
)

// ServiceRequestRepositoryInterface defines the contract for service request persistence
type ServiceRequestRepositoryInterface interface {
	CreateServiceRequest(ctx context.Context, request *models.ServiceRequest) error
	GetServiceRequest(ctx context.Context, id string) (*models.ServiceRequest, error)
	// SaveServiceRequest replaces the stored request if its version still equals expectedVersion
	SaveServiceRequest(ctx context.Context, request *models.ServiceRequest, expectedVersion int64) error
	FindServiceRequests(ctx context.Context, filter models.ServiceRequestFilter) ([]*models.ServiceRequest, error)
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsersByRoles(ctx context.Context, roles ...models.UserRole) ([]*models.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// AuditRepositoryInterface defines the contract for the audit trail
type AuditRepositoryInterface interface {
	CreateAuditLog(ctx context.Context, entry *models.AuditLog) error
	ListByResource(ctx context.Context, resourceID string) ([]*models.AuditLog, error)
}

// RepositoryContainerInterface defines the contract for the repository container
type RepositoryContainerInterface interface {
	GetServiceRequestRepository() ServiceRequestRepositoryInterface
	GetUserRepository() UserRepositoryInterface
	GetAuditRepository() AuditRepositoryInterface
}
