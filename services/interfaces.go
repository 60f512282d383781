package services

import (
	"context"
	"techservice-backend/models"
)

// ServiceRequestServiceInterface defines the lifecycle operations on service requests
type ServiceRequestServiceInterface interface {
	CreateRequest(ctx context.Context, actor models.Actor, req *models.CreateServiceRequestRequest) (*models.ServiceRequest, error)
	GetRequest(ctx context.Context, actor models.Actor, id string) (*models.ServiceRequest, error)
	ListRequests(ctx context.Context, actor models.Actor, query models.ListServiceRequestsQuery) (*models.ServiceRequestList, error)
	UpdateRequest(ctx context.Context, actor models.Actor, id string, update *models.UpdateServiceRequestRequest) (*models.ServiceRequest, error)
	BulkUpdate(ctx context.Context, actor models.Actor, ids []string, update *models.UpdateServiceRequestRequest) (*models.BulkUpdateResult, error)
	GetHistory(ctx context.Context, actor models.Actor, id string) ([]*models.AuditLog, error)
	GetAllowedTransitions(ctx context.Context, actor models.Actor, id string) (*models.TransitionOptions, error)
}

// AnalyticsServiceInterface defines the reporting contract
type AnalyticsServiceInterface interface {
	GetAnalytics(ctx context.Context, window models.AnalyticsWindow) (*models.AnalyticsReport, error)
	Invalidate()
}

// UserServiceInterface defines the contract for user service
type UserServiceInterface interface {
	Register(ctx context.Context, req *models.RegisterUser) (*models.User, error)
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListAssignableUsers(ctx context.Context) ([]*models.User, error)
}

// NotifierInterface publishes status changes. Failures are reported but never block a mutation.
type NotifierInterface interface {
	NotifyStatusChange(ctx context.Context, event models.StatusChangeEvent) error
	Close() error
}

// InfrastructureServiceInterface reports on the table provisioning worker
type InfrastructureServiceInterface interface {
	GetWorkerStatus(ctx context.Context) (*models.ExecutionResult, error)
}

// ServiceContainerInterface defines the main service container contract
type ServiceContainerInterface interface {
	GetServiceRequestService() ServiceRequestServiceInterface
	GetAnalyticsService() AnalyticsServiceInterface
	GetUserService() UserServiceInterface
	GetInfrastructureService() InfrastructureServiceInterface
}
