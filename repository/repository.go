package repository

import (
	"techservice-backend/dal"
	"techservice-backend/models"
	"techservice-backend/utils/logger"
)

// Table base names, prefixed with Config.DynamoDBTablePrefix at runtime
const (
	ServiceRequestsTable = "service_requests"
	UsersTable           = "users"
	AuditLogsTable       = "audit_logs"
)

type Repository struct {
	serviceRequests *ServiceRequestRepository
	users           *UserRepository
	audit           *AuditRepository
}

func NewRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *Repository {
	return &Repository{
		serviceRequests: NewServiceRequestRepository(db, cfg, log),
		users:           NewUserRepository(db, cfg, log),
		audit:           NewAuditRepository(db, cfg, log),
	}
}

func (r *Repository) GetServiceRequestRepository() ServiceRequestRepositoryInterface {
	return r.serviceRequests
}

func (r *Repository) GetUserRepository() UserRepositoryInterface {
	return r.users
}

func (r *Repository) GetAuditRepository() AuditRepositoryInterface {
	return r.audit
}
