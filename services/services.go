package services

import (
	"techservice-backend/models"
	"techservice-backend/repository"
	"techservice-backend/utils/logger"
)

// Service implements ServiceContainerInterface
type Service struct {
	serviceRequestService ServiceRequestServiceInterface
	analyticsService      AnalyticsServiceInterface
	userService           UserServiceInterface
	infrastructureService InfrastructureServiceInterface
}

// NewService creates a new service container with all dependencies injected.
// worker may be nil when table provisioning is disabled.
func NewService(
	repoContainer repository.RepositoryContainerInterface,
	notifier NotifierInterface,
	worker WorkerStatusProvider,
	logger logger.Logger,
	config *models.Config,
) ServiceContainerInterface {
	analytics := NewAnalyticsService(
		repoContainer.GetServiceRequestRepository(),
		repoContainer.GetUserRepository(),
		logger,
		config,
	)

	return &Service{
		serviceRequestService: NewServiceRequestService(
			repoContainer.GetServiceRequestRepository(),
			repoContainer.GetUserRepository(),
			repoContainer.GetAuditRepository(),
			notifier,
			analytics,
			logger,
			config,
		),
		analyticsService:      analytics,
		userService:           NewUserService(repoContainer.GetUserRepository(), logger),
		infrastructureService: NewInfrastructureService(worker, logger),
	}
}

// GetServiceRequestService returns the service request service interface
func (s *Service) GetServiceRequestService() ServiceRequestServiceInterface {
	return s.serviceRequestService
}

// GetAnalyticsService returns the analytics service interface
func (s *Service) GetAnalyticsService() AnalyticsServiceInterface {
	return s.analyticsService
}

// GetUserService returns the user service interface
func (s *Service) GetUserService() UserServiceInterface {
	return s.userService
}

// GetInfrastructureService returns the infrastructure service interface
func (s *Service) GetInfrastructureService() InfrastructureServiceInterface {
	return s.infrastructureService
}
