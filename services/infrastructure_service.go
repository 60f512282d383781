package services

import (
	"context"
	"fmt"
	"techservice-backend/models"
	"techservice-backend/utils/logger"
)

// WorkerStatusProvider is implemented by the table provisioning worker
type WorkerStatusProvider interface {
	Status() *models.ExecutionResult
	IsRunning() bool
}

type InfrastructureService struct {
	worker WorkerStatusProvider
	logger logger.Logger
}

func NewInfrastructureService(worker WorkerStatusProvider, log logger.Logger) *InfrastructureService {
	return &InfrastructureService{worker: worker, logger: log}
}

// GetWorkerStatus returns the latest provisioning result
func (s *InfrastructureService) GetWorkerStatus(ctx context.Context) (*models.ExecutionResult, error) {
	if s.worker == nil {
		return nil, fmt.Errorf("%w: infrastructure worker is not enabled", models.ErrNotFound)
	}

	result := s.worker.Status()
	if !s.worker.IsRunning() && result.Status != models.StatusFailed {
		result.NextAction = "Worker is stopped"
	}
	s.logger.Debugf("Worker status %s (runs=%d)", result.Status, result.Runs)
	return result, nil
}
