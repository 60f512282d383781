package controller

import (
	"context"
	"fmt"
	"net/http"
	"techservice-backend/models"
	"techservice-backend/services"
	"techservice-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type InfrastructureController struct {
	ctx     context.Context
	service services.InfrastructureServiceInterface
	logger  logger.Logger
}

func NewInfrastructureController(ctx context.Context, service services.InfrastructureServiceInterface, logger logger.Logger) *InfrastructureController {
	return &InfrastructureController{
		ctx:     ctx,
		service: service,
		logger:  logger,
	}
}

// GetWorkerStatus handles GET /api/v1/infrastructure/status
// @Summary Get table provisioning status
// @Description Latest run of the worker that creates the DynamoDB tables, including per-table state and health
// @Tags Infrastructure
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ExecutionResult} "Infrastructure is ready"
// @Success 202 {object} models.APIResponse{data=models.ExecutionResult} "Provisioning in progress"
// @Failure 401 {object} models.APIResponse "Unauthorized - Authentication required"
// @Failure 403 {object} models.APIResponse "Forbidden - Admin access required"
// @Failure 404 {object} models.APIResponse "Not Found - Worker disabled"
// @Failure 503 {object} models.APIResponse{data=models.ExecutionResult} "Service Unavailable - Provisioning failed"
// @Router /infrastructure/status [get]
func (h *InfrastructureController) GetWorkerStatus(c *gin.Context) {
	workerStatus, err := h.service.GetWorkerStatus(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Failed to retrieve worker status", err)
		return
	}

	httpStatus, apiStatus := mapWorkerStatusToHTTP(workerStatus)
	c.JSON(httpStatus, models.APIResponse{
		Status:  apiStatus,
		Code:    httpStatus,
		Message: statusMessage(workerStatus),
		Data:    workerStatus,
	})
}

// mapWorkerStatusToHTTP maps worker execution status to appropriate HTTP status codes
func mapWorkerStatusToHTTP(ws *models.ExecutionResult) (int, string) {
	switch ws.Status {
	case models.StatusCompleted:
		if ws.Success {
			return http.StatusOK, "success"
		}
		return http.StatusOK, "warning"
	case models.StatusFailed:
		return http.StatusServiceUnavailable, "error"
	case models.StatusRunning, models.StatusCreatingTables:
		return http.StatusAccepted, "in_progress"
	case models.StatusRetrying:
		return http.StatusAccepted, "retrying"
	default:
		return http.StatusOK, "info"
	}
}

func statusMessage(ws *models.ExecutionResult) string {
	switch ws.Status {
	case models.StatusCompleted:
		if ws.Success {
			return "Infrastructure is ready and healthy"
		}
		return "Infrastructure setup completed with warnings"
	case models.StatusFailed:
		return "Infrastructure setup failed - manual intervention may be required"
	case models.StatusCreatingTables:
		return "Creating DynamoDB tables"
	case models.StatusRetrying:
		return fmt.Sprintf("Retrying infrastructure setup (attempt %d)", ws.RetryCount+1)
	case models.StatusRunning:
		return "Infrastructure setup is running"
	case models.StatusSkipped:
		return "Another instance holds the provisioning lock"
	case models.StatusIdle:
		return "Infrastructure worker has not run yet"
	default:
		return "Worker status retrieved successfully"
	}
}
