package controller

import (
	"context"
	"net/http"
	"techservice-backend/middelware"
	"techservice-backend/models"
	"techservice-backend/services"
	"techservice-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ServiceRequestController struct {
	ctx       context.Context
	service   services.ServiceRequestServiceInterface
	logger    logger.Logger
	validator *validator.Validate
}

func NewServiceRequestController(ctx context.Context, service services.ServiceRequestServiceInterface, logger logger.Logger) *ServiceRequestController {
	return &ServiceRequestController{
		ctx:       ctx,
		service:   service,
		logger:    logger,
		validator: newValidator(),
	}
}

// actor returns the authenticated caller or writes a 401
func (h *ServiceRequestController) actor(c *gin.Context) (models.Actor, bool) {
	actor, ok := middelware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Authentication required",
			Error: &models.APIError{
				Type:    models.ErrorTypeAuthentication,
				Details: "User not authenticated",
			},
		})
	}
	return actor, ok
}

// Create handles POST /api/v1/service-requests
// @Summary Create a service request
// @Description Customers book a service for themselves. Admins and managers may book on behalf of a customer by setting customerId.
// @Tags Service Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateServiceRequestRequest true "Service request details"
// @Success 201 {object} models.APIResponse{data=models.ServiceRequest} "Service request created successfully"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid service request data"
// @Failure 401 {object} models.APIResponse "Unauthorized - Authentication required"
// @Failure 403 {object} models.APIResponse "Forbidden - Role may not create requests"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Creation failed"
// @Router /service-requests [post]
func (h *ServiceRequestController) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req models.CreateServiceRequestRequest
	if !bindAndValidate(c, h.validator, h.logger, &req) {
		return
	}

	created, err := h.service.CreateRequest(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, h.logger, "Failed to create service request", err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Service request created successfully", created)
}

// List handles GET /api/v1/service-requests
// @Summary List service requests
// @Description Filtered, sorted and paginated listing. Customers only see their own requests.
// @Tags Service Requests
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status" Enums(PENDING, CONFIRMED, IN_PROGRESS, COMPLETED, CANCELLED, ON_HOLD)
// @Param type query string false "Filter by service type"
// @Param priority query string false "Filter by priority" Enums(LOW, MEDIUM, HIGH, URGENT)
// @Param assignedTo query string false "Filter by assignee id"
// @Param customerId query string false "Filter by customer id"
// @Param search query string false "Case-insensitive match on title and description"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param sortBy query string false "Sort field" Enums(createdAt, updatedAt, scheduledDate, priority, status, price, title)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} models.APIResponse{data=models.ServiceRequestList} "Service requests retrieved successfully"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid query parameters"
// @Failure 401 {object} models.APIResponse "Unauthorized - Authentication required"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Listing failed"
// @Router /service-requests [get]
func (h *ServiceRequestController) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var query models.ListServiceRequestsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidation(c, "Invalid query parameters", err.Error(), "")
		return
	}

	list, err := h.service.ListRequests(c.Request.Context(), actor, query)
	if err != nil {
		respondError(c, h.logger, "Failed to list service requests", err)
		return
	}

	respondSuccess(c, http.StatusOK, "Service requests retrieved successfully", list)
}

// Get handles GET /api/v1/service-requests/{id}
// @Summary Get a service request
// @Tags Service Requests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Service request ID"
// @Success 200 {object} models.APIResponse{data=models.ServiceRequest} "Service request retrieved successfully"
// @Failure 401 {object} models.APIResponse "Unauthorized - Authentication required"
// @Failure 404 {object} models.APIResponse "Not Found - Service request does not exist"
// @Router /service-requests/{id} [get]
func (h *ServiceRequestController) Get(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	request, err := h.service.GetRequest(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "Failed to get service request", err)
		return
	}

	respondSuccess(c, http.StatusOK, "Service request retrieved successfully", request)
}

// Update handles PATCH /api/v1/service-requests/{id}
// @Summary Update a service request
// @Description Partial update. Technicians may only move their own requests along allowed transitions; admins and managers may set any status, assignee, priority or schedule.
// @Tags Service Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Service request ID"
// @Param request body models.UpdateServiceRequestRequest true "Fields to change"
// @Success 200 {object} models.APIResponse{data=models.ServiceRequest} "Service request updated successfully"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid update"
// @Failure 403 {object} models.APIResponse "Forbidden - Not allowed to update this request"
// @Failure 404 {object} models.APIResponse "Not Found - Service request does not exist"
// @Failure 409 {object} models.APIResponse "Conflict - Request was modified concurrently"
// @Failure 422 {object} models.APIResponse "Unprocessable Entity - Status transition not allowed"
// @Router /service-requests/{id} [patch]
func (h *ServiceRequestController) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req models.UpdateServiceRequestRequest
	if !bindAndValidate(c, h.validator, h.logger, &req) {
		return
	}

	updated, err := h.service.UpdateRequest(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, "Failed to update service request", err)
		return
	}

	respondSuccess(c, http.StatusOK, "Service request updated successfully", updated)
}

// BulkUpdate handles POST /api/v1/service-requests/bulk-update
// @Summary Apply one update to many service requests
// @Description Each id is processed independently and reported in the results. The call succeeds even when some items fail.
// @Tags Service Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.BulkUpdateRequest true "Ids and the update to apply"
// @Success 200 {object} models.APIResponse{data=models.BulkUpdateResult} "Bulk update processed"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid bulk update"
// @Failure 403 {object} models.APIResponse "Forbidden - Staff only"
// @Router /service-requests/bulk-update [post]
func (h *ServiceRequestController) BulkUpdate(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req models.BulkUpdateRequest
	if !bindAndValidate(c, h.validator, h.logger, &req) {
		return
	}

	result, err := h.service.BulkUpdate(c.Request.Context(), actor, req.IDs, &req.Update)
	if err != nil {
		respondError(c, h.logger, "Failed to process bulk update", err)
		return
	}

	respondSuccess(c, http.StatusOK, "Bulk update processed", result)
}

// History handles GET /api/v1/service-requests/{id}/history
// @Summary Get the change history of a service request
// @Tags Service Requests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Service request ID"
// @Success 200 {object} models.APIResponse{data=[]models.AuditLog} "History retrieved successfully"
// @Failure 404 {object} models.APIResponse "Not Found - Service request does not exist"
// @Router /service-requests/{id}/history [get]
func (h *ServiceRequestController) History(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	entries, err := h.service.GetHistory(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "Failed to get service request history", err)
		return
	}

	respondSuccess(c, http.StatusOK, "History retrieved successfully", entries)
}

// Transitions handles GET /api/v1/service-requests/{id}/transitions
// @Summary List the statuses the caller may move a request to
// @Tags Service Requests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Service request ID"
// @Success 200 {object} models.APIResponse{data=models.TransitionOptions} "Allowed transitions retrieved successfully"
// @Failure 404 {object} models.APIResponse "Not Found - Service request does not exist"
// @Router /service-requests/{id}/transitions [get]
func (h *ServiceRequestController) Transitions(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	options, err := h.service.GetAllowedTransitions(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "Failed to get allowed transitions", err)
		return
	}

	respondSuccess(c, http.StatusOK, "Allowed transitions retrieved successfully", options)
}
