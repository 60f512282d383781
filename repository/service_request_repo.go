package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"techservice-backend/dal"
	"techservice-backend/models"
	"techservice-backend/utils/logger"
)

type ServiceRequestRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewServiceRequestRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *ServiceRequestRepository {
	return &ServiceRequestRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *ServiceRequestRepository) table() string {
	return r.config.TableName(ServiceRequestsTable)
}

// CreateServiceRequest stores a new request. The id must not exist yet.
func (r *ServiceRequestRepository) CreateServiceRequest(ctx context.Context, request *models.ServiceRequest) error {
	r.logger.Infof("Creating service request: %s", request.ID)

	if err := r.db.PutItemIfVersion(ctx, r.table(), request, 0); err != nil {
		r.logger.Errorf("Failed to create service request %s: %v", request.ID, err)
		return err
	}
	return nil
}

func (r *ServiceRequestRepository) GetServiceRequest(ctx context.Context, id string) (*models.ServiceRequest, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: service request id is required", models.ErrValidation)
	}

	var request models.ServiceRequest
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.table(),
		KeyName:   "id",
		KeyValue:  id,
		KeyType:   models.StringType,
	}, &request)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: service request %s", models.ErrNotFound, id)
		}
		r.logger.Errorf("Failed to get service request %s: %v", id, err)
		return nil, err
	}

	return &request, nil
}

func (r *ServiceRequestRepository) SaveServiceRequest(ctx context.Context, request *models.ServiceRequest, expectedVersion int64) error {
	r.logger.Infof("Saving service request %s at version %d", request.ID, request.Version)

	if err := r.db.PutItemIfVersion(ctx, r.table(), request, expectedVersion); err != nil {
		if !errors.Is(err, models.ErrConflict) {
			r.logger.Errorf("Failed to save service request %s: %v", request.ID, err)
		}
		return err
	}
	return nil
}

// FindServiceRequests loads requests matching filter. The most selective index is
// queried when a keyed field is set; everything else is filtered in memory.
func (r *ServiceRequestRepository) FindServiceRequests(ctx context.Context, filter models.ServiceRequestFilter) ([]*models.ServiceRequest, error) {
	var (
		requests []*models.ServiceRequest
		err      error
	)

	switch {
	case filter.CustomerID != "":
		err = r.db.QueryByIndex(ctx, r.table(), "customerId-index", "customerId", filter.CustomerID, &requests)
	case filter.AssignedTo != "":
		err = r.db.QueryByIndex(ctx, r.table(), "assignedTo-index", "assignedTo", filter.AssignedTo, &requests)
	case filter.Status != "":
		err = r.db.QueryByIndex(ctx, r.table(), "status-index", "status", string(filter.Status), &requests)
	default:
		err = r.db.Scan(ctx, r.table(), &requests)
	}
	if err != nil {
		r.logger.Errorf("Failed to load service requests: %v", err)
		return nil, err
	}

	filtered := make([]*models.ServiceRequest, 0, len(requests))
	for _, req := range requests {
		if MatchesFilter(req, filter) {
			filtered = append(filtered, req)
		}
	}

	r.logger.Debugf("Found %d service requests (%d before filtering)", len(filtered), len(requests))
	return filtered, nil
}

// MatchesFilter reports whether req satisfies every non-empty field of filter
func MatchesFilter(req *models.ServiceRequest, filter models.ServiceRequestFilter) bool {
	if filter.Status != "" && req.Status != filter.Status {
		return false
	}
	if filter.Type != "" && req.Type != filter.Type {
		return false
	}
	if filter.Priority != "" && req.Priority != filter.Priority {
		return false
	}
	if filter.AssignedTo != "" && req.AssignedTo != filter.AssignedTo {
		return false
	}
	if filter.CustomerID != "" && req.CustomerID != filter.CustomerID {
		return false
	}
	if term := strings.ToLower(strings.TrimSpace(filter.Search)); term != "" {
		haystacks := []string{req.ID, req.Title, req.Description, req.IssueDetails}
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), term) {
				return true
			}
		}
		return false
	}
	return true
}
