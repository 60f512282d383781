package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"techservice-backend/models"
	"techservice-backend/repository"
	"techservice-backend/utils"
	"techservice-backend/utils/logger"
	"time"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// cacheInvalidator is told whenever stored requests change
type cacheInvalidator interface {
	Invalidate()
}

type ServiceRequestService struct {
	requestRepo repository.ServiceRequestRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	auditRepo   repository.AuditRepositoryInterface
	notifier    NotifierInterface
	cache       cacheInvalidator
	logger      logger.Logger
	config      *models.Config
	now         func() time.Time
}

func NewServiceRequestService(
	requestRepo repository.ServiceRequestRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	auditRepo repository.AuditRepositoryInterface,
	notifier NotifierInterface,
	cache cacheInvalidator,
	log logger.Logger,
	cfg *models.Config,
) *ServiceRequestService {
	return &ServiceRequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		auditRepo:   auditRepo,
		notifier:    notifier,
		cache:       cache,
		logger:      log,
		config:      cfg,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreateRequest opens a new request in PENDING. Customers create for themselves,
// managers and administrators on behalf of an existing customer.
func (s *ServiceRequestService) CreateRequest(ctx context.Context, actor models.Actor, req *models.CreateServiceRequestRequest) (*models.ServiceRequest, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	customerID, err := s.resolveCustomer(ctx, actor, req.CustomerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	request := &models.ServiceRequest{
		ID:             utils.GenerateUUID(),
		Title:          strings.TrimSpace(req.Title),
		Description:    strings.TrimSpace(req.Description),
		Type:           req.Type,
		Status:         models.ServiceStatusPending,
		Priority:       models.ServicePriorityMedium,
		ScheduledDate:  req.ScheduledDate.UTC(),
		CustomerID:     customerID,
		Price:          utils.Round(req.Price, 2),
		EstimatedHours: req.EstimatedHours,
		DeviceInfo:     req.DeviceInfo,
		IssueDetails:   strings.TrimSpace(req.IssueDetails),
		CreatedAt:      now,
		UpdatedAt:      now,
		UpdatedBy:      actor.ID,
		Version:        1,
	}

	if err := s.requestRepo.CreateServiceRequest(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Infof("Service request %s created for customer %s by %s", request.ID, customerID, actor.ID)
	s.recordAudit(ctx, actor, models.AuditActionCreate, request.ID, nil, snapshot(request))
	s.cache.Invalidate()
	return request, nil
}

func (s *ServiceRequestService) resolveCustomer(ctx context.Context, actor models.Actor, requested string) (string, error) {
	requested = strings.TrimSpace(requested)

	switch {
	case actor.Role == models.UserRoleCustomer:
		if requested != "" && requested != actor.ID {
			return "", fmt.Errorf("%w: customers can only open requests for themselves", models.ErrUnauthorized)
		}
		return actor.ID, nil
	case actor.IsPrivileged():
		if requested == "" {
			return "", fmt.Errorf("%w: customerId is required when creating on behalf of a customer", models.ErrValidation)
		}
		customer, err := s.userRepo.GetUser(ctx, requested)
		if err != nil {
			return "", err
		}
		if customer.Role != models.UserRoleCustomer {
			return "", fmt.Errorf("%w: user %s is not a customer", models.ErrValidation, requested)
		}
		return customer.ID, nil
	default:
		return "", fmt.Errorf("%w: role %q cannot open service requests", models.ErrUnauthorized, actor.Role)
	}
}

func validateCreate(req *models.CreateServiceRequestRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request body is required", models.ErrValidation)
	}
	title := strings.TrimSpace(req.Title)
	if len(title) < 3 || len(title) > 200 {
		return fmt.Errorf("%w: title must be between 3 and 200 characters", models.ErrValidation)
	}
	if len(req.Description) > 5000 || len(req.IssueDetails) > 5000 {
		return fmt.Errorf("%w: description and issue details must be at most 5000 characters", models.ErrValidation)
	}
	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", models.ErrValidation, req.Type)
	}
	if req.ScheduledDate.IsZero() {
		return fmt.Errorf("%w: scheduledDate is required", models.ErrValidation)
	}
	if req.Price < 0 || req.EstimatedHours < 0 {
		return fmt.Errorf("%w: price and estimatedHours must not be negative", models.ErrValidation)
	}
	return nil
}

// GetRequest returns one request. Customers only see their own.
func (s *ServiceRequestService) GetRequest(ctx context.Context, actor models.Actor, id string) (*models.ServiceRequest, error) {
	if !actor.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", models.ErrUnauthorized, actor.Role)
	}

	request, err := s.requestRepo.GetServiceRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == models.UserRoleCustomer && request.CustomerID != actor.ID {
		return nil, fmt.Errorf("%w: service request %s", models.ErrNotFound, id)
	}
	return request, nil
}

// ListRequests filters, sorts and pages requests. Status counts cover every
// filter except status itself.
func (s *ServiceRequestService) ListRequests(ctx context.Context, actor models.Actor, query models.ListServiceRequestsQuery) (*models.ServiceRequestList, error) {
	if !actor.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", models.ErrUnauthorized, actor.Role)
	}
	if err := normalizeListQuery(&query); err != nil {
		return nil, err
	}

	filter := query.ServiceRequestFilter
	if actor.Role == models.UserRoleCustomer {
		filter.CustomerID = actor.ID
	}

	countFilter := filter
	countFilter.Status = ""
	candidates, err := s.requestRepo.FindServiceRequests(ctx, countFilter)
	if err != nil {
		return nil, err
	}

	statusCounts := make(map[models.ServiceStatus]int, len(models.AllServiceStatuses()))
	for _, st := range models.AllServiceStatuses() {
		statusCounts[st] = 0
	}
	items := make([]*models.ServiceRequest, 0, len(candidates))
	for _, r := range candidates {
		statusCounts[r.Status]++
		if filter.Status == "" || r.Status == filter.Status {
			items = append(items, r)
		}
	}

	sortRequests(items, query.SortBy, query.SortOrder)

	total := len(items)
	totalPages := (total + query.PageSize - 1) / query.PageSize
	start := (query.Page - 1) * query.PageSize
	end := start + query.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &models.ServiceRequestList{
		Items: items[start:end],
		Pagination: models.Pagination{
			Page:        query.Page,
			Limit:       query.PageSize,
			Total:       total,
			TotalPages:  totalPages,
			HasNext:     query.Page < totalPages,
			HasPrevious: query.Page > 1,
		},
		StatusCounts: statusCounts,
	}, nil
}

var sortKeys = map[string]bool{
	"createdAt": true, "updatedAt": true, "scheduledDate": true,
	"priority": true, "status": true, "price": true, "title": true,
}

func normalizeListQuery(q *models.ListServiceRequestsQuery) error {
	if q.Status != "" && !q.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", models.ErrValidation, q.Status)
	}
	if q.Type != "" && !q.Type.IsValid() {
		return fmt.Errorf("%w: unknown type %q", models.ErrValidation, q.Type)
	}
	if q.Priority != "" && !q.Priority.IsValid() {
		return fmt.Errorf("%w: unknown priority %q", models.ErrValidation, q.Priority)
	}

	if q.Page == 0 {
		q.Page = 1
	}
	if q.Page < 1 {
		return fmt.Errorf("%w: page must be at least 1", models.ErrValidation)
	}
	if q.PageSize == 0 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize < 1 || q.PageSize > maxPageSize {
		return fmt.Errorf("%w: page size must be between 1 and %d", models.ErrValidation, maxPageSize)
	}

	if q.SortBy == "" {
		q.SortBy = "createdAt"
	}
	if !sortKeys[q.SortBy] {
		return fmt.Errorf("%w: cannot sort by %q", models.ErrValidation, q.SortBy)
	}
	q.SortOrder = strings.ToLower(q.SortOrder)
	if q.SortOrder == "" {
		q.SortOrder = "desc"
	}
	if q.SortOrder != "asc" && q.SortOrder != "desc" {
		return fmt.Errorf("%w: sortOrder must be asc or desc", models.ErrValidation)
	}
	return nil
}

func sortRequests(items []*models.ServiceRequest, sortBy, order string) {
	sort.SliceStable(items, func(i, j int) bool {
		c := compareBy(items[i], items[j], sortBy)
		if order == "desc" {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return items[i].ID < items[j].ID
	})
}

func compareBy(a, b *models.ServiceRequest, key string) int {
	switch key {
	case "updatedAt":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case "scheduledDate":
		return a.ScheduledDate.Compare(b.ScheduledDate)
	case "priority":
		return a.Priority.Rank() - b.Priority.Rank()
	case "status":
		return strings.Compare(string(a.Status), string(b.Status))
	case "price":
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		}
		return 0
	case "title":
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

// UpdateRequest applies a partial update after every authorization and
// transition check has passed. A rejected update changes nothing.
func (s *ServiceRequestService) UpdateRequest(ctx context.Context, actor models.Actor, id string, update *models.UpdateServiceRequestRequest) (*models.ServiceRequest, error) {
	if err := validateUpdate(update); err != nil {
		return nil, err
	}
	return s.updateOne(ctx, actor, id, update, models.AuditActionUpdate)
}

func (s *ServiceRequestService) updateOne(ctx context.Context, actor models.Actor, id string, update *models.UpdateServiceRequestRequest, action string) (*models.ServiceRequest, error) {
	if !actor.IsStaff() {
		return nil, fmt.Errorf("%w: role %q cannot update service requests", models.ErrUnauthorized, actor.Role)
	}

	current, err := s.requestRepo.GetServiceRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := AuthorizeUpdate(actor, current, update); err != nil {
		s.logger.Warnf("Rejected update of %s by %s (%s): %v", id, actor.ID, actor.Role, err)
		return nil, err
	}

	if update.AssignedTo != nil && *update.AssignedTo != "" {
		if err := s.checkAssignee(ctx, *update.AssignedTo); err != nil {
			return nil, err
		}
	}

	now := s.now()
	next := current.Clone()
	applyFields(next, update)
	if update.Status != nil {
		ApplyStatus(next, *update.Status, now)
	}
	next.UpdatedAt = now
	next.UpdatedBy = actor.ID
	next.Version = current.Version + 1

	if err := s.requestRepo.SaveServiceRequest(ctx, next, current.Version); err != nil {
		if errors.Is(err, models.ErrConflict) {
			s.logger.Warnf("Concurrent modification of %s detected, update by %s not applied", id, actor.ID)
		}
		return nil, err
	}

	s.logger.Infof("Service request %s updated by %s (%s -> %s)", id, actor.ID, current.Status, next.Status)
	oldValues, newValues := diff(current, next)
	s.recordAudit(ctx, actor, action, id, oldValues, newValues)
	if current.Status != next.Status {
		s.notify(ctx, actor, current, next)
	}
	s.cache.Invalidate()
	return next, nil
}

func (s *ServiceRequestService) checkAssignee(ctx context.Context, userID string) error {
	assignee, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if !assignee.Role.CanBeAssigned() {
		return fmt.Errorf("%w: user %s has role %s and cannot be assigned", models.ErrValidation, userID, assignee.Role)
	}
	if assignee.Status != models.UserStatusActive {
		return fmt.Errorf("%w: user %s is %s", models.ErrValidation, userID, assignee.Status)
	}
	return nil
}

func validateUpdate(update *models.UpdateServiceRequestRequest) error {
	if update == nil || update.IsEmpty() {
		return fmt.Errorf("%w: at least one field must be updated", models.ErrValidation)
	}
	if update.Status != nil && !update.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", models.ErrValidation, *update.Status)
	}
	if update.Priority != nil && !update.Priority.IsValid() {
		return fmt.Errorf("%w: unknown priority %q", models.ErrValidation, *update.Priority)
	}
	if update.ScheduledDate != nil && update.ScheduledDate.IsZero() {
		return fmt.Errorf("%w: scheduledDate cannot be empty", models.ErrValidation)
	}
	if update.ActualHours != nil && *update.ActualHours < 0 {
		return fmt.Errorf("%w: actualHours must not be negative", models.ErrValidation)
	}
	for _, part := range update.PartsUsed {
		if strings.TrimSpace(part) == "" {
			return fmt.Errorf("%w: partsUsed entries must not be blank", models.ErrValidation)
		}
	}
	return nil
}

func applyFields(r *models.ServiceRequest, u *models.UpdateServiceRequestRequest) {
	if u.AssignedTo != nil {
		r.AssignedTo = strings.TrimSpace(*u.AssignedTo)
	}
	if u.Priority != nil {
		r.Priority = *u.Priority
	}
	if u.ScheduledDate != nil {
		r.ScheduledDate = u.ScheduledDate.UTC()
	}
	if u.ActualHours != nil {
		h := *u.ActualHours
		r.ActualHours = &h
	}
	if u.Notes != nil {
		r.WorkNotes = *u.Notes
	}
	if u.ResolutionNotes != nil {
		r.ResolutionNotes = *u.ResolutionNotes
	}
	if u.PartsUsed != nil {
		r.PartsUsed = append([]string(nil), u.PartsUsed...)
	}
	if u.CompletionNotes != nil {
		r.CompletionNotes = *u.CompletionNotes
	}
}

// BulkUpdate runs UpdateRequest for each id independently. Item failures are
// reported per id; successes are not rolled back.
func (s *ServiceRequestService) BulkUpdate(ctx context.Context, actor models.Actor, ids []string, update *models.UpdateServiceRequestRequest) (*models.BulkUpdateResult, error) {
	if err := validateUpdate(update); err != nil {
		return nil, err
	}
	unique, err := s.normalizeIDs(ids)
	if err != nil {
		return nil, err
	}

	result := &models.BulkUpdateResult{Results: make([]models.BulkUpdateOutcome, 0, len(unique))}
	for _, id := range unique {
		updated, err := s.updateOne(ctx, actor, id, update, models.AuditActionBulkUpdate)
		if err != nil {
			result.Failed++
			result.Results = append(result.Results, models.BulkUpdateOutcome{
				ID:        id,
				ErrorType: models.ErrorType(err),
				Error:     err.Error(),
			})
			continue
		}
		result.Succeeded++
		result.Results = append(result.Results, models.BulkUpdateOutcome{ID: id, Success: true, Request: updated})
	}

	s.logger.Infof("Bulk update by %s: %d succeeded, %d failed", actor.ID, result.Succeeded, result.Failed)
	return result, nil
}

func (s *ServiceRequestService) normalizeIDs(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one id is required", models.ErrValidation)
	}
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("%w: ids must not be blank", models.ErrValidation)
		}
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	if len(unique) > s.config.BulkUpdateMaxItems {
		return nil, fmt.Errorf("%w: at most %d ids per bulk update", models.ErrValidation, s.config.BulkUpdateMaxItems)
	}
	return unique, nil
}

// GetHistory returns the audit trail of a request the actor can see
func (s *ServiceRequestService) GetHistory(ctx context.Context, actor models.Actor, id string) ([]*models.AuditLog, error) {
	if _, err := s.GetRequest(ctx, actor, id); err != nil {
		return nil, err
	}
	return s.auditRepo.ListByResource(ctx, id)
}

// GetAllowedTransitions reports which statuses the actor could set right now
func (s *ServiceRequestService) GetAllowedTransitions(ctx context.Context, actor models.Actor, id string) (*models.TransitionOptions, error) {
	request, err := s.GetRequest(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return &models.TransitionOptions{
		RequestID: request.ID,
		Current:   request.Status,
		Allowed:   AllowedTransitions(actor, request),
	}, nil
}

func (s *ServiceRequestService) recordAudit(ctx context.Context, actor models.Actor, action, resourceID string, oldValues, newValues map[string]interface{}) {
	entry := &models.AuditLog{
		ID:           utils.GenerateUUID(),
		UserID:       actor.ID,
		Action:       action,
		ResourceType: models.AuditResourceServiceRequest,
		ResourceID:   resourceID,
		OldValues:    oldValues,
		NewValues:    newValues,
		Timestamp:    s.now(),
	}
	if err := s.auditRepo.CreateAuditLog(ctx, entry); err != nil {
		s.logger.Warnf("Audit entry for %s %s was not written: %v", action, resourceID, err)
	}
}

func (s *ServiceRequestService) notify(ctx context.Context, actor models.Actor, before, after *models.ServiceRequest) {
	event := models.StatusChangeEvent{
		RequestID:  after.ID,
		Title:      after.Title,
		CustomerID: after.CustomerID,
		AssignedTo: after.AssignedTo,
		From:       before.Status,
		To:         after.Status,
		ChangedBy:  actor.ID,
		ChangedAt:  after.UpdatedAt,
	}
	if err := s.notifier.NotifyStatusChange(ctx, event); err != nil {
		s.logger.Warnf("Status change notification for %s failed: %v", after.ID, err)
	}
}

func snapshot(r *models.ServiceRequest) map[string]interface{} {
	return map[string]interface{}{
		"title":         r.Title,
		"type":          r.Type,
		"status":        r.Status,
		"priority":      r.Priority,
		"customerId":    r.CustomerID,
		"scheduledDate": r.ScheduledDate,
		"price":         r.Price,
	}
}

// diff returns the before and after values of every field that changed
func diff(before, after *models.ServiceRequest) (map[string]interface{}, map[string]interface{}) {
	oldValues := map[string]interface{}{}
	newValues := map[string]interface{}{}
	add := func(field string, o, n interface{}) {
		oldValues[field] = o
		newValues[field] = n
	}

	if before.Status != after.Status {
		add("status", before.Status, after.Status)
	}
	if before.AssignedTo != after.AssignedTo {
		add("assignedTo", before.AssignedTo, after.AssignedTo)
	}
	if before.Priority != after.Priority {
		add("priority", before.Priority, after.Priority)
	}
	if !before.ScheduledDate.Equal(after.ScheduledDate) {
		add("scheduledDate", before.ScheduledDate, after.ScheduledDate)
	}
	if !equalFloatPtr(before.ActualHours, after.ActualHours) {
		add("actualHours", derefFloat(before.ActualHours), derefFloat(after.ActualHours))
	}
	if before.WorkNotes != after.WorkNotes {
		add("workNotes", before.WorkNotes, after.WorkNotes)
	}
	if before.ResolutionNotes != after.ResolutionNotes {
		add("resolutionNotes", before.ResolutionNotes, after.ResolutionNotes)
	}
	if before.CompletionNotes != after.CompletionNotes {
		add("completionNotes", before.CompletionNotes, after.CompletionNotes)
	}
	if strings.Join(before.PartsUsed, "\x00") != strings.Join(after.PartsUsed, "\x00") {
		add("partsUsed", before.PartsUsed, after.PartsUsed)
	}
	if !equalTimePtr(before.CompletedDate, after.CompletedDate) {
		add("completedDate", before.CompletedDate, after.CompletedDate)
	}
	if !equalTimePtr(before.CancelledDate, after.CancelledDate) {
		add("cancelledDate", before.CancelledDate, after.CancelledDate)
	}
	return oldValues, newValues
}

func equalFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func derefFloat(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
