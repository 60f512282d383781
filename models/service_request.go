package models

import (
	"time"
)

// ServiceType represents the kind of work requested. Immutable after creation.
type ServiceType string

const (
	ServiceTypeRepair       ServiceType = "REPAIR"
	ServiceTypeUpgrade      ServiceType = "UPGRADE"
	ServiceTypeConsultation ServiceType = "CONSULTATION"
	ServiceTypeInstallation ServiceType = "INSTALLATION"
	ServiceTypeMaintenance  ServiceType = "MAINTENANCE"
	ServiceTypeDiagnostics  ServiceType = "DIAGNOSTICS"
)

// ServiceStatus represents the lifecycle state of a service request
type ServiceStatus string

const (
	ServiceStatusPending    ServiceStatus = "PENDING"
	ServiceStatusConfirmed  ServiceStatus = "CONFIRMED"
	ServiceStatusInProgress ServiceStatus = "IN_PROGRESS"
	ServiceStatusCompleted  ServiceStatus = "COMPLETED"
	ServiceStatusCancelled  ServiceStatus = "CANCELLED"
	ServiceStatusOnHold     ServiceStatus = "ON_HOLD"
)

// ServicePriority represents how urgently a request should be handled
type ServicePriority string

const (
	ServicePriorityLow    ServicePriority = "LOW"
	ServicePriorityMedium ServicePriority = "MEDIUM"
	ServicePriorityHigh   ServicePriority = "HIGH"
	ServicePriorityUrgent ServicePriority = "URGENT"
)

// AllServiceTypes lists every service type in display order
func AllServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceTypeRepair, ServiceTypeUpgrade, ServiceTypeConsultation,
		ServiceTypeInstallation, ServiceTypeMaintenance, ServiceTypeDiagnostics,
	}
}

// AllServiceStatuses lists every status in lifecycle order
func AllServiceStatuses() []ServiceStatus {
	return []ServiceStatus{
		ServiceStatusPending, ServiceStatusConfirmed, ServiceStatusInProgress,
		ServiceStatusCompleted, ServiceStatusCancelled, ServiceStatusOnHold,
	}
}

// AllServicePriorities lists every priority from lowest to highest
func AllServicePriorities() []ServicePriority {
	return []ServicePriority{
		ServicePriorityLow, ServicePriorityMedium, ServicePriorityHigh, ServicePriorityUrgent,
	}
}

func (t ServiceType) IsValid() bool {
	for _, v := range AllServiceTypes() {
		if v == t {
			return true
		}
	}
	return false
}

func (s ServiceStatus) IsValid() bool {
	for _, v := range AllServiceStatuses() {
		if v == s {
			return true
		}
	}
	return false
}

// IsClosed reports whether the status ends the active work on a request
func (s ServiceStatus) IsClosed() bool {
	return s == ServiceStatusCompleted || s == ServiceStatusCancelled
}

func (p ServicePriority) IsValid() bool {
	return p.Rank() > 0
}

// Rank orders priorities LOW < MEDIUM < HIGH < URGENT. Unknown values rank 0.
func (p ServicePriority) Rank() int {
	for i, v := range AllServicePriorities() {
		if v == p {
			return i + 1
		}
	}
	return 0
}

// ServiceRequest represents a customer's request for technical service
type ServiceRequest struct {
	ID          string          `json:"id" dynamodbav:"id"`
	Title       string          `json:"title" dynamodbav:"title"`
	Description string          `json:"description" dynamodbav:"description"`
	Type        ServiceType     `json:"type" dynamodbav:"type"`
	Status      ServiceStatus   `json:"status" dynamodbav:"status"`
	Priority    ServicePriority `json:"priority" dynamodbav:"priority"`

	ScheduledDate time.Time  `json:"scheduledDate" dynamodbav:"scheduledDate"`
	CompletedDate *time.Time `json:"completedDate,omitempty" dynamodbav:"completedDate,omitempty"`
	CancelledDate *time.Time `json:"cancelledDate,omitempty" dynamodbav:"cancelledDate,omitempty"`

	CustomerID string `json:"customerId" dynamodbav:"customerId"`
	AssignedTo string `json:"assignedTo,omitempty" dynamodbav:"assignedTo,omitempty"`

	Price          float64  `json:"price" dynamodbav:"price"`
	EstimatedHours float64  `json:"estimatedHours" dynamodbav:"estimatedHours"`
	ActualHours    *float64 `json:"actualHours,omitempty" dynamodbav:"actualHours,omitempty"`

	DeviceInfo      map[string]interface{} `json:"deviceInfo,omitempty" dynamodbav:"deviceInfo,omitempty"`
	IssueDetails    string                 `json:"issueDetails,omitempty" dynamodbav:"issueDetails,omitempty"`
	ResolutionNotes string                 `json:"resolutionNotes,omitempty" dynamodbav:"resolutionNotes,omitempty"`
	PartsUsed       []string               `json:"partsUsed,omitempty" dynamodbav:"partsUsed,omitempty"`
	WorkNotes       string                 `json:"workNotes,omitempty" dynamodbav:"workNotes,omitempty"`
	CompletionNotes string                 `json:"completionNotes,omitempty" dynamodbav:"completionNotes,omitempty"`

	CreatedAt time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
	UpdatedBy string    `json:"updatedBy,omitempty" dynamodbav:"updatedBy,omitempty"`

	// Version is bumped on every save and guards conditional writes
	Version int64 `json:"version" dynamodbav:"version"`
}

// ClosedAt returns when the request was completed or cancelled, if it is closed
func (r *ServiceRequest) ClosedAt() *time.Time {
	switch r.Status {
	case ServiceStatusCompleted:
		return r.CompletedDate
	case ServiceStatusCancelled:
		return r.CancelledDate
	}
	return nil
}

// Clone returns a deep copy so that updates can be applied without touching the original
func (r *ServiceRequest) Clone() *ServiceRequest {
	c := *r
	if r.CompletedDate != nil {
		t := *r.CompletedDate
		c.CompletedDate = &t
	}
	if r.CancelledDate != nil {
		t := *r.CancelledDate
		c.CancelledDate = &t
	}
	if r.ActualHours != nil {
		h := *r.ActualHours
		c.ActualHours = &h
	}
	if r.PartsUsed != nil {
		c.PartsUsed = append([]string(nil), r.PartsUsed...)
	}
	if r.DeviceInfo != nil {
		c.DeviceInfo = make(map[string]interface{}, len(r.DeviceInfo))
		for k, v := range r.DeviceInfo {
			c.DeviceInfo[k] = v
		}
	}
	return &c
}

// CreateServiceRequestRequest represents the request payload for creating a service request
type CreateServiceRequestRequest struct {
	CustomerID     string                 `json:"customerId,omitempty" validate:"omitempty,max=64"`
	Title          string                 `json:"title" validate:"required,min=3,max=200"`
	Description    string                 `json:"description" validate:"max=5000"`
	Type           ServiceType            `json:"type" validate:"required,oneof=REPAIR UPGRADE CONSULTATION INSTALLATION MAINTENANCE DIAGNOSTICS"`
	ScheduledDate  time.Time              `json:"scheduledDate" validate:"required"`
	Price          float64                `json:"price" validate:"gte=0"`
	EstimatedHours float64                `json:"estimatedHours" validate:"gte=0"`
	DeviceInfo     map[string]interface{} `json:"deviceInfo,omitempty"`
	IssueDetails   string                 `json:"issueDetails,omitempty" validate:"max=5000"`
}

// UpdateServiceRequestRequest is the partial update payload. Nil fields are left unchanged.
type UpdateServiceRequestRequest struct {
	Status          *ServiceStatus   `json:"status,omitempty" validate:"omitempty,oneof=PENDING CONFIRMED IN_PROGRESS COMPLETED CANCELLED ON_HOLD"`
	AssignedTo      *string          `json:"assignedTo,omitempty" validate:"omitempty,max=64"`
	Priority        *ServicePriority `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	ScheduledDate   *time.Time       `json:"scheduledDate,omitempty"`
	ActualHours     *float64         `json:"actualHours,omitempty" validate:"omitempty,gte=0"`
	Notes           *string          `json:"notes,omitempty" validate:"omitempty,max=5000"`
	ResolutionNotes *string          `json:"resolutionNotes,omitempty" validate:"omitempty,max=5000"`
	PartsUsed       []string         `json:"partsUsed,omitempty" validate:"omitempty,dive,required"`
	CompletionNotes *string          `json:"completionNotes,omitempty" validate:"omitempty,max=5000"`
}

// IsEmpty reports whether the payload carries no changes at all
func (u *UpdateServiceRequestRequest) IsEmpty() bool {
	return u.Status == nil && u.AssignedTo == nil && u.Priority == nil &&
		u.ScheduledDate == nil && u.ActualHours == nil && u.Notes == nil &&
		u.ResolutionNotes == nil && u.PartsUsed == nil && u.CompletionNotes == nil
}

// TouchesPrivilegedFields reports whether the payload changes fields only managers may set
func (u *UpdateServiceRequestRequest) TouchesPrivilegedFields() bool {
	return u.AssignedTo != nil || u.Priority != nil || u.ScheduledDate != nil
}

// BulkUpdateRequest applies one partial update to many requests
type BulkUpdateRequest struct {
	IDs    []string                    `json:"ids" validate:"required,min=1,dive,required"`
	Update UpdateServiceRequestRequest `json:"update"`
}

// BulkUpdateOutcome is the per-item result of a bulk update
type BulkUpdateOutcome struct {
	ID        string          `json:"id"`
	Success   bool            `json:"success"`
	ErrorType string          `json:"errorType,omitempty"`
	Error     string          `json:"error,omitempty"`
	Request   *ServiceRequest `json:"request,omitempty"`
}

// BulkUpdateResult summarizes a bulk update
type BulkUpdateResult struct {
	Results   []BulkUpdateOutcome `json:"results"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}

// ServiceRequestFilter holds list filters. Empty fields do not filter.
type ServiceRequestFilter struct {
	Status     ServiceStatus   `json:"status,omitempty" form:"status"`
	Type       ServiceType     `json:"type,omitempty" form:"type"`
	Priority   ServicePriority `json:"priority,omitempty" form:"priority"`
	AssignedTo string          `json:"assignedTo,omitempty" form:"assignedTo"`
	CustomerID string          `json:"customerId,omitempty" form:"customerId"`
	Search     string          `json:"search,omitempty" form:"search"`
}

// ListServiceRequestsQuery combines filters with paging and sorting
type ListServiceRequestsQuery struct {
	ServiceRequestFilter
	Page      int    `json:"page" form:"page"`
	PageSize  int    `json:"pageSize" form:"limit"`
	SortBy    string `json:"sortBy" form:"sortBy"`
	SortOrder string `json:"sortOrder" form:"sortOrder"`
}

// Pagination describes one page of a listing
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// ServiceRequestList is the listing result
type ServiceRequestList struct {
	Items        []*ServiceRequest     `json:"items"`
	Pagination   Pagination            `json:"pagination"`
	StatusCounts map[ServiceStatus]int `json:"statusCounts"`
}

// StatusChangeEvent is published whenever a request changes status
type StatusChangeEvent struct {
	RequestID  string        `json:"requestId"`
	Title      string        `json:"title"`
	CustomerID string        `json:"customerId"`
	AssignedTo string        `json:"assignedTo,omitempty"`
	From       ServiceStatus `json:"from"`
	To         ServiceStatus `json:"to"`
	ChangedBy  string        `json:"changedBy"`
	ChangedAt  time.Time     `json:"changedAt"`
}

// TransitionOptions lists the statuses an actor may move a request to
type TransitionOptions struct {
	RequestID string          `json:"requestId"`
	Current   ServiceStatus   `json:"current"`
	Allowed   []ServiceStatus `json:"allowed"`
}
