package services

import (
	"fmt"
	"techservice-backend/models"
	"time"
)

// technicianTransitions is the adjacency an assigned technician may follow.
// CANCELLED is terminal for technicians and never a target.
var technicianTransitions = map[models.ServiceStatus][]models.ServiceStatus{
	models.ServiceStatusPending:    {models.ServiceStatusConfirmed, models.ServiceStatusInProgress},
	models.ServiceStatusConfirmed:  {models.ServiceStatusInProgress, models.ServiceStatusOnHold},
	models.ServiceStatusInProgress: {models.ServiceStatusCompleted, models.ServiceStatusOnHold},
	models.ServiceStatusOnHold:     {models.ServiceStatusInProgress, models.ServiceStatusConfirmed},
	models.ServiceStatusCompleted:  {models.ServiceStatusInProgress},
	models.ServiceStatusCancelled:  {},
}

// CanActOnRequest reports whether the actor may mutate request at all
func CanActOnRequest(actor models.Actor, request *models.ServiceRequest) error {
	switch {
	case actor.IsPrivileged():
		return nil
	case actor.Role == models.UserRoleTechnician:
		if request.AssignedTo == "" || request.AssignedTo != actor.ID {
			return fmt.Errorf("%w: technician %s is not assigned to request %s", models.ErrUnauthorized, actor.ID, request.ID)
		}
		return nil
	default:
		return fmt.Errorf("%w: role %q cannot update service requests", models.ErrUnauthorized, actor.Role)
	}
}

// AllowedTransitions lists the statuses actor may move request to. Privileged
// actors may choose any status, the current one included.
func AllowedTransitions(actor models.Actor, request *models.ServiceRequest) []models.ServiceStatus {
	if CanActOnRequest(actor, request) != nil {
		return []models.ServiceStatus{}
	}
	if actor.IsPrivileged() {
		return models.AllServiceStatuses()
	}
	return append([]models.ServiceStatus{}, technicianTransitions[request.Status]...)
}

// AuthorizeStatusChange checks that actor may move request to target.
// It returns ErrUnauthorized for actors who may not touch the request and
// ErrInvalidTransition for targets outside the technician adjacency.
func AuthorizeStatusChange(actor models.Actor, request *models.ServiceRequest, target models.ServiceStatus) error {
	if !target.IsValid() {
		return fmt.Errorf("%w: unknown status %q", models.ErrValidation, target)
	}
	if err := CanActOnRequest(actor, request); err != nil {
		return err
	}
	if actor.IsPrivileged() {
		return nil
	}
	for _, next := range technicianTransitions[request.Status] {
		if next == target {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s is not allowed for technicians", models.ErrInvalidTransition, request.Status, target)
}

// AuthorizeUpdate checks every field of update against the actor's permissions
func AuthorizeUpdate(actor models.Actor, request *models.ServiceRequest, update *models.UpdateServiceRequestRequest) error {
	if err := CanActOnRequest(actor, request); err != nil {
		return err
	}
	if update.TouchesPrivilegedFields() && !actor.IsPrivileged() {
		return fmt.Errorf("%w: only managers and administrators may change assignment, priority or schedule", models.ErrUnauthorized)
	}
	if update.Status != nil {
		return AuthorizeStatusChange(actor, request, *update.Status)
	}
	return nil
}

// ApplyStatus moves request to target and maintains the derived close dates
func ApplyStatus(request *models.ServiceRequest, target models.ServiceStatus, now time.Time) {
	previous := request.Status
	request.Status = target

	if target == models.ServiceStatusCompleted && (previous != models.ServiceStatusCompleted || request.CompletedDate == nil) {
		completed := now
		request.CompletedDate = &completed
	} else if target != models.ServiceStatusCompleted {
		request.CompletedDate = nil
	}

	if target == models.ServiceStatusCancelled && (previous != models.ServiceStatusCancelled || request.CancelledDate == nil) {
		cancelled := now
		request.CancelledDate = &cancelled
	} else if target != models.ServiceStatusCancelled {
		request.CancelledDate = nil
	}
}
