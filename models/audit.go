package models

import "time"

// Audit actions recorded against service requests
const (
	AuditActionCreate     = "service_request.create"
	AuditActionUpdate     = "service_request.update"
	AuditActionBulkUpdate = "service_request.bulk_update"

	AuditResourceServiceRequest = "service_request"
)

// AuditLog records who changed what on a resource
type AuditLog struct {
	ID           string                 `json:"id" dynamodbav:"id"`
	UserID       string                 `json:"userId" dynamodbav:"userId"`
	Action       string                 `json:"action" dynamodbav:"action"`
	ResourceType string                 `json:"resourceType" dynamodbav:"resourceType"`
	ResourceID   string                 `json:"resourceId" dynamodbav:"resourceId"`
	OldValues    map[string]interface{} `json:"oldValues,omitempty" dynamodbav:"oldValues,omitempty"`
	NewValues    map[string]interface{} `json:"newValues,omitempty" dynamodbav:"newValues,omitempty"`
	Timestamp    time.Time              `json:"timestamp" dynamodbav:"timestamp"`
}
