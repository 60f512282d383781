package models

import "time"

// LockInfo describes the file lock held while tables are provisioned
type LockInfo struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	AcquiredAt  time.Time `json:"acquired_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Environment string    `json:"environment"`
}

// WorkerStatus represents the current status of the infrastructure worker
type WorkerStatus string

const (
	StatusIdle           WorkerStatus = "idle"
	StatusRunning        WorkerStatus = "running"
	StatusCreatingTables WorkerStatus = "creating_tables"
	StatusCompleted      WorkerStatus = "completed"
	StatusFailed         WorkerStatus = "failed"
	StatusRetrying       WorkerStatus = "retrying"
	StatusSkipped        WorkerStatus = "skipped"
)

// ExecutionResult holds the outcome of the latest provisioning run
type ExecutionResult struct {
	Success   bool          `json:"success"`
	Status    WorkerStatus  `json:"status"`
	Phase     string        `json:"phase,omitempty"`
	OwnerID   string        `json:"owner_id"`
	StartTime time.Time     `json:"start_time"`
	EndTime   *time.Time    `json:"end_time,omitempty"`
	Duration  time.Duration `json:"duration"`
	Runs      int           `json:"runs"`

	Tables []TableStatus `json:"tables"`

	ErrorMessage string `json:"error_message,omitempty"`
	RetryCount   int    `json:"retry_count"`

	Environment  string `json:"environment"`
	HealthStatus string `json:"health_status,omitempty"` // healthy, degraded, provisioning
	NextAction   string `json:"next_action,omitempty"`
}

// TableStatus reports one table checked by the worker
type TableStatus struct {
	Name            string    `json:"name"`
	Status          string    `json:"status"` // ACTIVE, CREATING, FAILED
	Created         bool      `json:"created"`
	CheckedAt       time.Time `json:"checked_at"`
	IndexCount      int       `json:"index_count"`
	ExpectedIndexes int       `json:"expected_indexes"`
}
