package worker

import (
	"sync"
	"techservice-backend/models"
	"time"
)

// StatusManager keeps the latest provisioning result in memory
type StatusManager struct {
	mu     sync.RWMutex
	result models.ExecutionResult
}

func NewStatusManager(ownerID, env string) *StatusManager {
	return &StatusManager{
		result: models.ExecutionResult{
			Status:       models.StatusIdle,
			OwnerID:      ownerID,
			Environment:  env,
			HealthStatus: "provisioning",
			NextAction:   "Waiting for the first scheduled run",
		},
	}
}

// Begin marks the start of a run
func (sm *StatusManager) Begin(now time.Time) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.result.Status = models.StatusCreatingTables
	sm.result.Phase = "Table Creation"
	sm.result.StartTime = now
	sm.result.EndTime = nil
	sm.result.Duration = 0
	sm.result.RetryCount = 0
	sm.result.ErrorMessage = ""
	sm.result.Runs++
}

func (sm *StatusManager) Retrying(table string, attempt int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.result.Status = models.StatusRetrying
	sm.result.Phase = "Retrying " + table
	sm.result.RetryCount++
}

// Skipped records a run that did not get the lock
func (sm *StatusManager) Skipped(reason string, now time.Time) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.result.Status = models.StatusSkipped
	sm.result.Phase = ""
	sm.result.NextAction = reason
	sm.result.EndTime = &now
}

// Finish records the outcome of a run
func (sm *StatusManager) Finish(tables []models.TableStatus, err error, now time.Time) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.result.Tables = tables
	sm.result.EndTime = &now
	sm.result.Duration = now.Sub(sm.result.StartTime)
	sm.result.Phase = ""

	if err != nil {
		sm.result.Success = false
		sm.result.Status = models.StatusFailed
		sm.result.ErrorMessage = err.Error()
		sm.result.HealthStatus = "degraded"
		sm.result.NextAction = "Will retry on the next scheduled run"
		return
	}

	sm.result.Success = true
	sm.result.Status = models.StatusCompleted
	sm.result.HealthStatus = "healthy"
	sm.result.NextAction = "Monitoring"
	for _, t := range tables {
		if t.Status != "ACTIVE" {
			sm.result.HealthStatus = "provisioning"
			sm.result.NextAction = "Waiting for new tables to become active"
			break
		}
	}
}

// Snapshot returns a copy safe to hand to callers
func (sm *StatusManager) Snapshot() *models.ExecutionResult {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	out := sm.result
	out.Tables = append([]models.TableStatus(nil), sm.result.Tables...)
	if sm.result.EndTime != nil {
		end := *sm.result.EndTime
		out.EndTime = &end
	}
	return &out
}
