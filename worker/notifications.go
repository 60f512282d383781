package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"techservice-backend/models"
	"techservice-backend/services"
	"techservice-backend/utils/logger"

	"github.com/hibiken/asynq"
)

// NotificationServer consumes status change tasks from the notification queue
type NotificationServer struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	logger logger.Logger
}

func NewNotificationServer(cfg *models.Config, log logger.Logger) *NotificationServer {
	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword},
		asynq.Config{
			Concurrency: 5,
			Queues:      map[string]int{cfg.NotificationQueue: 1},
			Logger:      log,
		},
	)

	ns := &NotificationServer{server: server, mux: asynq.NewServeMux(), logger: log}
	ns.mux.HandleFunc(services.TypeStatusChanged, ns.HandleStatusChanged)
	return ns
}

// HandleStatusChanged delivers one status change. Delivery is a structured log line;
// a malformed payload is not retried.
func (ns *NotificationServer) HandleStatusChanged(_ context.Context, task *asynq.Task) error {
	var event models.StatusChangeEvent
	if err := json.Unmarshal(task.Payload(), &event); err != nil {
		return fmt.Errorf("invalid status change payload: %v: %w", err, asynq.SkipRetry)
	}

	ns.logger.WithFields(map[string]interface{}{
		"request_id":  event.RequestID,
		"customer_id": event.CustomerID,
		"assigned_to": event.AssignedTo,
		"from":        event.From,
		"to":          event.To,
		"changed_by":  event.ChangedBy,
		"changed_at":  event.ChangedAt,
	}).Infof("Notify customer: %q is now %s", event.Title, event.To)
	return nil
}

// Start runs the consumer in the background
func (ns *NotificationServer) Start() error {
	return ns.server.Start(ns.mux)
}

func (ns *NotificationServer) Shutdown() {
	ns.server.Shutdown()
}
