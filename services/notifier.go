package services

import (
	"context"
	"encoding/json"
	"fmt"
	"techservice-backend/models"
	"techservice-backend/utils/logger"
	"time"

	"github.com/hibiken/asynq"
)

// TypeStatusChanged is the queue task type carrying a models.StatusChangeEvent
const TypeStatusChanged = "service_request:status_changed"

// AsynqEnqueuer is the part of *asynq.Client the notifier needs
type AsynqEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// AsynqNotifier publishes status changes to a Redis-backed asynq queue
type AsynqNotifier struct {
	client AsynqEnqueuer
	queue  string
	logger logger.Logger
}

// NewAsynqNotifier connects to Redis at cfg.RedisAddr
func NewAsynqNotifier(cfg *models.Config, log logger.Logger) *AsynqNotifier {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	return NewAsynqNotifierWithClient(client, cfg.NotificationQueue, log)
}

func NewAsynqNotifierWithClient(client AsynqEnqueuer, queue string, log logger.Logger) *AsynqNotifier {
	return &AsynqNotifier{client: client, queue: queue, logger: log}
}

func (n *AsynqNotifier) NotifyStatusChange(ctx context.Context, event models.StatusChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode status change: %w", err)
	}

	task := asynq.NewTask(TypeStatusChanged, payload, asynq.MaxRetry(5), asynq.Timeout(30*time.Second))
	info, err := n.client.EnqueueContext(ctx, task, asynq.Queue(n.queue))
	if err != nil {
		return fmt.Errorf("failed to enqueue status change for %s: %w", event.RequestID, err)
	}

	n.logger.Debugf("Queued status change %s %s -> %s as task %s", event.RequestID, event.From, event.To, info.ID)
	return nil
}

func (n *AsynqNotifier) Close() error {
	return n.client.Close()
}

// LogNotifier only logs status changes. Used when no queue is configured.
type LogNotifier struct {
	logger logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) NotifyStatusChange(_ context.Context, event models.StatusChangeEvent) error {
	n.logger.WithFields(map[string]interface{}{
		"request_id":  event.RequestID,
		"customer_id": event.CustomerID,
		"from":        event.From,
		"to":          event.To,
		"changed_by":  event.ChangedBy,
	}).Info("Service request status changed")
	return nil
}

func (n *LogNotifier) Close() error { return nil }

// NewNotifier picks the queue-backed notifier when Redis is configured
func NewNotifier(cfg *models.Config, log logger.Logger) NotifierInterface {
	if cfg.RedisAddr == "" {
		log.Info("No redis_addr configured, status change notifications will only be logged")
		return NewLogNotifier(log)
	}
	return NewAsynqNotifier(cfg, log)
}
