package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"techservice-backend/dal"
	"techservice-backend/models"
	"techservice-backend/utils/logger"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron"
)

const (
	lockTimeout = 30 * time.Minute
	runTimeout  = 15 * time.Minute
)

// Worker periodically makes sure every configured table exists
type Worker struct {
	config      *models.Config
	logger      logger.Logger
	cron        *cron.Cron
	lock        *LockManager
	provisioner *Provisioner
	status      *StatusManager
	ownerID     string

	mu      sync.Mutex
	running bool
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewWorker(cfg *models.Config, db dal.DatabaseClientInterface, log logger.Logger) (*Worker, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if _, err := cron.Parse(cfg.WorkerCronSchedule); err != nil {
		return nil, fmt.Errorf("invalid cron schedule %q: %w", cfg.WorkerCronSchedule, err)
	}

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "localhost"
	}
	ownerID := fmt.Sprintf("worker-%s-%s", hostname, uuid.New().String()[:8])

	ctx, cancel := context.WithCancel(context.Background())
	return &Worker{
		config:      cfg,
		logger:      log.WithFields(map[string]interface{}{"component": "infrastructure-worker", "owner": ownerID}),
		cron:        cron.New(),
		lock:        NewLockManager(cfg.WorkerLockFile, lockTimeout, cfg.AppEnv),
		provisioner: NewProvisioner(db, cfg, log),
		status:      NewStatusManager(ownerID, cfg.AppEnv),
		ownerID:     ownerID,
		ctx:         ctx,
		cancel:      cancel,
	}, nil
}

// Start schedules provisioning and kicks off an immediate run in the background
func (w *Worker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("worker is already running")
	}
	if w.ctx.Err() != nil {
		return fmt.Errorf("worker has been stopped")
	}

	if err := w.cron.AddFunc(w.config.WorkerCronSchedule, w.scheduledRun); err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}
	w.cron.Start()
	w.running = true
	w.logger.Infof("Infrastructure worker started with schedule %s", w.config.WorkerCronSchedule)

	go w.scheduledRun()
	return nil
}

func (w *Worker) scheduledRun() {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Errorf("Infrastructure run panicked: %v", r)
			w.status.Finish(nil, fmt.Errorf("panic: %v", r), time.Now().UTC())
		}
	}()

	ctx, cancel := context.WithTimeout(w.ctx, runTimeout)
	defer cancel()
	if err := w.RunOnce(ctx); err != nil && !errors.Is(err, ErrLockHeld) {
		w.logger.Errorf("Infrastructure run failed: %v", err)
	}
}

// RunOnce performs a single provisioning pass under the file lock
func (w *Worker) RunOnce(ctx context.Context) error {
	lock, err := w.lock.AcquireLock(w.ownerID)
	if err != nil {
		if errors.Is(err, ErrLockHeld) {
			w.logger.Infof("Skipping run: %v", err)
			w.status.Skipped("Another worker is provisioning", time.Now().UTC())
		}
		return err
	}
	defer func() {
		if err := w.lock.ReleaseLock(lock); err != nil {
			w.logger.Warnf("Failed to release infrastructure lock: %v", err)
		}
	}()

	w.status.Begin(time.Now().UTC())
	tables, err := w.provisioner.EnsureTables(ctx, w.status.Retrying)
	w.status.Finish(tables, err, time.Now().UTC())
	if err != nil {
		return err
	}

	w.logger.Infof("Infrastructure check complete for %d tables", len(tables))
	return nil
}

// Status returns the latest run result
func (w *Worker) Status() *models.ExecutionResult {
	return w.status.Snapshot()
}

func (w *Worker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Stop halts scheduling and cancels any in-flight run
func (w *Worker) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.cancel()
	if !w.running {
		return nil
	}
	w.cron.Stop()
	w.running = false
	w.logger.Info("Infrastructure worker stopped")
	return nil
}
