package worker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"techservice-backend/models"
	"time"
)

// ErrLockHeld is returned when another owner holds an unexpired lock
var ErrLockHeld = errors.New("infrastructure lock is held by another owner")

// LockManager serialises provisioning runs across processes sharing a filesystem
type LockManager struct {
	path        string
	timeout     time.Duration
	environment string
	now         func() time.Time
}

func NewLockManager(path string, timeout time.Duration, env string) *LockManager {
	return &LockManager{
		path:        path,
		timeout:     timeout,
		environment: env,
		now:         time.Now,
	}
}

// AcquireLock takes the lock for ownerID. A lock already held by the same owner is extended;
// an expired lock from any owner is replaced.
func (lm *LockManager) AcquireLock(ownerID string) (*models.LockInfo, error) {
	if err := os.MkdirAll(filepath.Dir(lm.path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	now := lm.now()
	existing, err := lm.readLockFile()
	switch {
	case err == nil && now.Before(existing.ExpiresAt):
		if existing.Owner != ownerID {
			return nil, fmt.Errorf("%w: %s until %s", ErrLockHeld, existing.Owner, existing.ExpiresAt.Format(time.RFC3339))
		}
		existing.ExpiresAt = now.Add(lm.timeout)
		if err := lm.writeLockFile(existing); err != nil {
			return nil, fmt.Errorf("failed to extend lock: %w", err)
		}
		return existing, nil
	case err == nil:
		// expired
		_ = os.Remove(lm.path)
	case !os.IsNotExist(err):
		// An unreadable lock file is treated as stale
		_ = os.Remove(lm.path)
	}

	lock := &models.LockInfo{
		ID:          fmt.Sprintf("infra-lock-%d", now.UnixNano()),
		Owner:       ownerID,
		AcquiredAt:  now,
		ExpiresAt:   now.Add(lm.timeout),
		Environment: lm.environment,
	}
	if err := lm.createLockFile(lock); err != nil {
		return nil, err
	}
	return lock, nil
}

// ReleaseLock removes the lock if lock.Owner still holds it
func (lm *LockManager) ReleaseLock(lock *models.LockInfo) error {
	current, err := lm.readLockFile()
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read lock file: %w", err)
	}
	if current.Owner != lock.Owner {
		return fmt.Errorf("cannot release lock owned by %s", current.Owner)
	}
	if err := os.Remove(lm.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

func (lm *LockManager) readLockFile() (*models.LockInfo, error) {
	data, err := os.ReadFile(lm.path)
	if err != nil {
		return nil, err
	}
	var lock models.LockInfo
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, fmt.Errorf("failed to parse lock file: %w", err)
	}
	return &lock, nil
}

// createLockFile publishes a fully written lock only if no lock file exists.
// os.Link fails when the target exists, so exactly one concurrent creator wins.
func (lm *LockManager) createLockFile(lock *models.LockInfo) error {
	tmp, err := lm.writeTempFile(lock)
	if err != nil {
		return fmt.Errorf("failed to create lock file: %w", err)
	}
	defer os.Remove(tmp)

	if err := os.Link(tmp, lm.path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: lock created concurrently", ErrLockHeld)
		}
		return fmt.Errorf("failed to create lock file: %w", err)
	}
	return nil
}

// writeLockFile replaces a lock this owner already holds via rename
func (lm *LockManager) writeLockFile(lock *models.LockInfo) error {
	tmp, err := lm.writeTempFile(lock)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, lm.path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func (lm *LockManager) writeTempFile(lock *models.LockInfo) (string, error) {
	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize lock info: %w", err)
	}
	f, err := os.CreateTemp(filepath.Dir(lm.path), filepath.Base(lm.path)+".*.tmp")
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
