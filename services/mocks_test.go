package services

import (
	"context"
	"techservice-backend/models"
	"techservice-backend/utils/logger"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
)

// MockLogger implements the logger interface for testing
type MockLogger struct {
	mock.Mock
}

// NewMockLogger returns a logger that accepts any call
func NewMockLogger() *MockLogger {
	m := &MockLogger{}
	for _, name := range []string{"Debugf", "Infof", "Warnf", "Errorf", "Fatalf"} {
		m.On(name, mock.Anything, mock.Anything).Maybe()
	}
	for _, name := range []string{"Debug", "Info", "Warn", "Error", "Fatal"} {
		m.On(name, mock.Anything).Maybe()
	}
	return m
}

func (m *MockLogger) Debug(args ...interface{}) { m.Called(args...) }
func (m *MockLogger) Debugf(format string, args ...interface{}) {
	m.Called(format, args)
}
func (m *MockLogger) Info(args ...interface{}) { m.Called(args...) }
func (m *MockLogger) Infof(format string, args ...interface{}) {
	m.Called(format, args)
}
func (m *MockLogger) Warn(args ...interface{}) { m.Called(args...) }
func (m *MockLogger) Warnf(format string, args ...interface{}) {
	m.Called(format, args)
}
func (m *MockLogger) Error(args ...interface{}) { m.Called(args...) }
func (m *MockLogger) Errorf(format string, args ...interface{}) {
	m.Called(format, args)
}
func (m *MockLogger) Fatal(args ...interface{}) { m.Called(args...) }
func (m *MockLogger) Fatalf(format string, args ...interface{}) {
	m.Called(format, args)
}
func (m *MockLogger) WithFields(map[string]interface{}) logger.Logger { return m }

// MockServiceRequestRepository implements ServiceRequestRepositoryInterface for testing
type MockServiceRequestRepository struct {
	mock.Mock
}

func (m *MockServiceRequestRepository) CreateServiceRequest(ctx context.Context, request *models.ServiceRequest) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockServiceRequestRepository) GetServiceRequest(ctx context.Context, id string) (*models.ServiceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestRepository) SaveServiceRequest(ctx context.Context, request *models.ServiceRequest, expectedVersion int64) error {
	return m.Called(ctx, request, expectedVersion).Error(0)
}

func (m *MockServiceRequestRepository) FindServiceRequests(ctx context.Context, filter models.ServiceRequestFilter) ([]*models.ServiceRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ServiceRequest), args.Error(1)
}

// MockUserRepository implements UserRepositoryInterface for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ListUsersByRoles(ctx context.Context, roles ...models.UserRole) ([]*models.User, error) {
	args := m.Called(ctx, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

// MockAuditRepository implements AuditRepositoryInterface for testing
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockAuditRepository) ListByResource(ctx context.Context, resourceID string) ([]*models.AuditLog, error) {
	args := m.Called(ctx, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AuditLog), args.Error(1)
}

// MockNotifier implements NotifierInterface for testing
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyStatusChange(ctx context.Context, event models.StatusChangeEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockNotifier) Close() error {
	return m.Called().Error(0)
}

// MockEnqueuer stands in for *asynq.Client
type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*asynq.TaskInfo), args.Error(1)
}

func (m *MockEnqueuer) Close() error {
	return m.Called().Error(0)
}

// countingCache records invalidations
type countingCache struct {
	invalidations int
}

func (c *countingCache) Invalidate() { c.invalidations++ }

type fakeWorker struct {
	result  *models.ExecutionResult
	running bool
}

func (f *fakeWorker) Status() *models.ExecutionResult {
	r := *f.result
	return &r
}

func (f *fakeWorker) IsRunning() bool { return f.running }

func strPtr(s string) *string { return &s }

func statusPtr(s models.ServiceStatus) *models.ServiceStatus { return &s }

func testConfig() *models.Config {
	return &models.Config{
		AppEnv:              "test",
		DynamoDBTablePrefix: "test",
		BulkUpdateMaxItems:  3,
		AnalyticsCacheSize:  8,
		AnalyticsCacheTTL:   time.Minute,
		NotificationQueue:   "notifications",
	}
}
