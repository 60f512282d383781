package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"techservice-backend/middelware"
	"techservice-backend/models"
	"techservice-backend/services"
	"techservice-backend/utils/logger"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func quietLogger() logger.Logger {
	return logger.NewLoggerWithOutput("error", "text", io.Discard)
}

// MockServiceRequestService implements services.ServiceRequestServiceInterface for testing
type MockServiceRequestService struct {
	mock.Mock
}

func (m *MockServiceRequestService) CreateRequest(ctx context.Context, actor models.Actor, req *models.CreateServiceRequestRequest) (*models.ServiceRequest, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestService) GetRequest(ctx context.Context, actor models.Actor, id string) (*models.ServiceRequest, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestService) ListRequests(ctx context.Context, actor models.Actor, query models.ListServiceRequestsQuery) (*models.ServiceRequestList, error) {
	args := m.Called(ctx, actor, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceRequestList), args.Error(1)
}

func (m *MockServiceRequestService) UpdateRequest(ctx context.Context, actor models.Actor, id string, update *models.UpdateServiceRequestRequest) (*models.ServiceRequest, error) {
	args := m.Called(ctx, actor, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestService) BulkUpdate(ctx context.Context, actor models.Actor, ids []string, update *models.UpdateServiceRequestRequest) (*models.BulkUpdateResult, error) {
	args := m.Called(ctx, actor, ids, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BulkUpdateResult), args.Error(1)
}

func (m *MockServiceRequestService) GetHistory(ctx context.Context, actor models.Actor, id string) ([]*models.AuditLog, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AuditLog), args.Error(1)
}

func (m *MockServiceRequestService) GetAllowedTransitions(ctx context.Context, actor models.Actor, id string) (*models.TransitionOptions, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransitionOptions), args.Error(1)
}

// MockAnalyticsService implements services.AnalyticsServiceInterface for testing
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) GetAnalytics(ctx context.Context, window models.AnalyticsWindow) (*models.AnalyticsReport, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalyticsReport), args.Error(1)
}

func (m *MockAnalyticsService) Invalidate() {
	m.Called()
}

// MockUserService implements services.UserServiceInterface for testing
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *models.RegisterUser) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) ListAssignableUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

// MockInfrastructureService implements services.InfrastructureServiceInterface for testing
type MockInfrastructureService struct {
	mock.Mock
}

func (m *MockInfrastructureService) GetWorkerStatus(ctx context.Context) (*models.ExecutionResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExecutionResult), args.Error(1)
}

// MockTokenIssuer implements TokenIssuer for testing
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(user *models.User) (string, time.Time, error) {
	args := m.Called(user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type mockContainer struct {
	requests       *MockServiceRequestService
	analytics      *MockAnalyticsService
	users          *MockUserService
	infrastructure *MockInfrastructureService
}

func newMockContainer() *mockContainer {
	return &mockContainer{
		requests:       &MockServiceRequestService{},
		analytics:      &MockAnalyticsService{},
		users:          &MockUserService{},
		infrastructure: &MockInfrastructureService{},
	}
}

func (c *mockContainer) GetServiceRequestService() services.ServiceRequestServiceInterface {
	return c.requests
}

func (c *mockContainer) GetAnalyticsService() services.AnalyticsServiceInterface {
	return c.analytics
}

func (c *mockContainer) GetUserService() services.UserServiceInterface {
	return c.users
}

func (c *mockContainer) GetInfrastructureService() services.InfrastructureServiceInterface {
	return c.infrastructure
}

// withActor stands in for AuthMiddleware in handler tests
func withActor(actor models.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middelware.ContextUserID, actor.ID)
		c.Set(middelware.ContextActor, actor)
		c.Next()
	}
}

func performRequest(r http.Handler, method, path string, body interface{}, headers ...string) (*httptest.ResponseRecorder, models.APIResponse) {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp models.APIResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

// decodeData re-decodes the envelope data into out
func decodeData(resp models.APIResponse, out interface{}) error {
	raw, err := json.Marshal(resp.Data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
