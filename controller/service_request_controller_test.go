package controller

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"techservice-backend/models"
	"techservice-backend/utils/logger"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// ServiceRequestControllerTestSuite tests the handlers without token checks
type ServiceRequestControllerTestSuite struct {
	suite.Suite
	service *MockServiceRequestService
	router  *gin.Engine
	manager models.Actor
}

func (suite *ServiceRequestControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.service = &MockServiceRequestService{}
	suite.manager = models.Actor{ID: "mgr-1", Role: models.UserRoleManager}

	h := NewServiceRequestController(nil, suite.service, quietLogger())
	suite.router = gin.New()
	g := suite.router.Group("/service-requests", withActor(suite.manager))
	g.POST("", h.Create)
	g.GET("", h.List)
	g.POST("/bulk-update", h.BulkUpdate)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.GET("/:id/history", h.History)
	g.GET("/:id/transitions", h.Transitions)

	// no actor in context
	suite.router.GET("/anonymous/:id", h.Get)
}

func (suite *ServiceRequestControllerTestSuite) TestCreate_ValidationFailsBeforeService() {
	w, resp := performRequest(suite.router, http.MethodPost, "/service-requests", `{"title":"PC","type":"REPAIR"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(models.ErrorTypeValidation, resp.Error.Type)
	suite.Equal("title", resp.Error.Field)
	suite.Contains(resp.Error.Details, "scheduledDate is required")
	suite.service.AssertNotCalled(suite.T(), "CreateRequest", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ServiceRequestControllerTestSuite) TestCreate_MalformedJSON() {
	w, resp := performRequest(suite.router, http.MethodPost, "/service-requests", `{"title":`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid request body", resp.Message)
}

func (suite *ServiceRequestControllerTestSuite) TestList_BindsQuery() {
	expected := models.ListServiceRequestsQuery{
		ServiceRequestFilter: models.ServiceRequestFilter{Status: models.ServiceStatusPending, Search: "laptop", AssignedTo: "tech-1"},
		Page:                 2,
		PageSize:             5,
		SortBy:               "priority",
		SortOrder:            "asc",
	}
	list := &models.ServiceRequestList{
		Items:      []*models.ServiceRequest{{ID: "req-3"}},
		Pagination: models.Pagination{Page: 2, Limit: 5, Total: 6, TotalPages: 2, HasPrevious: true},
	}
	suite.service.On("ListRequests", mock.Anything, suite.manager, expected).Return(list, nil)

	w, resp := performRequest(suite.router, http.MethodGet,
		"/service-requests?status=PENDING&search=laptop&assignedTo=tech-1&page=2&limit=5&sortBy=priority&sortOrder=asc", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got models.ServiceRequestList
	suite.Require().NoError(decodeData(resp, &got))
	suite.Equal(6, got.Pagination.Total)
	suite.Equal("req-3", got.Items[0].ID)
}

func (suite *ServiceRequestControllerTestSuite) TestList_BadPageNumber() {
	w, resp := performRequest(suite.router, http.MethodGet, "/service-requests?page=two", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(models.ErrorTypeValidation, resp.Error.Type)
}

func (suite *ServiceRequestControllerTestSuite) TestGet_NotFound() {
	suite.service.On("GetRequest", mock.Anything, suite.manager, "missing").
		Return(nil, fmt.Errorf("%w: service request missing", models.ErrNotFound))

	w, resp := performRequest(suite.router, http.MethodGet, "/service-requests/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal(models.ErrorTypeNotFound, resp.Error.Type)
}

func (suite *ServiceRequestControllerTestSuite) TestGet_WithoutActor() {
	w, resp := performRequest(suite.router, http.MethodGet, "/anonymous/req-1", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal(models.ErrorTypeAuthentication, resp.Error.Type)
}

func (suite *ServiceRequestControllerTestSuite) TestUpdate_PassesPartialPayload() {
	updated := &models.ServiceRequest{ID: "req-1", Status: models.ServiceStatusConfirmed, AssignedTo: "tech-1", Version: 2}
	suite.service.On("UpdateRequest", mock.Anything, suite.manager, "req-1",
		mock.MatchedBy(func(u *models.UpdateServiceRequestRequest) bool {
			return u.Status != nil && *u.Status == models.ServiceStatusConfirmed &&
				u.AssignedTo != nil && *u.AssignedTo == "tech-1" && u.Priority == nil
		})).Return(updated, nil)

	w, resp := performRequest(suite.router, http.MethodPatch, "/service-requests/req-1", `{"status":"CONFIRMED","assignedTo":"tech-1"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Service request updated successfully", resp.Message)
}

func (suite *ServiceRequestControllerTestSuite) TestUpdate_UnknownStatus() {
	w, resp := performRequest(suite.router, http.MethodPatch, "/service-requests/req-1", `{"status":"ARCHIVED"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("status", resp.Error.Field)
}

func (suite *ServiceRequestControllerTestSuite) TestUpdate_Conflict() {
	suite.service.On("UpdateRequest", mock.Anything, suite.manager, "req-1", mock.Anything).
		Return(nil, fmt.Errorf("%w: version 3 is stale", models.ErrConflict))

	w, _ := performRequest(suite.router, http.MethodPatch, "/service-requests/req-1", `{"notes":"called customer"}`)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ServiceRequestControllerTestSuite) TestBulkUpdate() {
	result := &models.BulkUpdateResult{
		Results: []models.BulkUpdateOutcome{
			{ID: "req-1", Success: true},
			{ID: "req-2", Success: false, ErrorType: models.ErrorTypeNotFound, Error: "not found"},
		},
		Succeeded: 1,
		Failed:    1,
	}
	suite.service.On("BulkUpdate", mock.Anything, suite.manager, []string{"req-1", "req-2"},
		mock.MatchedBy(func(u *models.UpdateServiceRequestRequest) bool {
			return u.Priority != nil && *u.Priority == models.ServicePriorityHigh
		})).Return(result, nil)

	w, resp := performRequest(suite.router, http.MethodPost, "/service-requests/bulk-update",
		`{"ids":["req-1","req-2"],"update":{"priority":"HIGH"}}`)

	suite.Equal(http.StatusOK, w.Code)
	var got models.BulkUpdateResult
	suite.Require().NoError(decodeData(resp, &got))
	suite.Equal(1, got.Failed)
	suite.Equal(models.ErrorTypeNotFound, got.Results[1].ErrorType)
}

func (suite *ServiceRequestControllerTestSuite) TestBulkUpdate_SummaryLoggedOnlyByService() {
	var logs bytes.Buffer
	h := NewServiceRequestController(nil, suite.service, logger.NewLoggerWithOutput("info", "text", &logs))
	r := gin.New()
	r.POST("/bulk-update", withActor(suite.manager), h.BulkUpdate)

	suite.service.On("BulkUpdate", mock.Anything, suite.manager, []string{"req-1"}, mock.Anything).
		Return(&models.BulkUpdateResult{Results: []models.BulkUpdateOutcome{{ID: "req-1", Success: true}}, Succeeded: 1}, nil)

	w, _ := performRequest(r, http.MethodPost, "/bulk-update", `{"ids":["req-1"],"update":{"priority":"HIGH"}}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.NotContains(logs.String(), "Bulk update by")
}

func (suite *ServiceRequestControllerTestSuite) TestBulkUpdate_EmptyIDs() {
	w, resp := performRequest(suite.router, http.MethodPost, "/service-requests/bulk-update", `{"ids":[],"update":{"priority":"HIGH"}}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("ids", resp.Error.Field)
}

func (suite *ServiceRequestControllerTestSuite) TestHistoryAndTransitions() {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	suite.service.On("GetHistory", mock.Anything, suite.manager, "req-1").
		Return([]*models.AuditLog{{ID: "a-1", ResourceID: "req-1", Timestamp: at}}, nil)
	suite.service.On("GetAllowedTransitions", mock.Anything, suite.manager, "req-1").
		Return(&models.TransitionOptions{RequestID: "req-1", Current: models.ServiceStatusPending,
			Allowed: []models.ServiceStatus{models.ServiceStatusConfirmed, models.ServiceStatusInProgress}}, nil)

	w, resp := performRequest(suite.router, http.MethodGet, "/service-requests/req-1/history", nil)
	suite.Equal(http.StatusOK, w.Code)
	var history []models.AuditLog
	suite.Require().NoError(decodeData(resp, &history))
	suite.Len(history, 1)

	w, resp = performRequest(suite.router, http.MethodGet, "/service-requests/req-1/transitions", nil)
	suite.Equal(http.StatusOK, w.Code)
	var options models.TransitionOptions
	suite.Require().NoError(decodeData(resp, &options))
	suite.Equal([]models.ServiceStatus{models.ServiceStatusConfirmed, models.ServiceStatusInProgress}, options.Allowed)
}

func (suite *ServiceRequestControllerTestSuite) TestServiceFailureIs500() {
	suite.service.On("GetHistory", mock.Anything, suite.manager, "req-1").Return(nil, errors.New("throttled"))

	w, resp := performRequest(suite.router, http.MethodGet, "/service-requests/req-1/history", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal(models.ErrorTypeDatabase, resp.Error.Type)
}

func TestServiceRequestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceRequestControllerTestSuite))
}
