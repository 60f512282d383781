package controller

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"techservice-backend/middelware"
	"techservice-backend/models"
	"techservice-backend/services"
	"techservice-backend/utils/logger"
	"techservice-backend/utils/swagger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// DocName is the swag instance name the API document is registered under
const DocName = "swagger"

type Controller struct {
	ServiceRequest *ServiceRequestController
	Analytics      *AnalyticsController
	User           *UserController
	Infrastructure *InfrastructureController

	config     *models.Config
	jwtManager *middelware.JWTManager
	logger     logger.Logger
}

func NewController(ctx context.Context, cfg *models.Config, svc services.ServiceContainerInterface, jwtManager *middelware.JWTManager, log logger.Logger) *Controller {
	return &Controller{
		ServiceRequest: NewServiceRequestController(ctx, svc.GetServiceRequestService(), log),
		Analytics:      NewAnalyticsController(ctx, svc.GetAnalyticsService(), log),
		User:           NewUserController(ctx, svc.GetUserService(), jwtManager, log),
		Infrastructure: NewInfrastructureController(ctx, svc.GetInfrastructureService(), log),
		config:         cfg,
		jwtManager:     jwtManager,
		logger:         log,
	}
}

// RegisterRoutes mounts every endpoint on r under basePath
func (c *Controller) RegisterRoutes(r *gin.Engine, basePath string) {
	logging := middelware.NewLoggingMiddleware(c.logger)
	r.Use(logging.Recovery(), logging.StructuredLogger(), middelware.NewCORSMiddleware(c.config).CORS())

	v1 := r.Group(basePath)

	// Health check endpoint (no auth required)
	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": c.config.AppVersion,
			"service": c.config.AppName,
		})
	})

	swaggerConfig := swagger.SwaggerConfig{
		Title:         c.config.AppName + " API",
		SwaggerDocURL: "/swagger/doc.json",
		AuthURL:       basePath + "/auth/login",
	}
	r.GET("/swagger", swagger.ServeSwaggerUI(swaggerConfig))
	r.GET("/swagger/index.html", swagger.ServeSwaggerUI(swaggerConfig))
	r.GET("/swagger/doc.json", swagger.ServeDoc(DocName))

	auth := c.jwtManager.AuthMiddleware()
	staff := c.jwtManager.RequireRole(models.UserRoleAdmin, models.UserRoleManager, models.UserRoleTechnician)

	// Authentication routes - no token required
	v1.POST("/auth/register", c.User.Register)
	v1.POST("/auth/login", c.User.Login)

	users := v1.Group("/users", auth)
	users.GET("/me", c.User.Me)
	users.GET("/technicians", staff, c.User.ListTechnicians)
	users.POST("", c.jwtManager.RequireRole(models.UserRoleAdmin), c.User.CreateUser)

	requests := v1.Group("/service-requests", auth)
	requests.POST("", c.jwtManager.RequireRole(models.UserRoleCustomer, models.UserRoleAdmin, models.UserRoleManager), c.ServiceRequest.Create)
	requests.GET("", c.ServiceRequest.List)
	requests.POST("/bulk-update", staff, c.ServiceRequest.BulkUpdate)
	requests.GET("/:id", c.ServiceRequest.Get)
	requests.PATCH("/:id", staff, c.ServiceRequest.Update)
	requests.GET("/:id/history", c.ServiceRequest.History)
	requests.GET("/:id/transitions", c.ServiceRequest.Transitions)

	v1.GET("/analytics/service-requests", auth, staff, c.Analytics.GetServiceRequestAnalytics)

	v1.GET("/infrastructure/status", auth, c.jwtManager.RequireRole(models.UserRoleAdmin), c.Infrastructure.GetWorkerStatus)
}

// statusForError maps a service error onto its HTTP status and API error type
func statusForError(err error) (int, string) {
	errType := models.ErrorType(err)
	switch errType {
	case models.ErrorTypeValidation:
		return http.StatusBadRequest, errType
	case models.ErrorTypeAuthentication:
		return http.StatusUnauthorized, errType
	case models.ErrorTypeAuthorization:
		return http.StatusForbidden, errType
	case models.ErrorTypeNotFound:
		return http.StatusNotFound, errType
	case models.ErrorTypeConflict:
		return http.StatusConflict, errType
	case models.ErrorTypeInvalidTransition:
		return http.StatusUnprocessableEntity, errType
	}
	return http.StatusInternalServerError, errType
}

// respondError writes the error envelope for err. Unclassified errors are logged
// and reported without their internal details.
func respondError(c *gin.Context, log logger.Logger, message string, err error) {
	code, errType := statusForError(err)
	details := err.Error()
	if code == http.StatusInternalServerError {
		log.Errorf("%s: %v", message, err)
		details = "An internal error occurred"
	}
	c.JSON(code, models.APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		Error: &models.APIError{
			Type:    errType,
			Details: details,
		},
	})
}

func respondValidation(c *gin.Context, message, details, field string) {
	c.JSON(http.StatusBadRequest, models.APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: message,
		Error: &models.APIError{
			Type:    models.ErrorTypeValidation,
			Details: details,
			Field:   field,
		},
	})
}

func respondSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, models.APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindAndValidate decodes the JSON body into req and runs struct validation.
// It writes the 400 response itself and returns false on failure.
func bindAndValidate(c *gin.Context, v *validator.Validate, log logger.Logger, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		log.Debugf("Failed to bind JSON: %v", err)
		respondValidation(c, "Invalid request body", err.Error(), "")
		return false
	}
	if err := v.Struct(req); err != nil {
		details, field := formatValidationErrors(err)
		respondValidation(c, "Validation failed", details, field)
		return false
	}
	return true
}

// formatValidationErrors formats validation errors into a readable message and
// returns the first offending field
func formatValidationErrors(err error) (string, string) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error(), ""
	}

	var errorMessages []string
	for _, fieldError := range validationErrors {
		field := fieldError.Field()
		switch fieldError.Tag() {
		case "required":
			errorMessages = append(errorMessages, field+" is required")
		case "min":
			errorMessages = append(errorMessages, field+" must be at least "+fieldError.Param()+" characters/items")
		case "max":
			errorMessages = append(errorMessages, field+" must be at most "+fieldError.Param()+" characters/items")
		case "gte":
			errorMessages = append(errorMessages, field+" must be at least "+fieldError.Param())
		case "oneof":
			errorMessages = append(errorMessages, field+" must be one of: "+strings.ReplaceAll(fieldError.Param(), " ", ", "))
		case "email":
			errorMessages = append(errorMessages, field+" must be a valid email address")
		default:
			errorMessages = append(errorMessages, field+" is invalid")
		}
	}

	return strings.Join(errorMessages, "; "), validationErrors[0].Field()
}
