package controller

import (
	"context"
	"net/http"
	"techservice-backend/middelware"
	"techservice-backend/models"
	"techservice-backend/services"
	"techservice-backend/utils/logger"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// TokenIssuer signs access tokens for authenticated users
type TokenIssuer interface {
	GenerateToken(user *models.User) (string, time.Time, error)
}

type UserController struct {
	ctx       context.Context
	service   services.UserServiceInterface
	tokens    TokenIssuer
	logger    logger.Logger
	validator *validator.Validate
}

func NewUserController(ctx context.Context, service services.UserServiceInterface, tokens TokenIssuer, logger logger.Logger) *UserController {
	return &UserController{
		ctx:       ctx,
		service:   service,
		tokens:    tokens,
		logger:    logger,
		validator: newValidator(),
	}
}

// Register handles POST /api/v1/auth/register
// @Summary Register a customer account
// @Description Self-registration always creates a CUSTOMER. No token is issued; call login afterwards.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterUser true "Registration request"
// @Success 201 {object} models.APIResponse{data=models.User} "User registered successfully"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid registration data"
// @Failure 409 {object} models.APIResponse "Conflict - Email already registered"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Registration failed"
// @Router /auth/register [post]
func (h *UserController) Register(c *gin.Context) {
	var req models.RegisterUser
	if !bindAndValidate(c, h.validator, h.logger, &req) {
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, "Failed to register user", err)
		return
	}

	respondSuccess(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Exchanges email and password for a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.APIResponse{data=models.LoginResponse} "Login successful"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid login request"
// @Failure 401 {object} models.APIResponse "Unauthorized - Invalid credentials"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Login failed"
// @Router /auth/login [post]
func (h *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindAndValidate(c, h.validator, h.logger, &req) {
		return
	}

	user, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, "Login failed", err)
		return
	}

	token, expiresAt, err := h.tokens.GenerateToken(user)
	if err != nil {
		respondError(c, h.logger, "Failed to generate token", err)
		return
	}

	respondSuccess(c, http.StatusOK, "Login successful", models.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User:      user,
	})
}

// Me handles GET /api/v1/users/me
// @Summary Get the current user
// @Tags User Management
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.User} "User details retrieved successfully"
// @Failure 401 {object} models.APIResponse "Unauthorized - Authentication required"
// @Failure 404 {object} models.APIResponse "Not Found - User does not exist"
// @Router /users/me [get]
func (h *UserController) Me(c *gin.Context) {
	actor, ok := middelware.ActorFromContext(c)
	if !ok {
		respondError(c, h.logger, "Authentication required", models.ErrAuthentication)
		return
	}

	user, err := h.service.GetUserByID(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, h.logger, "Failed to get user", err)
		return
	}

	respondSuccess(c, http.StatusOK, "User details retrieved successfully", user)
}

// ListTechnicians handles GET /api/v1/users/technicians
// @Summary List assignable users
// @Description Active technicians and managers that requests can be assigned to
// @Tags User Management
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.User} "Assignable users retrieved successfully"
// @Failure 403 {object} models.APIResponse "Forbidden - Staff only"
// @Router /users/technicians [get]
func (h *UserController) ListTechnicians(c *gin.Context) {
	users, err := h.service.ListAssignableUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Failed to list technicians", err)
		return
	}

	respondSuccess(c, http.StatusOK, "Assignable users retrieved successfully", users)
}

// CreateUser handles POST /api/v1/users
// @Summary Create a user with any role
// @Tags User Management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateUserRequest true "User details"
// @Success 201 {object} models.APIResponse{data=models.User} "User created successfully"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid user data"
// @Failure 403 {object} models.APIResponse "Forbidden - Admin only"
// @Failure 409 {object} models.APIResponse "Conflict - Email already registered"
// @Router /users [post]
func (h *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if !bindAndValidate(c, h.validator, h.logger, &req) {
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, "Failed to create user", err)
		return
	}

	h.logger.Infof("User %s created with role %s", user.ID, user.Role)
	respondSuccess(c, http.StatusCreated, "User created successfully", user)
}
