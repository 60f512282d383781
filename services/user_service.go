package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"techservice-backend/models"
	"techservice-backend/repository"
	"techservice-backend/utils"
	"techservice-backend/utils/logger"
	"time"
)

type UserService struct {
	userRepo repository.UserRepositoryInterface
	logger   logger.Logger
}

func NewUserService(userRepo repository.UserRepositoryInterface, log logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   log,
	}
}

// Register creates a customer account
func (s *UserService) Register(ctx context.Context, req *models.RegisterUser) (*models.User, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: registration details are required", models.ErrValidation)
	}
	return s.create(ctx, req, models.UserRoleCustomer)
}

// CreateUser creates an account with any role. Callers must be administrators.
func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: user details are required", models.ErrValidation)
	}
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", models.ErrValidation, req.Role)
	}
	return s.create(ctx, &req.RegisterUser, req.Role)
}

func (s *UserService) create(ctx context.Context, req *models.RegisterUser, role models.UserRole) (*models.User, error) {
	if strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", models.ErrValidation)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", models.ErrValidation)
	}
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 {
		return nil, fmt.Errorf("%w: name is required", models.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		Status:       models.UserStatusActive,
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		user.Phone = &phone
	}

	return s.userRepo.CreateUser(ctx, user)
}

// Login verifies credentials. Unknown emails and wrong passwords are indistinguishable.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: credentials are required", models.ErrValidation)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", models.ErrAuthentication)
		}
		return nil, err
	}
	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warnf("Failed login for user %s", user.ID)
		return nil, fmt.Errorf("%w: invalid email or password", models.ErrAuthentication)
	}
	if user.Status != models.UserStatusActive {
		return nil, fmt.Errorf("%w: account is %s", models.ErrAuthentication, user.Status)
	}

	now := time.Now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warnf("Could not record last login for %s: %v", user.ID, err)
	} else {
		user.LastLoginAt = &now
	}

	s.logger.Infof("User %s logged in", user.ID)
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetUser(ctx, id)
}

// ListAssignableUsers returns technicians and managers
func (s *UserService) ListAssignableUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.ListUsersByRoles(ctx, models.UserRoleTechnician, models.UserRoleManager)
}
