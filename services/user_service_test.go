package services

import (
	"context"
	"errors"
	"fmt"
	"techservice-backend/models"
	"techservice-backend/utils"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	service  *UserService
	ctx      context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.userRepo = &MockUserRepository{}
	s.service = NewUserService(s.userRepo, NewMockLogger())
	s.ctx = context.Background()
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.userRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestRegister_CreatesActiveCustomer() {
	s.userRepo.On("CreateUser", s.ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.Role == models.UserRoleCustomer &&
			u.Status == models.UserStatusActive &&
			u.Name == "Grace Hopper" &&
			u.Phone != nil && *u.Phone == "+15550100" &&
			utils.CheckPassword(u.PasswordHash, "correct horse")
	})).Return(&models.User{ID: "user-1", Role: models.UserRoleCustomer}, nil)

	user, err := s.service.Register(s.ctx, &models.RegisterUser{
		Email:    "grace@example.com",
		Password: "correct horse",
		Name:     " Grace Hopper ",
		Phone:    "+15550100",
	})

	s.Require().NoError(err)
	s.Equal("user-1", user.ID)
}

func (s *UserServiceTestSuite) TestRegister_Validation() {
	for _, req := range []*models.RegisterUser{
		nil,
		{Email: "not-an-email", Password: "longenough", Name: "Ann"},
		{Email: "a@b.c", Password: "short", Name: "Ann"},
		{Email: "a@b.c", Password: "longenough", Name: " "},
	} {
		_, err := s.service.Register(s.ctx, req)
		s.ErrorIs(err, models.ErrValidation)
	}
}

func (s *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	s.userRepo.On("CreateUser", s.ctx, mock.Anything).Return(nil, fmt.Errorf("%w: email already registered", models.ErrConflict))

	_, err := s.service.Register(s.ctx, &models.RegisterUser{Email: "a@b.c", Password: "longenough", Name: "Ann"})
	s.ErrorIs(err, models.ErrConflict)
}

func (s *UserServiceTestSuite) TestCreateUser_WithRole() {
	s.userRepo.On("CreateUser", s.ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.Role == models.UserRoleTechnician
	})).Return(&models.User{ID: "tech-1", Role: models.UserRoleTechnician}, nil)

	user, err := s.service.CreateUser(s.ctx, &models.CreateUserRequest{
		RegisterUser: models.RegisterUser{Email: "t@example.com", Password: "longenough", Name: "Tech"},
		Role:         models.UserRoleTechnician,
	})
	s.Require().NoError(err)
	s.Equal(models.UserRoleTechnician, user.Role)

	_, err = s.service.CreateUser(s.ctx, &models.CreateUserRequest{
		RegisterUser: models.RegisterUser{Email: "t@example.com", Password: "longenough", Name: "Tech"},
		Role:         "OWNER",
	})
	s.ErrorIs(err, models.ErrValidation)
}

func (s *UserServiceTestSuite) activeUser() *models.User {
	hash, err := utils.HashPassword("correct horse")
	s.Require().NoError(err)
	return &models.User{ID: "user-1", Email: "grace@example.com", PasswordHash: hash, Role: models.UserRoleCustomer, Status: models.UserStatusActive}
}

func (s *UserServiceTestSuite) TestLogin_Success() {
	s.userRepo.On("GetUserByEmail", s.ctx, "grace@example.com").Return(s.activeUser(), nil)
	s.userRepo.On("UpdateLastLogin", s.ctx, "user-1", mock.AnythingOfType("time.Time")).Return(nil)

	user, err := s.service.Login(s.ctx, &models.LoginRequest{Email: "grace@example.com", Password: "correct horse"})

	s.Require().NoError(err)
	s.NotNil(user.LastLoginAt)
}

func (s *UserServiceTestSuite) TestLogin_LastLoginFailureIsNotFatal() {
	s.userRepo.On("GetUserByEmail", s.ctx, "grace@example.com").Return(s.activeUser(), nil)
	s.userRepo.On("UpdateLastLogin", s.ctx, "user-1", mock.Anything).Return(errors.New("throttled"))

	user, err := s.service.Login(s.ctx, &models.LoginRequest{Email: "grace@example.com", Password: "correct horse"})

	s.Require().NoError(err)
	s.Nil(user.LastLoginAt)
}

func (s *UserServiceTestSuite) TestLogin_Failures() {
	suspended := s.activeUser()
	suspended.Status = models.UserStatusSuspended
	s.userRepo.On("GetUserByEmail", s.ctx, "nobody@example.com").Return(nil, fmt.Errorf("%w: user", models.ErrNotFound))
	s.userRepo.On("GetUserByEmail", s.ctx, "grace@example.com").Return(s.activeUser(), nil)
	s.userRepo.On("GetUserByEmail", s.ctx, "suspended@example.com").Return(suspended, nil)

	_, err := s.service.Login(s.ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "whatever1"})
	s.ErrorIs(err, models.ErrAuthentication)

	_, err = s.service.Login(s.ctx, &models.LoginRequest{Email: "grace@example.com", Password: "wrong password"})
	s.ErrorIs(err, models.ErrAuthentication)

	_, err = s.service.Login(s.ctx, &models.LoginRequest{Email: "suspended@example.com", Password: "correct horse"})
	s.ErrorIs(err, models.ErrAuthentication)

	s.userRepo.AssertNotCalled(s.T(), "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestListAssignableUsers() {
	staff := []*models.User{{ID: "tech-1"}, {ID: "mgr-1"}}
	s.userRepo.On("ListUsersByRoles", s.ctx, []models.UserRole{models.UserRoleTechnician, models.UserRoleManager}).Return(staff, nil)

	users, err := s.service.ListAssignableUsers(s.ctx)
	s.Require().NoError(err)
	s.Equal(staff, users)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
