package repository

import (
	"context"
	"errors"
	"techservice-backend/models"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	db   *MockDatabaseClient
	repo *UserRepository
	ctx  context.Context
}

func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.db = &MockDatabaseClient{}
	suite.repo = NewUserRepository(suite.db, testConfig(), testLogger())
	suite.ctx = context.Background()
}

func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.db.AssertExpectations(suite.T())
}

func fillUsers(users []*models.User) func(mock.Arguments) {
	return func(args mock.Arguments) {
		out := args.Get(len(args) - 1).(*[]*models.User)
		*out = users
	}
}

func (suite *UserRepositoryTestSuite) TestCreateUser_NormalizesEmailAndDefaults() {
	suite.db.On("QueryByIndex", suite.ctx, "test_users", "email-index", "email", "jane@example.com", mock.Anything).
		Run(fillUsers(nil)).Return(nil)
	suite.db.On("PutItem", suite.ctx, "test_users", mock.AnythingOfType("*models.User")).Return(nil)

	user, err := suite.repo.CreateUser(suite.ctx, &models.User{Email: " Jane@Example.com ", Role: models.UserRoleCustomer})

	suite.Require().NoError(err)
	suite.Equal("jane@example.com", user.Email)
	suite.NotEmpty(user.ID)
	suite.Equal(models.UserStatusActive, user.Status)
	suite.False(user.CreatedAt.IsZero())
}

func (suite *UserRepositoryTestSuite) TestCreateUser_DuplicateEmailIsConflict() {
	suite.db.On("QueryByIndex", suite.ctx, "test_users", "email-index", "email", "jane@example.com", mock.Anything).
		Run(fillUsers([]*models.User{{ID: "u1", Email: "jane@example.com"}})).Return(nil)

	_, err := suite.repo.CreateUser(suite.ctx, &models.User{Email: "jane@example.com"})
	suite.True(errors.Is(err, models.ErrConflict))
}

func (suite *UserRepositoryTestSuite) TestGetUser_NotFound() {
	suite.db.On("GetItem", suite.ctx, mock.Anything, mock.Anything).Return(models.ErrNotFound)

	_, err := suite.repo.GetUser(suite.ctx, "ghost")
	suite.True(errors.Is(err, models.ErrNotFound))
}

func (suite *UserRepositoryTestSuite) TestListUsersByRoles() {
	suite.db.On("Scan", suite.ctx, "test_users", mock.Anything).Run(fillUsers([]*models.User{
		{ID: "1", Name: "Zed", Role: models.UserRoleTechnician},
		{ID: "2", Name: "Amy", Role: models.UserRoleManager},
		{ID: "3", Name: "Bob", Role: models.UserRoleCustomer},
	})).Return(nil)

	users, err := suite.repo.ListUsersByRoles(suite.ctx, models.UserRoleTechnician, models.UserRoleManager)
	suite.Require().NoError(err)
	suite.Require().Len(users, 2)
	suite.Equal("Amy", users[0].Name)
	suite.Equal("Zed", users[1].Name)
}

func (suite *UserRepositoryTestSuite) TestUpdateLastLogin() {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	suite.db.On("UpdateItem", suite.ctx, "test_users", "id", "u1", map[string]interface{}{
		"last_login_at": at,
		"updated_at":    at,
	}).Return(nil)

	suite.NoError(suite.repo.UpdateLastLogin(suite.ctx, "u1", at))
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
