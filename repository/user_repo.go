package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"techservice-backend/dal"
	"techservice-backend/models"
	"techservice-backend/utils"
	"techservice-backend/utils/logger"
	"time"
)

type UserRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *UserRepository) table() string {
	return r.config.TableName(UsersTable)
}

// CreateUser stores a new user. Emails are unique, case-insensitively.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	existing, err := r.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user with this email already exists", models.ErrConflict)
	}

	now := time.Now().UTC()
	user.ID = utils.GenerateUUID()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}

	if err := r.db.PutItem(ctx, r.table(), user); err != nil {
		r.logger.Errorf("Failed to create user: %v", err)
		return nil, err
	}

	r.logger.Infof("User created successfully: %s (%s)", user.ID, user.Role)
	return user, nil
}

func (r *UserRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", models.ErrValidation)
	}

	var user models.User
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.table(),
		KeyName:   "id",
		KeyValue:  id,
		KeyType:   models.StringType,
	}, &user)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, id)
		}
		r.logger.Errorf("Failed to get user %s: %v", id, err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var users []*models.User
	if err := r.db.QueryByIndex(ctx, r.table(), "email-index", "email", email, &users); err != nil {
		r.logger.Errorf("Failed to query user by email: %v", err)
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("%w: user with email %s", models.ErrNotFound, email)
	}
	return users[0], nil
}

// ListUsersByRoles returns users holding any of roles, ordered by name
func (r *UserRepository) ListUsersByRoles(ctx context.Context, roles ...models.UserRole) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.Scan(ctx, r.table(), &users); err != nil {
		r.logger.Errorf("Failed to scan users: %v", err)
		return nil, err
	}

	wanted := make(map[models.UserRole]bool, len(roles))
	for _, role := range roles {
		wanted[role] = true
	}

	result := make([]*models.User, 0, len(users))
	for _, u := range users {
		if len(wanted) == 0 || wanted[u.Role] {
			result = append(result, u)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.db.UpdateItem(ctx, r.table(), "id", id, map[string]interface{}{
		"last_login_at": at,
		"updated_at":    at,
	})
}
