package middelware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"techservice-backend/models"
	"techservice-backend/repository"
	"techservice-backend/utils/logger"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Context keys set by AuthMiddleware
const (
	ContextUserID = "user_id"
	ContextClaims = "jwt_claims"
	ContextActor  = "actor"
)

// JWTManager handles JWT token operations
type JWTManager struct {
	config   *models.Config
	logger   logger.Logger
	userRepo repository.UserRepositoryInterface
	now      func() time.Time
}

// NewJWTManager creates a new JWT manager. When userRepo is set every token is
// cross-checked against the stored account.
func NewJWTManager(cfg *models.Config, log logger.Logger, userRepo repository.UserRepositoryInterface) *JWTManager {
	return &JWTManager{
		config:   cfg,
		logger:   log,
		userRepo: userRepo,
		now:      time.Now,
	}
}

// GenerateToken generates a signed token for user and returns its expiry
func (j *JWTManager) GenerateToken(user *models.User) (string, time.Time, error) {
	now := j.now()
	expiresAt := now.Add(j.config.JWTExpiresIn)

	claims := models.JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.ID,
			Issuer:    j.config.AppName,
			Audience:  jwt.ClaimStrings{j.config.AppName},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.config.JWTSecret))
	if err != nil {
		j.logger.Errorf("Failed to sign JWT token: %v", err)
		return "", time.Time{}, err
	}

	j.logger.Debugf("Generated JWT token for user: %s", user.ID)
	return signed, expiresAt, nil
}

// ValidateToken parses and verifies tokenString
func (j *JWTManager) ValidateToken(ctx context.Context, tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.config.JWTSecret), nil
	},
		jwt.WithTimeFunc(j.now),
		jwt.WithIssuer(j.config.AppName),
		jwt.WithAudience(j.config.AppName),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if !claims.Role.IsValid() {
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}

	if j.userRepo != nil {
		user, err := j.userRepo.GetUser(ctx, claims.UserID)
		if err != nil {
			j.logger.Warnf("Failed to verify user %s: %v", claims.UserID, err)
			return nil, fmt.Errorf("user verification failed")
		}
		if user.Status != models.UserStatusActive {
			return nil, fmt.Errorf("user account is %s", user.Status)
		}
		if user.Role != claims.Role {
			return nil, fmt.Errorf("role changed since token was issued")
		}
	}

	return claims, nil
}

// AuthMiddleware validates the bearer token and stores the caller in the context
func (j *JWTManager) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c, "Missing Authorization header", "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abortUnauthenticated(c, "Invalid Authorization header format", "Authorization header must be in format: Bearer <token>")
			return
		}

		claims, err := j.ValidateToken(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			j.logger.Warnf("Token validation failed: %v", err)
			abortUnauthenticated(c, "Invalid or expired token", err.Error())
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextClaims, claims)
		c.Set(ContextActor, models.ActorFromClaims(claims))
		c.Next()
	}
}

// RequireRole allows the request through only for the listed roles
func (j *JWTManager) RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			abortUnauthenticated(c, "Authentication required", "User not authenticated")
			return
		}

		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		j.logger.Warnf("User %s with role %s denied %s %s", actor.ID, actor.Role, c.Request.Method, c.FullPath())
		c.AbortWithStatusJSON(http.StatusForbidden, models.APIResponse{
			Status:  "error",
			Code:    http.StatusForbidden,
			Message: "Insufficient permissions",
			Error: &models.APIError{
				Type:    models.ErrorTypeAuthorization,
				Details: fmt.Sprintf("Required role: %s", joinRoles(roles)),
			},
		})
	}
}

// ActorFromContext returns the caller stored by AuthMiddleware
func ActorFromContext(c *gin.Context) (models.Actor, bool) {
	v, ok := c.Get(ContextActor)
	if !ok {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}

func abortUnauthenticated(c *gin.Context, message, details string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.APIResponse{
		Status:  "error",
		Code:    http.StatusUnauthorized,
		Message: message,
		Error: &models.APIError{
			Type:    models.ErrorTypeAuthentication,
			Details: details,
		},
	})
}

func joinRoles(roles []models.UserRole) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, " or ")
}
