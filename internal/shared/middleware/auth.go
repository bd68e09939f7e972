package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/response"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/jwt"
)

// AuthUser is the slice of the account the auth middleware needs.
type AuthUser struct {
	ID           uuid.UUID
	Role         string
	Banned       bool
	TokenVersion int
}

// UserLoader loads the account behind a token so the middleware can compare
// token versions. Implemented by the user repository.
type UserLoader interface {
	LoadAuthUser(ctx context.Context, id uuid.UUID) (*AuthUser, error)
}

// Auth validates the Bearer token, checks the token version against the
// stored user, and puts the user id and role into the gin context.
func Auth(manager *jwt.Manager, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "TOKEN_REQUIRED", "Please log in to continue")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "TOKEN_REQUIRED", "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.Validate(parts[1])
		if err != nil {
			if err == jwt.ErrTokenExpired {
				response.Unauthorized(c, "TOKEN_EXPIRED", "Your session has expired. Please log in again.")
			} else {
				response.Unauthorized(c, "AUTH_FAILED", "Please log in again to continue.")
			}
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "AUTH_FAILED", "Please log in again to continue.")
			c.Abort()
			return
		}

		user, err := users.LoadAuthUser(c.Request.Context(), userID)
		if err != nil || user == nil {
			response.Unauthorized(c, "USER_NOT_FOUND", "User account not found")
			c.Abort()
			return
		}

		// A token issued before the last logout (or ban) carries a stale
		// version and is treated as revoked.
		if claims.TokenVersion != user.TokenVersion {
			response.Unauthorized(c, "TOKEN_INVALIDATED", "Your session has expired. Please log in again.")
			c.Abort()
			return
		}

		if user.Banned {
			response.Unauthorized(c, "USER_BANNED", "This account has been suspended")
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("role", user.Role)

		c.Next()
	}
}

// GetUserID reads the authenticated user id set by Auth.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
