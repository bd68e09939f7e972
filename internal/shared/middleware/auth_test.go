package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/jwt"
)

type fakeLoader struct {
	user *AuthUser
	err  error
}

func (l *fakeLoader) LoadAuthUser(ctx context.Context, id uuid.UUID) (*AuthUser, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.user, nil
}

func authRouter(manager *jwt.Manager, loader UserLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(manager, loader), func(c *gin.Context) {
		id, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String()})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	userID := uuid.New()

	activeUser := &AuthUser{ID: userID, Role: "user", TokenVersion: 2}

	validToken := func(version int) string {
		token, err := manager.Generate(userID.String(), version)
		require.NoError(t, err)
		return token
	}

	t.Run("missing header", func(t *testing.T) {
		r := authRouter(manager, &fakeLoader{user: activeUser})

		w := doRequest(r, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_REQUIRED")
	})

	t.Run("garbage token", func(t *testing.T) {
		r := authRouter(manager, &fakeLoader{user: activeUser})

		w := doRequest(r, "nonsense")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "AUTH_FAILED")
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewManager("test-secret", -time.Minute)
		token, err := expired.Generate(userID.String(), 2)
		require.NoError(t, err)
		r := authRouter(manager, &fakeLoader{user: activeUser})

		w := doRequest(r, token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("stale token version is revoked", func(t *testing.T) {
		r := authRouter(manager, &fakeLoader{user: activeUser})

		w := doRequest(r, validToken(1))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_INVALIDATED")
	})

	t.Run("banned user is rejected", func(t *testing.T) {
		banned := &AuthUser{ID: userID, Role: "user", Banned: true, TokenVersion: 2}
		r := authRouter(manager, &fakeLoader{user: banned})

		w := doRequest(r, validToken(2))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "USER_BANNED")
	})

	t.Run("matching version passes through", func(t *testing.T) {
		r := authRouter(manager, &fakeLoader{user: activeUser})

		w := doRequest(r, validToken(2))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
	})
}

func TestAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	adminOnly := func(role string) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/admin", func(c *gin.Context) { c.Set("role", role) }, Admin(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		return w
	}

	assert.Equal(t, http.StatusOK, adminOnly("admin").Code)
	assert.Equal(t, http.StatusForbidden, adminOnly("user").Code)
}
