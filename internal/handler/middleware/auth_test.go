//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"fieldservice/internal/domain/user"
	"fieldservice/internal/handler/middleware"
	"fieldservice/internal/pkg/cookie"
	"fieldservice/internal/pkg/jwt"
	"fieldservice/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(svc *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := middleware.NewAuthMiddleware(svc)

	whoami := func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID.String(), "role": string(actor.Role)})
	}
	r.GET("/me", auth.RequireAuth(), whoami)
	r.GET("/admin", auth.RequireAuth(), auth.RequireRole(user.RoleAdmin), whoami)
	return r
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("unit-secret", time.Hour)
	router := newAuthRouter(svc)
	id := uuid.New()
	token, err := svc.GenerateToken(id, user.RoleSpecialist)
	require.NoError(t, err)

	t.Run("bearer header", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), id.String())
	})

	t.Run("cookie", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}
		w := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/me", nil, cookies, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"specialist"`)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, err := jwt.NewService("other-secret", time.Hour).GenerateToken(id, user.RoleAdmin)
		require.NoError(t, err)
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, other)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	svc := jwt.NewService("unit-secret", time.Hour)
	router := newAuthRouter(svc)

	specialist, err := svc.GenerateToken(uuid.New(), user.RoleSpecialist)
	require.NoError(t, err)
	admin, err := svc.GenerateToken(uuid.New(), user.RoleAdmin)
	require.NoError(t, err)

	w := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, specialist)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient permissions")

	w = httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, admin)
	assert.Equal(t, http.StatusOK, w.Code)
}
