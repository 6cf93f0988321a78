//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"fieldservice/internal/domain/user"
	"fieldservice/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("round trip keeps user id and role", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)
		id := uuid.New()

		token, err := svc.GenerateToken(id, user.RoleSpecialist)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, claims.UserID)
		assert.Equal(t, "specialist", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute)
		token, err := svc.GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("secret", time.Hour).GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		_, err = jwt.NewService("other", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("token from another issuer", func(t *testing.T) {
		claims := jwt.Claims{
			UserID: uuid.New(),
			Role:   "admin",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("claims convert to an actor", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)
		id := uuid.New()
		token, err := svc.GenerateToken(id, user.RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.Issuer, claims.Issuer)
		actor, err := claims.Actor()
		require.NoError(t, err)
		assert.Equal(t, user.Actor{ID: id, Role: user.RoleAdmin}, actor)

		claims.Role = "owner"
		_, err = claims.Actor()
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}
