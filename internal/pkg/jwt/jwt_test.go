//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"lifepass-admin/internal/pkg/clock"
	"lifepass-admin/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	svc := jwt.NewService("secret", "lifepass-admin", "skidata", 5*time.Minute, clk)

	token, err := svc.GenerateToken("pricing")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "pricing", claims.Scope)
	assert.Equal(t, "lifepass-admin", claims.Issuer)

	t.Run("expired token", func(t *testing.T) {
		clk.Add(10 * time.Minute)
		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("foreign audience", func(t *testing.T) {
		other := jwt.NewService("secret", "lifepass-admin", "someone-else", 5*time.Minute, clock.NewMockClock(now))
		foreign, err := other.GenerateToken("pricing")
		require.NoError(t, err)
		_, err = jwt.NewService("secret", "lifepass-admin", "skidata", 5*time.Minute, clock.NewMockClock(now)).ValidateToken(foreign)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
