package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/attendance-gateway-go/internal/domain/auth"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")

	token, expiresAt, err := svc.GenerateAccessToken(auth.Employee{
		ID:      "42",
		Name:    "Asha",
		EmpCode: "E042",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	t.Run("bad expiration duration", func(t *testing.T) {
		broken := NewJWTService("test-secret", "soon")
		_, _, err := broken.GenerateAccessToken(auth.Employee{ID: "42"})
		assert.Error(t, err)
	})
}

func TestTokenRevocation(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")

	token, _, err := svc.GenerateAccessToken(auth.Employee{ID: "42"})
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
	assert.False(t, svc.IsTokenRevoked("some-other-token"))
}
