// pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_RequiresSecret(t *testing.T) {
	_, err := NewManager("", time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestManager_RoundTrip(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := m.GenerateToken("7", "ana@example.com")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestManager_ValidateToken(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	other, err := NewManager("other-secret", time.Hour)
	require.NoError(t, err)

	foreign, err := other.GenerateToken("7", "ana@example.com")
	require.NoError(t, err)

	expired, err := NewManager("test-secret", time.Minute)
	require.NoError(t, err)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	stale, err := expired.GenerateToken("7", "ana@example.com")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "7"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"wrong secret", foreign},
		{"expired", stale},
		{"alg none", unsigned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestManager_Revoke(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := m.GenerateToken("7", "ana@example.com")
	require.NoError(t, err)
	claims, err := m.ValidateToken(token)
	require.NoError(t, err)

	m.Revoke(claims)
	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrBlacklisted)

	fresh, err := m.GenerateToken("7", "ana@example.com")
	require.NoError(t, err)
	_, err = m.ValidateToken(fresh)
	assert.NoError(t, err)
}
