package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcordovar/datacenter-access/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)
	user := &domain.User{ID: "u-1", Username: "seguridad", Role: domain.RoleSecurity}

	tokenStr, expiresAt, err := tm.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)
	assert.False(t, expiresAt.IsZero())

	claims, err := tm.ParseToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "seguridad", claims.Username)
	assert.Equal(t, domain.RoleSecurity, claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)
	other := NewTokenManager("other-secret", 30)

	tokenStr, _, err := tm.GenerateToken(&domain.User{ID: "u-1", Username: "admin", Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = other.ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)
	_, err := tm.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("demo123", 4)
	require.NoError(t, err)

	assert.NoError(t, ComparePassword(hash, "demo123"))
	assert.Error(t, ComparePassword(hash, "demo124"))
}
