package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.GenerateToken(7, "a@b.io", "v1")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "a@b.io", claims.Email)
	assert.Equal(t, "v1", claims.TokenVersion)
	assert.Equal(t, "7", claims.Subject)
}

func TestValidateRejectsForeignAndExpiredTokens(t *testing.T) {
	token, err := NewManager("other", time.Hour).GenerateToken(1, "a@b.io", "v1")
	require.NoError(t, err)
	_, err = NewManager("secret", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := NewManager("secret", -time.Minute).GenerateToken(1, "a@b.io", "v1")
	require.NoError(t, err)
	_, err = NewManager("secret", time.Hour).ValidateToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewManager("secret", time.Hour).ValidateToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
