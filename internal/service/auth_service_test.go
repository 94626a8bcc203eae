package service

import (
	"context"
	"testing"
	"time"

	"boxpoint-api/internal/apperror"
	"boxpoint-api/internal/repository"
	"boxpoint-api/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndValidateToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	auth := NewAuthService(repository.NewUserRepo(f.db), jwt.NewManager("test-secret", time.Hour))

	user, err := f.users.CreateUser(ctx, &CreateUserRequest{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = auth.Login(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	_, err = auth.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	first, err := auth.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, first.Token)
	assert.Equal(t, user.ID, first.User.ID)

	validated, err := auth.ValidateToken(ctx, first.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, validated.ID)

	// a second login replaces the first session
	second, err := auth.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)

	_, err = auth.ValidateToken(ctx, first.Token)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	_, err = auth.ValidateToken(ctx, second.Token)
	assert.NoError(t, err)

	_, err = auth.ValidateToken(ctx, "garbage")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}
