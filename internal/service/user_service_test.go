package service

import (
	"context"
	"testing"

	"boxpoint-api/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := &CreateUserRequest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "secret1"}
	user, err := f.users.CreateUser(ctx, req)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret1", user.Password)
	assert.True(t, user.CheckPassword("secret1"))

	_, err = f.users.CreateUser(ctx, req)
	assert.ErrorIs(t, err, apperror.ErrAlreadyExists)
	assert.EqualError(t, err, "Oops! ada@example.com already exists!")

	_, err = f.users.CreateUser(ctx, &CreateUserRequest{FirstName: "B", LastName: "C", Email: "not-an-email", Password: "secret1"})
	assert.ErrorIs(t, err, apperror.ErrInvalid)

	_, err = f.users.CreateUser(ctx, &CreateUserRequest{FirstName: "B", LastName: "C", Email: "b@example.com", Password: "123"})
	assert.ErrorIs(t, err, apperror.ErrInvalid)
}

func TestUpdateGetDeleteUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.CreateUser(ctx, &CreateUserRequest{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = f.users.UpdateUser(ctx, &UpdateUserRequest{FirstName: "Augusta", LastName: "King"}, user.ID)
	require.NoError(t, err)

	got, err := f.users.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	dto := f.users.ConvertUserToDto(got)
	assert.Equal(t, "Augusta", dto.FirstName)
	assert.Equal(t, "King", dto.LastName)
	assert.Equal(t, "ada@example.com", dto.Email)
	assert.True(t, got.CheckPassword("secret1"))

	_, err = f.users.UpdateUser(ctx, &UpdateUserRequest{FirstName: "X", LastName: "Y"}, 999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.NoError(t, f.users.DeleteUser(ctx, user.ID))
	_, err = f.users.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.EqualError(t, err, "User not found!")

	assert.ErrorIs(t, f.users.DeleteUser(ctx, user.ID), apperror.ErrNotFound)
}
