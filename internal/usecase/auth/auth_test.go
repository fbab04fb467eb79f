package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "mattespel/internal/errors"
	"mattespel/internal/repository"
)

func newHandler() *AuthUsecaseHandler {
	return NewAuthUsecaseHandler(repository.NewMemoryUserStorage(), repository.NewMemorySessionStorage())
}

func TestRegisterAndResolve(t *testing.T) {
	ctx := context.Background()
	a := newHandler()

	token, u, err := a.RegisterUser(ctx, "elsa@example.com", "Elsa", "hunter2")
	require.NoError(t, err)
	assert.Len(t, token, tokenLength)
	assert.Equal(t, "elsa@example.com", u.Email)
	assert.NotEqual(t, "hunter2", u.PasswordHash, "password must be stored hashed")

	resolved, err := a.ResolveUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, resolved.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	a := newHandler()

	_, _, err := a.RegisterUser(ctx, "elsa@example.com", "Elsa", "hunter2")
	require.NoError(t, err)

	_, _, err = a.RegisterUser(ctx, "elsa@example.com", "Other", "secret")
	assert.True(t, errors.Is(err, errs.ErrUserExists))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	a := newHandler()

	_, registered, err := a.RegisterUser(ctx, "elsa@example.com", "Elsa", "hunter2")
	require.NoError(t, err)

	token, u, err := a.LoginUser(ctx, "elsa@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)

	resolved, err := a.ResolveUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resolved.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	a := newHandler()

	_, _, err := a.RegisterUser(ctx, "elsa@example.com", "Elsa", "hunter2")
	require.NoError(t, err)

	_, _, err = a.LoginUser(ctx, "elsa@example.com", "wrong")
	assert.True(t, errors.Is(err, errs.ErrWrongPassword))

	_, _, err = a.LoginUser(ctx, "nobody@example.com", "hunter2")
	assert.True(t, errors.Is(err, errs.ErrUserNotFound))
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	a := newHandler()

	token, _, err := a.RegisterUser(ctx, "elsa@example.com", "Elsa", "hunter2")
	require.NoError(t, err)

	require.NoError(t, a.LogoutUser(ctx, token))

	_, err = a.ResolveUser(ctx, token)
	assert.True(t, errors.Is(err, errs.ErrSessionNotFound))

	err = a.LogoutUser(ctx, token)
	assert.True(t, errors.Is(err, errs.ErrSessionNotFound))
}
