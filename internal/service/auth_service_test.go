package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionware/storefront/internal/domain"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

func TestLoginRoles(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	admin, err := svc.Login(ctx, "admin@fusionware.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.User.Role)
	assert.NotEmpty(t, admin.Token)

	customer, err := svc.Login(ctx, "user@example.com", "user123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, customer.User.Role)
}

func TestLoginRejectsEverythingElse(t *testing.T) {
	svc := newAuthService(t)
	for _, pair := range [][2]string{
		{"admin@fusionware.com", "user123"},
		{"someone@example.com", "admin123"},
		{"user@example.com", ""},
		{"  admin@fusionware.com ", "admin123"},
		{"user@example.com", " user123"},
	} {
		result, err := svc.Login(context.Background(), pair[0], pair[1])
		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
		assert.Equal(t, InvalidCredentialsMessage, err.Error())
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, "user@example.com", "user123")
	require.NoError(t, err)
	claims, err := svc.tokens.ParseToken(result.Token)
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, claims.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.Name)

	require.NoError(t, svc.Logout(ctx, claims.ID))
	_, err = svc.CurrentUser(ctx, claims.ID)
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
}
