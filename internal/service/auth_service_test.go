package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shelfwise/inventory-api/internal/config"
	"github.com/shelfwise/inventory-api/internal/utils"
)

func newAuthService(t *testing.T, email, password string) *AuthService {
	t.Helper()
	utils.InitJWT("test-secret")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(&config.AdminConfig{Email: email, PasswordHash: string(hash)})
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t, "admin@example.com", "hunter2")

	t.Run("IssuesValidToken", func(t *testing.T) {
		token, err := svc.Login("admin@example.com", "hunter2")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := utils.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.Equal(t, "admin", claims.Subject)
	})

	t.Run("RejectsWrongPassword", func(t *testing.T) {
		_, err := svc.Login("admin@example.com", "wrong")
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("RejectsUnknownEmail", func(t *testing.T) {
		_, err := svc.Login("someone@example.com", "hunter2")
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("RejectsTamperedToken", func(t *testing.T) {
		token, err := svc.Login("admin@example.com", "hunter2")
		require.NoError(t, err)

		_, err = utils.ValidateJWT(token + "x")
		assert.Error(t, err)
	})
}
