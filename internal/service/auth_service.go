package service

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/shelfwise/inventory-api/internal/config"
	"github.com/shelfwise/inventory-api/internal/utils"
)

// AuthService verifies the configured admin login and issues session tokens.
type AuthService struct {
	email        string
	passwordHash string
}

// NewAuthService constructs an AuthService from the admin config.
func NewAuthService(cfg *config.AdminConfig) *AuthService {
	return &AuthService{email: cfg.Email, passwordHash: cfg.PasswordHash}
}

// Login checks the credentials against the configured admin account and
// returns a signed JWT on success.
func (s *AuthService) Login(email, password string) (string, error) {
	if email != s.email {
		log.Warn().Str("email", email).Msg("login attempt for unknown account")
		return "", utils.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("password verification failed")
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(email)
	if err != nil {
		return "", err
	}

	log.Info().Str("email", email).Msg("login successful")
	return token, nil
}
