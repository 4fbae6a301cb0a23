package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"estatesync-listings/internal/auth"
	"estatesync-listings/pkg/config"
)

// AuthService authenticates the single configured admin account that may read
// listings back out. There is no user store: credentials live in config.
type AuthService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

func (s *AuthService) Login(email, password string) (*auth.TokenDetails, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if email != s.cfg.Admin.Email {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Admin.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	return auth.GenerateJWT(email, s.cfg.JWT.Secret)
}
