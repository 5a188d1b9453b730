package usecase

import (
	"taskengine-backend/internal/auth/domain"
	"taskengine-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a new account with a hashed credential
	Register(req *dto.RegisterRequest) (*domain.User, error)

	// Login verifies credentials and issues an access token
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)

	// ValidateToken resolves a bearer token to the authenticated user
	ValidateToken(tokenString string) (*domain.User, error)
}
