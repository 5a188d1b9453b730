package usecase

import (
	"errors"

	"taskengine-backend/internal/auth/domain"
	"taskengine-backend/internal/auth/dto"
	"taskengine-backend/internal/auth/repository"
	"taskengine-backend/internal/auth/token"
	"taskengine-backend/pkg/apperror"
	"taskengine-backend/pkg/config"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo   repository.UserRepository
	tokens     *token.Service
	bcryptCost int
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: cfg.BcryptCost,
	}
}

func (u *authUsecase) Register(req *dto.RegisterRequest) (*domain.User, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if existing != nil {
		return nil, duplicateEmail()
	}

	hashedPassword, err := repository.HashPassword(req.Password, u.bcryptCost)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	user := &domain.User{
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := u.userRepo.Create(user); err != nil {
		// The unique constraint catches the race the FindByEmail check misses.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, duplicateEmail()
		}
		return nil, apperror.NewInternal(err)
	}

	return user, nil
}

func (u *authUsecase) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	if user == nil || !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperror.NewUnauthorized("invalid email or password").
			WithDetail("credentials", "INVALID")
	}

	accessToken, err := u.tokens.Issue(user.UserID)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// ValidateToken resolves a bearer token to a user. A valid token whose
// subject has no user row is NotFound rather than Unauthorized.
func (u *authUsecase) ValidateToken(tokenString string) (*domain.User, error) {
	subject, err := u.tokens.Verify(tokenString)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid or expired token")
	}
	if subject == "" {
		return nil, apperror.NewUnauthorized("token has no subject")
	}

	user, err := u.userRepo.FindByID(subject)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if user == nil {
		return nil, apperror.NewNotFound("user not found")
	}

	return user, nil
}

func duplicateEmail() *apperror.Error {
	return apperror.NewConflict("email already registered").
		WithDetail("email", "EMAIL_ALREADY_EXISTS")
}
