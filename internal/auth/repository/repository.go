package repository

import (
	"errors"

	"taskengine-backend/internal/auth/domain"
)

// ErrDuplicateEmail is returned by Create when the email unique constraint
// rejects the insert.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user, relying on the store's unique constraint
	// to reject duplicate emails.
	Create(user *domain.User) error

	// FindByEmail finds a user by email, returning (nil, nil) when absent
	FindByEmail(email string) (*domain.User, error)

	// FindByID finds a user by ID, returning (nil, nil) when absent
	FindByID(id string) (*domain.User, error)
}
