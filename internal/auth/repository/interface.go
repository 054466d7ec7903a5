package repository

import (
	"context"

	"calendar-assistant/internal/model"
)

// Repository is the composed interface for the auth domain data store.
type Repository interface {
	UserRepository
	TokenRepository
}

// UserRepository defines data access for user accounts.
type UserRepository interface {
	// GetUserByGoogleID returns the zero value without error when no
	// user matches.
	GetUserByGoogleID(ctx context.Context, googleID string) (model.User, error)

	// GetUserByID returns the zero value without error when no user
	// matches.
	GetUserByID(ctx context.Context, id string) (model.User, error)

	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
}

// TokenRepository defines data access for encrypted refresh tokens.
// Ciphertext only; encryption belongs to the use case.
type TokenRepository interface {
	UpsertRefreshToken(ctx context.Context, opt UpsertRefreshTokenOptions) error

	// GetRefreshToken returns the stored ciphertext, or "" when the
	// user has none.
	GetRefreshToken(ctx context.Context, userID string) (string, error)
}
