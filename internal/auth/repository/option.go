package repository

// CreateUserOptions holds the Google profile captured on first login.
type CreateUserOptions struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

// UpsertRefreshTokenOptions replaces a user's stored refresh token.
// One row per user.
type UpsertRefreshTokenOptions struct {
	UserID         string
	EncryptedToken string
}
