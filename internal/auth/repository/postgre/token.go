package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	repo "calendar-assistant/internal/auth/repository"
)

// UpsertRefreshToken stores or replaces a user's encrypted refresh
// token. Re-login replaces the previous token.
func (r *implRepository) UpsertRefreshToken(ctx context.Context, opt repo.UpsertRefreshTokenOptions) error {
	const query = `
		INSERT INTO refresh_tokens (user_id, encrypted_token, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET encrypted_token = EXCLUDED.encrypted_token, updated_at = NOW()`

	if _, err := r.db.Exec(ctx, query, opt.UserID, opt.EncryptedToken); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertRefreshToken"), err)
		return repo.ErrFailedToUpsert
	}
	return nil
}

// GetRefreshToken returns the stored ciphertext, or "" when the user
// has none.
func (r *implRepository) GetRefreshToken(ctx context.Context, userID string) (string, error) {
	const query = `SELECT encrypted_token FROM refresh_tokens WHERE user_id = $1`

	var encrypted string
	err := r.db.QueryRow(ctx, query, userID).Scan(&encrypted)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRefreshToken"), err)
		return "", repo.ErrFailedToGet
	}
	return encrypted, nil
}
