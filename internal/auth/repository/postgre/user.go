package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	repo "calendar-assistant/internal/auth/repository"
	"calendar-assistant/internal/model"
)

// GetUserByGoogleID finds a user by the provider identity. The Google
// ID is the lookup key, not the email: emails change, Google IDs don't.
// Returns zero-value User (ID == "") when not found, no error.
func (r *implRepository) GetUserByGoogleID(ctx context.Context, googleID string) (model.User, error) {
	const query = `
		SELECT id, google_id, email, name, picture, created_at
		FROM users WHERE google_id = $1`

	var u model.User
	err := r.db.QueryRow(ctx, query, googleID).Scan(
		&u.ID, &u.GoogleID, &u.Email, &u.Name, &u.Picture, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetUserByGoogleID"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// GetUserByID finds a user by the internal primary key carried in
// session tokens. Returns zero-value User when not found, no error.
func (r *implRepository) GetUserByID(ctx context.Context, id string) (model.User, error) {
	const query = `
		SELECT id, google_id, email, name, picture, created_at
		FROM users WHERE id = $1`

	var u model.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.GoogleID, &u.Email, &u.Name, &u.Picture, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetUserByID"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// CreateUser inserts a first-login user row and returns it.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (google_id, email, name, picture)
		VALUES ($1, $2, $3, $4)
		RETURNING id, google_id, email, name, picture, created_at`

	var u model.User
	err := r.db.QueryRow(ctx, query, opt.GoogleID, opt.Email, opt.Name, opt.Picture).Scan(
		&u.ID, &u.GoogleID, &u.Email, &u.Name, &u.Picture, &u.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}
