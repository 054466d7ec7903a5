package auth

import (
	"context"

	"calendar-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// LoginURL builds the Google consent redirect for one login attempt.
	LoginURL(ctx context.Context) string

	// HandleCallback finishes the OAuth flow: exchanges the code for
	// tokens, upserts the user, stores the refresh token encrypted and
	// signs a session token for the cookie.
	HandleCallback(ctx context.Context, input CallbackInput) (CallbackOutput, error)

	// CurrentUser loads the profile behind an authenticated scope.
	CurrentUser(ctx context.Context, sc model.Scope) (UserOutput, error)

	// AccessToken mints a short-lived Google access token from the
	// user's stored refresh token. The calendar store calls this before
	// every API request.
	AccessToken(ctx context.Context, userID string) (string, error)
}
