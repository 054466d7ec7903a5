package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"calendar-assistant/internal/calendar/repository"
	"calendar-assistant/pkg/log"
)

// defaultCalendarID targets the user's primary calendar.
const defaultCalendarID = "primary"

// TokenProvider supplies a short-lived access token for a user. The
// auth domain implements it on top of stored refresh tokens.
type TokenProvider interface {
	AccessToken(ctx context.Context, userID string) (string, error)
}

type implRepository struct {
	tokens TokenProvider
	l      log.Logger
	opts   []option.ClientOption
}

// New creates a Google Calendar backed Repository. Every call
// authenticates as the user whose calendar it touches. Extra client
// options are appended to every service build; tests use them to point
// the client at a fake API.
func New(tokens TokenProvider, l log.Logger, opts ...option.ClientOption) repository.Repository {
	if tokens == nil {
		panic("calendar/repository/google: token provider is required")
	}
	return &implRepository{tokens: tokens, l: l, opts: opts}
}

// service builds a per-request Calendar API client for the given user.
func (r *implRepository) service(ctx context.Context, userID string) (*calendar.Service, error) {
	accessToken, err := r.tokens.AccessToken(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("access token for user %s: %w", userID, err)
	}

	opts := append([]option.ClientOption{option.WithTokenSource(
		oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}),
	)}, r.opts...)
	return calendar.NewService(ctx, opts...)
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("calendar/repository/google.%s", method)
}
