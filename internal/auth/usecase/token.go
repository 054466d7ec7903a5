package usecase

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"calendar-assistant/internal/auth"
)

// AccessToken mints a short-lived Google access token from the user's
// stored refresh token. Tokens are not cached: the oauth2 token source
// round-trips once per call and the calendar API tolerates that rate.
func (uc *implUseCase) AccessToken(ctx context.Context, userID string) (string, error) {
	encrypted, err := uc.repo.GetRefreshToken(ctx, userID)
	if err != nil {
		return "", err
	}
	if encrypted == "" {
		return "", auth.ErrNoRefreshToken
	}

	refreshToken, err := uc.enc.Decrypt(encrypted)
	if err != nil {
		uc.l.Errorf(ctx, "auth.AccessToken: decrypting refresh token for user %s: %v", userID, err)
		return "", err
	}

	token, err := uc.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		uc.l.Errorf(ctx, "auth.AccessToken: refreshing token for user %s: %v", userID, err)
		return "", fmt.Errorf("failed to refresh access token: %w", err)
	}
	return token.AccessToken, nil
}
