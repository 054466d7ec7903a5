package usecase

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// LoginURL builds the Google consent URL for one login attempt.
// Offline access with forced consent makes Google return a refresh
// token on every login, not only the first grant per account.
func (uc *implUseCase) LoginURL(ctx context.Context) string {
	return uc.oauth.AuthCodeURL(
		uuid.NewString(),
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
		oauth2.ApprovalForce,
	)
}
