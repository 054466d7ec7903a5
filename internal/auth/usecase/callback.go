package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"calendar-assistant/internal/auth"
	"calendar-assistant/internal/auth/repository"
	"calendar-assistant/pkg/scope"
)

// googleProfile is the subset of the userinfo response we keep.
type googleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// HandleCallback finishes the OAuth flow. Users are keyed by Google ID
// rather than email: emails can change on an account, the ID cannot.
func (uc *implUseCase) HandleCallback(ctx context.Context, input auth.CallbackInput) (auth.CallbackOutput, error) {
	token, err := uc.oauth.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Errorf(ctx, "auth.HandleCallback: exchanging code: %v", err)
		return auth.CallbackOutput{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if token.RefreshToken == "" {
		uc.l.Errorf(ctx, "auth.HandleCallback: token response has no refresh token")
		return auth.CallbackOutput{}, auth.ErrNoRefreshToken
	}

	profile, err := uc.fetchProfile(ctx, token.AccessToken)
	if err != nil {
		uc.l.Errorf(ctx, "auth.HandleCallback: fetching profile: %v", err)
		return auth.CallbackOutput{}, fmt.Errorf("failed to fetch user profile: %w", err)
	}

	user, err := uc.repo.GetUserByGoogleID(ctx, profile.ID)
	if err != nil {
		return auth.CallbackOutput{}, err
	}
	if user.ID == "" {
		user, err = uc.repo.CreateUser(ctx, repository.CreateUserOptions{
			GoogleID: profile.ID,
			Email:    profile.Email,
			Name:     profile.Name,
			Picture:  profile.Picture,
		})
		if err != nil {
			return auth.CallbackOutput{}, err
		}
	}

	encrypted, err := uc.enc.Encrypt(token.RefreshToken)
	if err != nil {
		uc.l.Errorf(ctx, "auth.HandleCallback: encrypting refresh token: %v", err)
		return auth.CallbackOutput{}, fmt.Errorf("failed to protect refresh token: %w", err)
	}
	if err := uc.repo.UpsertRefreshToken(ctx, repository.UpsertRefreshTokenOptions{
		UserID:         user.ID,
		EncryptedToken: encrypted,
	}); err != nil {
		return auth.CallbackOutput{}, err
	}

	signed, err := uc.jwtManager.Generate(scope.Payload{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "auth.HandleCallback: signing session token: %v", err)
		return auth.CallbackOutput{}, err
	}

	return auth.CallbackOutput{Token: signed, User: user}, nil
}

func (uc *implUseCase) fetchProfile(ctx context.Context, accessToken string) (googleProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uc.userinfoURL, nil)
	if err != nil {
		return googleProfile{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := uc.httpClient.Do(req)
	if err != nil {
		return googleProfile{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return googleProfile{}, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return googleProfile{}, fmt.Errorf("userinfo error %d: %s", resp.StatusCode, string(body))
	}

	var profile googleProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return googleProfile{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if profile.ID == "" {
		return googleProfile{}, errors.New("userinfo response missing id")
	}
	return profile, nil
}
