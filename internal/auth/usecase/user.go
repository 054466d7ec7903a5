package usecase

import (
	"context"

	"calendar-assistant/internal/auth"
	"calendar-assistant/internal/model"
)

// CurrentUser loads the profile behind an authenticated scope. A valid
// cookie can outlive its account row, so a miss is still possible here.
func (uc *implUseCase) CurrentUser(ctx context.Context, sc model.Scope) (auth.UserOutput, error) {
	user, err := uc.repo.GetUserByID(ctx, sc.UserID)
	if err != nil {
		return auth.UserOutput{}, err
	}
	if user.ID == "" {
		return auth.UserOutput{}, auth.ErrUserNotFound
	}
	return auth.UserOutput{User: user}, nil
}
