package auth

import "calendar-assistant/internal/model"

// --- UseCase Inputs ---

type CallbackInput struct {
	Code string
}

// --- UseCase Outputs ---

// CallbackOutput carries the signed session token to set as a cookie
// and the user it identifies.
type CallbackOutput struct {
	Token string
	User  model.User
}

type UserOutput struct {
	User model.User
}
