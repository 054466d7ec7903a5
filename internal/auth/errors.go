package auth

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrNoRefreshToken = errors.New("no refresh token available")
)
