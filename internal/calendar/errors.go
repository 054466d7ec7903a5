package calendar

import "errors"

var (
	ErrInvalidRange = errors.New("invalid time range")
)
