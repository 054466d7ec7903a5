package assistant

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMessage   = errors.New("message is required")
	ErrMessageTooLong = errors.New("message is too long")
	ErrParseFailed    = errors.New("failed to parse command")
)

// InvalidSelectionError reports a disambiguation reply outside the
// candidate range. The pending state survives it so the user can answer
// again.
type InvalidSelectionError struct {
	Max int
}

func (e InvalidSelectionError) Error() string {
	return fmt.Sprintf("Invalid selection. Please choose a number between 1 and %d.", e.Max)
}
