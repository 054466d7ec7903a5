package intent

import "errors"

var (
	ErrEmptyResponse     = errors.New("model returned an empty response")
	ErrMalformedResponse = errors.New("model returned malformed intent JSON")
)
