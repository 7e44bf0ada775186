package webhook

import "errors"

var (
	ErrNoData            = errors.New("no data received")
	ErrInvalidJSON       = errors.New("request body is not valid JSON")
	ErrMalformedPayload  = errors.New("malformed payload")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)
