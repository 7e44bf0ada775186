package event

import "errors"

var (
	ErrNilPayload         = errors.New("no payload to normalize")
	ErrUnsupportedPayload = errors.New("unsupported payload type")
	ErrInvalidTimestamp   = errors.New("invalid timestamp")
)
