package vision

import "errors"

var (
	// ErrUnavailable indicates the model server is unreachable.
	ErrUnavailable = errors.New("vision server unavailable")

	ErrTimeout = errors.New("vision request timed out")

	// ErrInvalidOutput indicates the model reply could not be turned into
	// the expected structure.
	ErrInvalidOutput = errors.New("invalid vision output format")

	ErrRetryExhausted = errors.New("vision retry attempts exhausted")
)
