package entities

import "errors"

// Request-level failures surfaced by the chat flow. Anything else coming
// out of the stores is a storage failure and must not be collapsed into
// one of these.
var (
	ErrInvalidAPIKey     = errors.New("invalid api key")
	ErrEmptyMessage      = errors.New("message is required")
	ErrEmptySessionToken = errors.New("session id is required")
	ErrNoOpenSession     = errors.New("no open session")
)
