package linemessaging

import "errors"

var (
	// ErrMissingCredential is returned when the channel access token is not
	// configured. This is an operator configuration problem, not a
	// transient failure, and callers log it differently.
	ErrMissingCredential = errors.New("linemessaging: channel access token is not configured")

	// ErrMissingRecipient is returned when the recipient id is empty
	ErrMissingRecipient = errors.New("linemessaging: recipient id is required")

	// ErrPushFailed is returned when the LINE API rejects the push or the
	// request fails in transit
	ErrPushFailed = errors.New("linemessaging: push delivery failed")
)
