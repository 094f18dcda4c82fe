package lineauth

import "errors"

var (
	// ErrTokenInvalid is returned when LINE rejects the id token
	ErrTokenInvalid = errors.New("lineauth: id token rejected")

	// ErrVerifyUnavailable is returned when the verification endpoint cannot
	// be reached within the bounded timeout. Callers fall back to a degraded
	// mode instead of blocking.
	ErrVerifyUnavailable = errors.New("lineauth: verification service unavailable")

	// ErrInternal is returned on unexpected client errors
	ErrInternal = errors.New("lineauth: internal error")
)
