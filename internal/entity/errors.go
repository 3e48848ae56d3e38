package entity

import "errors"

var (
	// Intake errors
	ErrMissingImage = errors.New("no valid image provided")

	// Gateway errors
	ErrRemoteUnavailable = errors.New("remote classifier unavailable")
	ErrMalformedResponse = errors.New("malformed classifier response")
	ErrUnknownKind       = errors.New("unknown analysis kind")
)
