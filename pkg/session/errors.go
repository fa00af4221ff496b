package session

import "errors"

var (
	// ErrInvalidSession indicates the server no longer recognizes the
	// stored credentials.
	ErrInvalidSession = errors.New("session.invalid")
)
