package apiclient

import "errors"

var (
	// ErrMissingBaseURL indicates the client was created without a base URL
	ErrMissingBaseURL = errors.New("apiclient.missing_base_url")

	// ErrInvalidBaseURL indicates the base URL could not be parsed
	ErrInvalidBaseURL = errors.New("apiclient.invalid_base_url")
)
