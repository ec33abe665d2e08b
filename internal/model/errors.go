package model

import "errors"

var (
	// ErrInvalidToken means a bearer token could not be decoded. Fatal for
	// the login attempt: credentials are cleared before it is returned.
	ErrInvalidToken = errors.New("invalid token format")

	// ErrNoCredentials means an operation needed stored credentials and
	// found none.
	ErrNoCredentials = errors.New("no stored credentials")
)
