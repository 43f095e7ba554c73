package admin

import "errors"

var (
	// ErrStoreNil is returned when the handler is initialized without a session store.
	ErrStoreNil = errors.New("session store is nil")

	// ErrMissingCredentials is returned when username or password is not submitted.
	ErrMissingCredentials = errors.New("username and password are required")
)
