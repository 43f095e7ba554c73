package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown username or a wrong password.
	// Both cases share one error so a caller cannot tell which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserAccountDisabled is returned when attempting to authenticate a disabled account.
	ErrUserAccountDisabled = errors.New("user account is disabled")
)
