package domain

import "errors"

// NoDataPlaceholder stands in for an upstream reply with no textual content.
const NoDataPlaceholder = "NO_DATA_RECEIVED"

var (
	// ErrNoAPIKeys is returned before any outbound attempt when the key
	// list is empty after discarding blanks. The text is user visible.
	ErrNoAPIKeys = errors.New("SYSTEM ERROR: NO_API_KEYS_DETECTED. CONTACT ADMIN.")

	// ErrKeysExhausted is returned after every configured key has failed.
	ErrKeysExhausted = errors.New("SYSTEM FAILURE: ALL API KEYS EXHAUSTED.")

	ErrNotFound           = errors.New("record not found")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUnknownPage        = errors.New("unknown page")
	ErrUserExists         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("not authorized")
)
