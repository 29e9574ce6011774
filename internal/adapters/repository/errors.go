package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrUserNotFound = errors.New("User not found") // text doubles as the wire detail message
)
