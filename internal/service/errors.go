package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by the credential checker for both a
	// lookup miss and a password mismatch; callers can never tell the two
	// apart, and neither can API clients.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
