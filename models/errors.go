package models

import "errors"

var (
	// ErrNotFound covers both missing resources and resources owned by another
	// user. The two cases are indistinguishable on purpose.
	ErrNotFound = errors.New("not found")

	ErrDuplicateIdentity  = errors.New("user with this email or username already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
