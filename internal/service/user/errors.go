package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidRole           = errors.New("invalid role")

	ErrUserNotFound = errors.New("user not found")
	ErrConflict     = errors.New("user already registered")
)
