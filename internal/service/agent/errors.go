package agent

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAgentID        = errors.New("invalid agent id")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidAvailability   = errors.New("invalid availability")

	ErrAgentNotFound = errors.New("agent not found")
	ErrConflict      = errors.New("agent application already exists")
)
