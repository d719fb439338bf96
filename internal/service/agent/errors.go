package agent

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAgentID        = errors.New("invalid agent id")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidLatitude       = errors.New("latitude out of range")
	ErrInvalidLongitude      = errors.New("longitude out of range")

	ErrAgentNotFound = errors.New("delivery agent not found")
	ErrConflict      = errors.New("delivery agent already exists")
)
