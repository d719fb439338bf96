package leave

import "errors"

var (
	ErrInvalidLeaveID      = errors.New("invalid leave id")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrInvalidLeaveType    = errors.New("invalid leave type")
	ErrReasonTooShort      = errors.New("reason must be at least 3 characters")
	ErrDescriptionTooShort = errors.New("description must be at least 10 characters")
	ErrStartDateInPast     = errors.New("start date must not be in the past")
	ErrEndBeforeStart      = errors.New("end date must not be before start date")

	ErrLeaveNotFound   = errors.New("leave request not found")
	ErrNotLeaveOwner   = errors.New("leave request belongs to another agent")
	ErrLeaveNotPending = errors.New("only pending leave requests can be cancelled")
)
