package assignment

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidUserID  = errors.New("invalid user id")
	ErrMissingAgentID = errors.New("missing delivery agent id")

	ErrOrderCancelled       = errors.New("order is cancelled")
	ErrOrderNotApproved     = errors.New("order is awaiting approval")
	ErrOrderAlreadyAssigned = errors.New("order already assigned")
	ErrDeliveryInProgress   = errors.New("delivery already in progress")
	ErrOrderNotLocated      = errors.New("order has no destination coordinates")
	ErrNoAvailableAgents    = errors.New("no available delivery agents")

	ErrNotAssignee       = errors.New("order is assigned to another agent")
	ErrUndefinedStatus   = errors.New("undefined delivery status")
	ErrIllegalTransition = errors.New("illegal delivery status transition")
)
