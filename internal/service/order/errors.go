package order

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidUserID  = errors.New("invalid user id")
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderExists    = errors.New("order already exists")
	ErrNotOrderOwner  = errors.New("order belongs to another user")
	ErrNotCancellable = errors.New("order can no longer be cancelled")
	ErrNotApprovable  = errors.New("only pending orders can be approved")
	ErrMissingItems   = errors.New("order has no line items")
	ErrInvalidAmount  = errors.New("invalid order amount")
)
