package entities

import "errors"

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrRatingNotFound = errors.New("rating not found")
	ErrInvalidOrder   = errors.New("invalid order")
	ErrInvalidInput   = errors.New("invalid input")

	// Wrong role for the requested transition.
	ErrForbidden = errors.New("forbidden")
	// Right role, but the order is not in a state that allows the transition.
	ErrPreconditionFailed = errors.New("precondition failed")
	// Lost a concurrent update race, or a conflicting duplicate write.
	ErrConflict     = errors.New("conflict")
	ErrAlreadyRated = errors.New("already rated")
	// The payment provider rejected or failed the call.
	ErrUpstreamFailure = errors.New("upstream failure")
)
