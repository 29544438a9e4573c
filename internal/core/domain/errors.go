package domain

import "errors"

var (
	ErrVenueNotFound     = errors.New("venue not found")
	ErrInvalidVenue      = errors.New("invalid venue")
	ErrSeatNotFound      = errors.New("seat not found")
	ErrSeatUnavailable   = errors.New("seat is not available")
	ErrCapacityExceeded  = errors.New("selection capacity exceeded")
	ErrInvalidSeatCount  = errors.New("invalid seat count")
	ErrUnknownFillPolicy = errors.New("unknown fill policy")
)
