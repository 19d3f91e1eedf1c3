package models

import "errors"

// Domain failures surfaced by entities and services. Controllers map these
// to HTTP status codes; everything here is recoverable and request-scoped.
var (
	ErrNotFound           = errors.New("not found")
	ErrSlotUnavailable    = errors.New("the requested time window is already taken")
	ErrNoPricingAvailable = errors.New("no weekly slot covers the requested time")
	ErrInvalidDeposit     = errors.New("deposit must be between 0 and the total price")
	ErrOverPayment        = errors.New("payment exceeds the total price")
	ErrInvalidTransition  = errors.New("invalid reservation state transition")
	ErrTooEarly           = errors.New("the reservation time has not passed yet")
	ErrInvalidRange       = errors.New("start time must be before end time")
	ErrPastDate           = errors.New("reservation start must be in the future")
)
