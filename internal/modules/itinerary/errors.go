package itinerary

import "errors"

// ValidationError is the single blocking message produced by the draft
// rules. Exactly one is surfaced at a time, in rule order.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var ErrIndexOutOfRange = errors.New("index out of range")
