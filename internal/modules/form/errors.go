package form

// ValidationError blocks a booking submission with a single message, in
// rule order, matching the itinerary flow's one-error-at-a-time behavior.
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string { return e.Message }
