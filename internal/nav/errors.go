package nav

import "errors"

// Reasons a navigation request is rejected. None of them is surfaced to the
// audience; they exist for logging and tests.
var (
	ErrInvalidIndex       = errors.New("slide index out of range")
	ErrTransitionInFlight = errors.New("transition already in flight")
	ErrSameSlide          = errors.New("already on requested slide")
)
