package scheduling

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotNotFound is returned when a slot id resolves to nothing.
	ErrSlotNotFound = errors.New("slot not found")
	// ErrInvalidRange is returned when a slot's end time is not after its start time.
	ErrInvalidRange = errors.New("end time must be after start time")
	// ErrMinimumDuration is returned when a slot is shorter than the platform minimum.
	ErrMinimumDuration = errors.New("session duration must be at least 30 minutes")
	// ErrInvalidPrice is returned when a slot price is negative or not a finite number.
	ErrInvalidPrice = errors.New("invalid slot price")
)

// TimeConflictError reports a collision with an already-published slot.
type TimeConflictError struct {
	ConflictingDate string
}

func (e *TimeConflictError) Error() string {
	return fmt.Sprintf("time conflict with an existing slot on %s", e.ConflictingDate)
}
