package booking

import "errors"

var (
	// ErrBookingNotFound is returned when a booking id resolves to nothing.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidState is returned when an operation does not apply to the
	// booking's current payment status.
	ErrInvalidState = errors.New("booking is not in a valid state for this operation")
	// ErrMissingAmount is returned when a booking carries no usable amount.
	ErrMissingAmount = errors.New("booking amount is missing or invalid")
	// ErrMissingPaymentIntent is returned when a refund is due but the booking
	// has no payment reference to refund against.
	ErrMissingPaymentIntent = errors.New("booking has no payment reference")
	// ErrRefundFailed is returned when the payment provider rejects a refund;
	// the booking stays Confirmed so the cancellation can be retried.
	ErrRefundFailed = errors.New("refund failed")
	// ErrNotYetCompleted is returned when a prescription edit targets a session
	// that was never recorded as completed.
	ErrNotYetCompleted = errors.New("session has not been completed")
	// ErrEditWindowExpired is returned when a prescription edit arrives more
	// than an hour after the session completion was recorded.
	ErrEditWindowExpired = errors.New("prescription edit window has expired")
)
