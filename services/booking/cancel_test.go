package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// confirmedBooking builds a Confirmed booking whose session starts the given
// duration from now.
func confirmedBooking(startsIn time.Duration, amount float64) models.Booking {
	start := time.Now().Add(startsIn)
	return models.Booking{
		ID:             "booking-1",
		SlotID:         "slot-1",
		TrainerID:      "trainer-1",
		UserID:         "user-1",
		Specialization: "Strength Training",
		SessionType:    models.SessionTypeSingle,
		StartDate:      start.Format(models.DateLayout),
		StartTime:      start.Format(models.TimeLayout),
		EndTime:        start.Add(time.Hour).Format(models.TimeLayout),
		Amount:         amount,
		PaymentStatus:  models.BookingStatusConfirmed,
		PaymentIntent:  "pi_test_1",
	}
}

func cancelFixture(b models.Booking) *fixture {
	f := newFixture()
	f.bookings = newStubBookingRepo(b)
	f.svc.Bookings = f.bookings
	return f
}

func TestCancelFullRefundWithMoreThan24HoursNotice(t *testing.T) {
	f := cancelFixture(confirmedBooking(30*time.Hour, 100))

	res, err := f.svc.CancelBooking(context.Background(), "booking-1")
	require.NoError(t, err)

	assert.Equal(t, int64(10000), res.RefundAmount)
	assert.Equal(t, models.BookingStatusCancelled, res.Booking.PaymentStatus)
	assert.Equal(t, []int64{10000}, f.gateway.refunds)
	assert.Equal(t, []string{"booking-1"}, f.notifier.cancelled)
}

func TestCancelHalfRefundBetween6And24Hours(t *testing.T) {
	f := cancelFixture(confirmedBooking(10*time.Hour, 100))

	res, err := f.svc.CancelBooking(context.Background(), "booking-1")
	require.NoError(t, err)

	assert.Equal(t, int64(5000), res.RefundAmount)
	assert.Equal(t, []int64{5000}, f.gateway.refunds)
}

func TestCancelNoRefundWithin6Hours(t *testing.T) {
	f := cancelFixture(confirmedBooking(2*time.Hour, 100))

	res, err := f.svc.CancelBooking(context.Background(), "booking-1")
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.RefundAmount)
	assert.Empty(t, f.gateway.refunds, "a zero refund must not reach the gateway")
	assert.Equal(t, models.BookingStatusCancelled, res.Booking.PaymentStatus)
	assert.Equal(t, []string{"booking-1"}, f.notifier.cancelled)
}

func TestCancelExactly24HoursIsHalfRefund(t *testing.T) {
	// Wall-clock minutes truncate the start time, so "exactly 24 hours" lands
	// just inside the 50% tier.
	f := cancelFixture(confirmedBooking(24*time.Hour, 100))

	res, err := f.svc.CancelBooking(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.Equal(t, int64(5000), res.RefundAmount)
}

func TestCancelExactly6HoursIsNoRefund(t *testing.T) {
	f := cancelFixture(confirmedBooking(6*time.Hour, 100))

	res, err := f.svc.CancelBooking(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.RefundAmount)
}

func TestCancelRefundRoundsDownToWholeUnits(t *testing.T) {
	f := cancelFixture(confirmedBooking(10*time.Hour, 99.99))

	res, err := f.svc.CancelBooking(context.Background(), "booking-1")
	require.NoError(t, err)
	// floor(99.99 * 0.5) = 49 units.
	assert.Equal(t, int64(4900), res.RefundAmount)
}

func TestCancelRefundFailureLeavesBookingConfirmed(t *testing.T) {
	f := cancelFixture(confirmedBooking(30*time.Hour, 100))
	f.gateway.refundErr = errors.New("provider unavailable")

	_, err := f.svc.CancelBooking(context.Background(), "booking-1")
	assert.ErrorIs(t, err, ErrRefundFailed)

	b, err := f.bookings.GetByID(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, b.PaymentStatus)
	assert.Empty(t, f.notifier.cancelled)
}

func TestCancelRefundRejectedLeavesBookingConfirmed(t *testing.T) {
	f := cancelFixture(confirmedBooking(30*time.Hour, 100))
	f.gateway.refundOK = false

	_, err := f.svc.CancelBooking(context.Background(), "booking-1")
	assert.ErrorIs(t, err, ErrRefundFailed)

	b, err := f.bookings.GetByID(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, b.PaymentStatus)
}

func TestCancelMissingPaymentIntent(t *testing.T) {
	b := confirmedBooking(30*time.Hour, 100)
	b.PaymentIntent = ""
	f := cancelFixture(b)

	_, err := f.svc.CancelBooking(context.Background(), "booking-1")
	assert.ErrorIs(t, err, ErrMissingPaymentIntent)
}

func TestCancelRejectsNonConfirmedBooking(t *testing.T) {
	for _, status := range []string{models.BookingStatusCancelled, models.BookingStatusCompleted} {
		b := confirmedBooking(30*time.Hour, 100)
		b.PaymentStatus = status
		f := cancelFixture(b)

		_, err := f.svc.CancelBooking(context.Background(), "booking-1")
		assert.ErrorIs(t, err, ErrInvalidState)
	}
}

func TestCancelRejectsNegativeAmount(t *testing.T) {
	b := confirmedBooking(30*time.Hour, 100)
	b.Amount = -10
	f := cancelFixture(b)

	_, err := f.svc.CancelBooking(context.Background(), "booking-1")
	assert.ErrorIs(t, err, ErrMissingAmount)
}

func TestCancelUnknownBooking(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CancelBooking(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelIsNotRepeatable(t *testing.T) {
	f := cancelFixture(confirmedBooking(30*time.Hour, 100))

	_, err := f.svc.CancelBooking(context.Background(), "booking-1")
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(context.Background(), "booking-1")
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Len(t, f.gateway.refunds, 1, "a second cancel must not refund again")
}
