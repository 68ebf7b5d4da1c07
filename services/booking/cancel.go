package booking

import (
	"context"
	"math"
	"time"

	"fitbook/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// refundFraction maps the hours remaining before the session start to the
// refundable share of the booking amount: full refund with more than 24 hours
// of notice, half with more than 6, nothing after that.
func refundFraction(hoursLeft float64) float64 {
	switch {
	case hoursLeft > 24:
		return 1.0
	case hoursLeft > 6:
		return 0.5
	default:
		return 0
	}
}

// CancelBooking cancels a Confirmed booking and refunds according to how much
// notice the user gave. The refund runs before the status flip, so a provider
// failure leaves the booking Confirmed and retryable.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) (*CancellationResult, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.PaymentStatus != models.BookingStatusConfirmed {
		return nil, ErrInvalidState
	}
	if b.Amount < 0 || math.IsNaN(b.Amount) || math.IsInf(b.Amount, 0) {
		return nil, ErrMissingAmount
	}

	start, err := b.SessionStart(time.Local)
	if err != nil {
		return nil, err
	}
	hoursLeft := time.Until(start).Hours()
	fraction := refundFraction(hoursLeft)
	// Refunds round down to whole currency units before converting to cents.
	refundCents := int64(math.Floor(b.Amount*fraction)) * 100

	if refundCents > 0 {
		if b.PaymentIntent == "" {
			return nil, ErrMissingPaymentIntent
		}
		ok, refundErr := s.Gateway.Refund(ctx, b.PaymentIntent, refundCents)
		if refundErr != nil || !ok {
			s.Logger.Error("refund failed, booking stays Confirmed",
				zap.String("bookingId", b.ID),
				zap.Int64("refundCents", refundCents),
				zap.Error(refundErr))
			return nil, ErrRefundFailed
		}
	}

	applied, err := s.Bookings.SetPaymentStatus(ctx, b.ID,
		models.BookingStatusConfirmed, models.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	if !applied {
		// Someone else moved the booking out of Confirmed between our read
		// and the transition.
		return nil, ErrInvalidState
	}
	b.PaymentStatus = models.BookingStatusCancelled

	if err := s.Notifier.BookingCancelled(ctx, b); err != nil {
		s.Logger.Warn("cancellation notifications failed",
			zap.String("bookingId", b.ID),
			zap.Error(err))
	}

	s.Logger.Info("booking cancelled",
		zap.String("bookingId", b.ID),
		zap.Float64("hoursBeforeStart", hoursLeft),
		zap.Int64("refundCents", refundCents))
	return &CancellationResult{Booking: b, RefundAmount: refundCents}, nil
}
