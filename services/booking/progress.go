package booking

import (
	"context"
	"fmt"
	"time"

	"fitbook/models"
	"fitbook/services/scheduling"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// prescriptionEditWindow is how long after recording a completion the trainer
// may still amend the prescription.
const prescriptionEditWindow = 60 * time.Minute

// RecordSessionCompletion stores the trainer's prescription, advances package
// progress, and pays the trainer exactly once when the booking completes. A
// single-session booking completes immediately; a package completes when its
// last daily session is recorded.
func (s *DefaultBookingService) RecordSessionCompletion(ctx context.Context, bookingID, prescription string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.PaymentStatus == models.BookingStatusCancelled {
		return nil, ErrInvalidState
	}
	// An already-completed booking absorbs the retry without touching the
	// prescription, the counter or the wallet.
	if b.PaymentStatus == models.BookingStatusCompleted {
		return b, nil
	}

	updated, err := s.Bookings.SetPrescription(ctx, b.ID, prescription, time.Now())
	if err != nil {
		return nil, err
	}

	if b.SessionType == models.SessionTypeSingle {
		return s.completeBooking(ctx, updated)
	}
	return s.advancePackage(ctx, updated)
}

// completeBooking credits the trainer and flips the booking to Completed. The
// credit is idempotent per booking and runs first: if it fails, the booking
// stays Confirmed and the retry re-attempts the payout rather than skipping
// it, and a duplicate credit on retry is dropped by the wallet.
func (s *DefaultBookingService) completeBooking(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	if _, err := s.Wallet.Credit(ctx, b.TrainerID, b.Amount, b.ID); err != nil {
		return nil, fmt.Errorf("crediting trainer %s for booking %s: %w", b.TrainerID, b.ID, err)
	}

	applied, err := s.Bookings.SetPaymentStatus(ctx, b.ID,
		models.BookingStatusConfirmed, models.BookingStatusCompleted)
	if err != nil {
		return nil, err
	}
	if !applied {
		return b, nil
	}
	b.PaymentStatus = models.BookingStatusCompleted

	s.Logger.Info("booking completed",
		zap.String("bookingId", b.ID),
		zap.String("trainerId", b.TrainerID))
	return b, nil
}

// advancePackage bumps the slot's completed-session counter by one. The bump
// is conditional on the counter value we read, so two concurrent submissions
// for the same day advance it once. Reaching the package size completes the
// booking.
func (s *DefaultBookingService) advancePackage(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	slot, err := s.Slots.GetByID(ctx, b.SlotID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, scheduling.ErrSlotNotFound
		}
		return nil, err
	}

	total, err := packageSessions(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	if slot.CompletedSessions >= total {
		// Every session is already recorded but the booking is still
		// Confirmed, so an earlier attempt stopped between the final
		// increment and the payout. Finish the completion now.
		return s.completeBooking(ctx, b)
	}

	applied, err := s.Slots.IncrementCompletedSessions(ctx, slot.ID, slot.CompletedSessions)
	if err != nil {
		return nil, err
	}
	if !applied {
		// Lost the race to a concurrent submission that advanced the counter.
		return b, nil
	}

	done := slot.CompletedSessions + 1
	s.Logger.Info("package session recorded",
		zap.String("bookingId", b.ID),
		zap.Int("completed", done),
		zap.Int("total", total))

	if done == total {
		return s.completeBooking(ctx, b)
	}
	return b, nil
}

// UpdatePrescription amends the prescription text of a completed session,
// within an hour of the completion being recorded.
func (s *DefaultBookingService) UpdatePrescription(ctx context.Context, bookingID, prescription string) error {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrBookingNotFound
		}
		return err
	}
	if b.SessionCompletionTime == nil {
		return ErrNotYetCompleted
	}
	if time.Since(*b.SessionCompletionTime) > prescriptionEditWindow {
		return ErrEditWindowExpired
	}
	return s.Bookings.UpdatePrescriptionText(ctx, bookingID, prescription)
}
