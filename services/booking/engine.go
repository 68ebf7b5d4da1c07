package booking

import (
	"context"
	"fmt"
	"math"
	"time"

	"fitbook/config"
	bookingRepo "fitbook/database/repository/booking"
	"fitbook/models"
	"fitbook/services/payment"
	"fitbook/services/scheduling"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// InitiateCheckout opens a hosted checkout for a slot. The booking itself is
// only written once the payment completes and FinalizeBooking runs.
func (s *DefaultBookingService) InitiateCheckout(ctx context.Context, slotID, userID string) (*payment.Checkout, error) {
	slot, err := s.Slots.GetByID(ctx, slotID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, scheduling.ErrSlotNotFound
		}
		return nil, err
	}

	trainer, err := s.Trainers.GetByID(ctx, slot.TrainerID)
	if err != nil {
		return nil, fmt.Errorf("resolving trainer %s: %w", slot.TrainerID, err)
	}
	spec, err := s.Trainers.GetSpecializationByID(ctx, slot.SpecializationID)
	if err != nil {
		return nil, fmt.Errorf("resolving specialization %s: %w", slot.SpecializationID, err)
	}

	kind := sessionType(slot)
	var description string
	if kind == models.SessionTypePackage && slot.EndDate != "" {
		description = fmt.Sprintf("%s (%s) with %s, %s to %s, %s-%s",
			kind, spec.Name, trainer.Name, slot.StartDate, slot.EndDate, slot.StartTime, slot.EndTime)
	} else {
		description = fmt.Sprintf("%s (%s) with %s on %s, %s-%s",
			kind, spec.Name, trainer.Name, slot.StartDate, slot.StartTime, slot.EndTime)
	}

	origin := config.AppConfig.ClientOrigin
	co, err := s.Gateway.CreateCheckout(ctx, payment.CheckoutRequest{
		AmountCents: int64(math.Round(slot.Price * 100)),
		Name:        spec.Name,
		Description: description,
		SuccessURL:  origin + "/payment/success?session_id={CHECKOUT_SESSION_ID}&slot_id=" + slot.ID,
		CancelURL:   origin + "/payment/cancel",
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("checkout initiated",
		zap.String("slotId", slot.ID),
		zap.String("userId", userID),
		zap.String("checkoutId", co.ID))
	return co, nil
}

// FinalizeBooking confirms the slot and writes the booking after a successful
// payment. It is idempotent per (slot, user): a retry returns the original
// booking, emits no second notification and never writes a second record.
func (s *DefaultBookingService) FinalizeBooking(ctx context.Context, slotID, userID, checkoutID string) (*models.Booking, error) {
	slot, err := s.Slots.GetByID(ctx, slotID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, scheduling.ErrSlotNotFound
		}
		return nil, err
	}

	// Both updates are idempotent, so re-running a retried confirmation is
	// harmless.
	if err := s.Slots.SetStatus(ctx, slot.ID, models.SlotStatusConfirmed); err != nil {
		return nil, fmt.Errorf("confirming slot %s: %w", slot.ID, err)
	}
	if err := s.Slots.SetBooked(ctx, slot.ID); err != nil {
		return nil, fmt.Errorf("marking slot %s booked: %w", slot.ID, err)
	}

	if existing, err := s.Bookings.GetBySlotAndUser(ctx, slot.ID, userID); err == nil {
		s.Logger.Info("booking already exists, returning it",
			zap.String("slotId", slot.ID),
			zap.String("userId", userID))
		return existing, nil
	} else if err != mongo.ErrNoDocuments {
		return nil, err
	}

	co, err := s.Gateway.RetrieveCheckout(ctx, checkoutID)
	if err != nil {
		return nil, err
	}

	spec, err := s.Trainers.GetSpecializationByID(ctx, slot.SpecializationID)
	if err != nil {
		return nil, fmt.Errorf("resolving specialization %s: %w", slot.SpecializationID, err)
	}

	booking := &models.Booking{
		SlotID:         slot.ID,
		TrainerID:      slot.TrainerID,
		UserID:         userID,
		Specialization: spec.Name,
		SessionType:    sessionType(slot),
		BookingDate:    time.Now(),
		StartDate:      slot.StartDate,
		EndDate:        slot.EndDate,
		StartTime:      slot.StartTime,
		EndTime:        slot.EndTime,
		Amount:         slot.Price,
		PaymentStatus:  models.BookingStatusConfirmed,
		PaymentIntent:  co.PaymentReference,
	}

	if err := s.Bookings.Insert(ctx, booking); err != nil {
		if bookingRepo.IsDuplicate(err) {
			// A concurrent retry won the insert; hand back its booking.
			return s.Bookings.GetBySlotAndUser(ctx, slot.ID, userID)
		}
		return nil, err
	}

	if err := s.Notifier.BookingConfirmed(ctx, booking); err != nil {
		s.Logger.Warn("booking confirmation notifications failed",
			zap.String("bookingId", booking.ID),
			zap.Error(err))
	}

	s.Logger.Info("booking confirmed",
		zap.String("bookingId", booking.ID),
		zap.String("slotId", slot.ID),
		zap.String("userId", userID))
	return booking, nil
}
