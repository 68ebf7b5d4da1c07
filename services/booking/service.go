package booking

import (
	"context"
	"time"

	bookingRepo "fitbook/database/repository/booking"
	slotRepo "fitbook/database/repository/slot"
	trainerRepo "fitbook/database/repository/trainer"
	"fitbook/models"
	"fitbook/services/notification"
	"fitbook/services/payment"
	"fitbook/services/wallet"

	"go.uber.org/zap"
)

// CancellationResult reports the outcome of a booking cancellation.
type CancellationResult struct {
	Booking      *models.Booking `json:"booking"`
	RefundAmount int64           `json:"refundAmount"` // minor units actually refunded
}

// Service runs the booking lifecycle: checkout, confirmation, cancellation
// with tiered refunds, and session completion with trainer payouts.
type Service interface {
	InitiateCheckout(ctx context.Context, slotID, userID string) (*payment.Checkout, error)
	FinalizeBooking(ctx context.Context, slotID, userID, checkoutID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*CancellationResult, error)
	RecordSessionCompletion(ctx context.Context, bookingID, prescription string) (*models.Booking, error)
	UpdatePrescription(ctx context.Context, bookingID, prescription string) error
	UserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	TrainerBookings(ctx context.Context, trainerID string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation of Service.
type DefaultBookingService struct {
	Slots    slotRepo.Repository
	Bookings bookingRepo.Repository
	Trainers trainerRepo.Repository
	Gateway  payment.Gateway
	Wallet   wallet.Service
	Notifier notification.Producer
	Logger   *zap.Logger
}

// NewDefaultBookingService wires the booking service dependencies.
func NewDefaultBookingService(
	slots slotRepo.Repository,
	bookings bookingRepo.Repository,
	trainers trainerRepo.Repository,
	gateway payment.Gateway,
	walletSvc wallet.Service,
	notifier notification.Producer,
	logger *zap.Logger,
) *DefaultBookingService {
	return &DefaultBookingService{
		Slots:    slots,
		Bookings: bookings,
		Trainers: trainers,
		Gateway:  gateway,
		Wallet:   walletSvc,
		Notifier: notifier,
		Logger:   logger,
	}
}

// UserBookings lists a user's bookings, newest first.
func (s *DefaultBookingService) UserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Bookings.ListByUser(ctx, userID)
}

// TrainerBookings lists a trainer's bookings, newest first.
func (s *DefaultBookingService) TrainerBookings(ctx context.Context, trainerID string) ([]models.Booking, error) {
	return s.Bookings.ListByTrainer(ctx, trainerID)
}

// sessionType maps a slot onto its denormalized booking session type.
func sessionType(slot *models.Slot) string {
	if slot.IsSingleSession {
		return models.SessionTypeSingle
	}
	return models.SessionTypePackage
}

// packageSessions returns how many daily sessions a package slot contains:
// the inclusive day span from start date to end date.
func packageSessions(startDate, endDate string) (int, error) {
	start, err := time.Parse(models.DateLayout, startDate)
	if err != nil {
		return 0, err
	}
	if endDate == "" {
		return 1, nil
	}
	end, err := time.Parse(models.DateLayout, endDate)
	if err != nil {
		return 0, err
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days, nil
}
