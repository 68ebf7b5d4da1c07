package bookingRepo

import (
	"context"
	"time"

	"fitbook/models"
)

// Repository owns booking records. Insert relies on a unique (slotId, userId)
// index; callers detect the duplicate with IsDuplicate and fall back to
// GetBySlotAndUser.
type Repository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetBySlotAndUser(ctx context.Context, slotID, userID string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListByTrainer(ctx context.Context, trainerID string) ([]models.Booking, error)
	// SetPaymentStatus transitions paymentStatus only when the booking is
	// currently in fromStatus. Reports whether the transition was applied.
	SetPaymentStatus(ctx context.Context, bookingID, fromStatus, toStatus string) (bool, error)
	SetPrescription(ctx context.Context, bookingID, prescription string, completedAt time.Time) (*models.Booking, error)
	UpdatePrescriptionText(ctx context.Context, bookingID, prescription string) error
	EnsureIndexes() error
}

// IsDuplicate reports whether err came from the unique (slotId, userId) index.
func IsDuplicate(err error) bool {
	return isDuplicateKey(err)
}
