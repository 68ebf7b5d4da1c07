package slotRepo

import (
	"context"

	"fitbook/models"
)

// Repository owns trainer availability slots.
type Repository interface {
	Insert(ctx context.Context, slot *models.Slot) error
	InsertMany(ctx context.Context, slots []models.Slot) ([]models.Slot, error)
	GetByID(ctx context.Context, slotID string) (*models.Slot, error)
	GetByTrainerID(ctx context.Context, trainerID string) ([]models.Slot, error)
	Delete(ctx context.Context, slotID string) error
	// DeleteExpired removes slots that never left Pending and whose start date
	// is strictly before asOfDate ("2006-01-02"). Returns the number deleted.
	DeleteExpired(ctx context.Context, asOfDate string) (int64, error)
	SetBooked(ctx context.Context, slotID string) error
	SetStatus(ctx context.Context, slotID, status string) error
	// IncrementCompletedSessions bumps the completed-session counter only if it
	// still equals prev, so a retried completion cannot double-advance it.
	// Reports whether the increment was applied.
	IncrementCompletedSessions(ctx context.Context, slotID string, prev int) (bool, error)
	EnsureIndexes() error
}
