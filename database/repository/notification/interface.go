package notificationRepo

import (
	"context"

	"fitbook/models"
)

// Repository is the notification sink: one document per receiver holding an
// append-only list of entries.
type Repository interface {
	Append(ctx context.Context, receiverID string, entry models.NotificationEntry) error
	// ListByReceiver returns the receiver's notifications newest-first.
	ListByReceiver(ctx context.Context, receiverID string) ([]models.NotificationEntry, error)
	Clear(ctx context.Context, receiverID string) error
}
