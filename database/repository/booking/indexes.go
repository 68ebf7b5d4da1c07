package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection. The
// unique (slotId, userId) index is what makes booking finalization idempotent:
// a second insert for the same pair fails with a duplicate-key error and the
// caller reads the existing record instead.
func (r *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "slotId", Value: 1}, {Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_slot_user"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "bookingDate", Value: -1}},
			Options: options.Index().SetName("user_booking_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}, {Key: "bookingDate", Value: -1}},
			Options: options.Index().SetName("trainer_booking_date_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
