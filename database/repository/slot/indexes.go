package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the slots collection.
func (r *MongoSlotRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: all slots of one trainer.
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}, {Key: "startDate", Value: 1}},
			Options: options.Index().SetName("trainer_start_date_idx"),
		},
		// Expired-slot sweep.
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "startDate", Value: 1}},
			Options: options.Index().SetName("status_start_date_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create slot indexes: %w", err)
	}
	return nil
}
