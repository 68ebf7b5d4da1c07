package notificationRepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"fitbook/database"
	"fitbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNotificationRepo implements Repository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new instance of MongoNotificationRepo.
func NewMongoNotificationRepo() *MongoNotificationRepo {
	return &MongoNotificationRepo{coll: database.DB().Collection("notifications")}
}

func (r *MongoNotificationRepo) Append(ctx context.Context, receiverID string, entry models.NotificationEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	// The upsert derives receiverId from the equality filter on first insert.
	filter := bson.M{"receiverId": receiverID}
	update := bson.M{"$push": bson.M{"notifications": entry}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error appending notification for receiver %s: %w", receiverID, err)
	}
	return nil
}

func (r *MongoNotificationRepo) ListByReceiver(ctx context.Context, receiverID string) ([]models.NotificationEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.NotificationList
	if err := r.coll.FindOne(ctx, bson.M{"receiverId": receiverID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching notifications for receiver %s: %w", receiverID, err)
	}

	sort.Slice(doc.Notifications, func(i, j int) bool {
		return doc.Notifications[i].CreatedAt.After(doc.Notifications[j].CreatedAt)
	})
	return doc.Notifications, nil
}

func (r *MongoNotificationRepo) Clear(ctx context.Context, receiverID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"receiverId": receiverID}); err != nil {
		return fmt.Errorf("error clearing notifications for receiver %s: %w", receiverID, err)
	}
	return nil
}
