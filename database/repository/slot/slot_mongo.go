package slotRepo

import (
	"context"
	"fmt"
	"time"

	"fitbook/database"
	"fitbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSlotRepo implements Repository using MongoDB.
type MongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new instance of MongoSlotRepo.
func NewMongoSlotRepo() *MongoSlotRepo {
	return &MongoSlotRepo{coll: database.DB().Collection("slots")}
}

func (r *MongoSlotRepo) Insert(ctx context.Context, slot *models.Slot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	now := time.Now()
	slot.CreatedAt = now
	slot.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("error creating slot: %w", err)
	}
	return nil
}

func (r *MongoSlotRepo) InsertMany(ctx context.Context, slots []models.Slot) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, len(slots))
	for i := range slots {
		if slots[i].ID == "" {
			slots[i].ID = uuid.New().String()
		}
		slots[i].CreatedAt = now
		slots[i].UpdatedAt = now
		docs[i] = slots[i]
	}

	ordered := true
	if _, err := r.coll.InsertMany(ctx, docs, &options.InsertManyOptions{Ordered: &ordered}); err != nil {
		return nil, fmt.Errorf("error creating slots: %w", err)
	}
	return slots, nil
}

func (r *MongoSlotRepo) GetByID(ctx context.Context, slotID string) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.Slot
	if err := r.coll.FindOne(ctx, bson.M{"id": slotID}).Decode(&slot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("error fetching slot %s: %w", slotID, err)
	}
	return &slot, nil
}

func (r *MongoSlotRepo) GetByTrainerID(ctx context.Context, trainerID string) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"trainerId": trainerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching slots for trainer %s: %w", trainerID, err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, nil
}

func (r *MongoSlotRepo) Delete(ctx context.Context, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": slotID})
	if err != nil {
		return fmt.Errorf("error deleting slot %s: %w", slotID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoSlotRepo) DeleteExpired(ctx context.Context, asOfDate string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"startDate": bson.M{"$lt": asOfDate},
		"status":    models.SlotStatusPending,
	}
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired slots: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *MongoSlotRepo) SetBooked(ctx context.Context, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isBooked": true, "updatedAt": time.Now()}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": slotID}, update); err != nil {
		return fmt.Errorf("error marking slot %s booked: %w", slotID, err)
	}
	return nil
}

func (r *MongoSlotRepo) SetStatus(ctx context.Context, slotID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": slotID}, update); err != nil {
		return fmt.Errorf("error updating status of slot %s: %w", slotID, err)
	}
	return nil
}

// IncrementCompletedSessions is conditional on the counter's current value so
// concurrent or retried completion calls advance it at most once each.
func (r *MongoSlotRepo) IncrementCompletedSessions(ctx context.Context, slotID string, prev int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": slotID}
	if prev == 0 {
		// A fresh package slot may not carry the field at all.
		filter["$or"] = bson.A{
			bson.M{"completedSessions": 0},
			bson.M{"completedSessions": bson.M{"$exists": false}},
		}
	} else {
		filter["completedSessions"] = prev
	}
	update := bson.M{
		"$set": bson.M{"completedSessions": prev + 1, "updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("error incrementing completed sessions for slot %s: %w", slotID, err)
	}
	return res.ModifiedCount > 0, nil
}
