package trainerRepo

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

// Repository owns trainer accounts and the specialization catalogue.
type Repository interface {
	Create(ctx context.Context, trainer *models.Trainer) error
	GetByID(ctx context.Context, trainerID string) (*models.Trainer, error)
	GetByEmail(ctx context.Context, email string) (*models.Trainer, error)
	SetKycStatus(ctx context.Context, trainerID, status string, docs *models.KycDocs) error
	GetSpecializationByID(ctx context.Context, specializationID string) (*models.Specialization, error)
	ListSpecializations(ctx context.Context) ([]models.Specialization, error)
	EnsureIndexes() error
}

// MongoTrainerRepo implements Repository using MongoDB.
type MongoTrainerRepo struct {
	coll     *mongo.Collection
	specColl *mongo.Collection
}

// NewMongoTrainerRepo constructs a new instance of MongoTrainerRepo.
func NewMongoTrainerRepo() *MongoTrainerRepo {
	db := database.DB()
	return &MongoTrainerRepo{
		coll:     db.Collection("trainers"),
		specColl: db.Collection("specializations"),
	}
}

func (r *MongoTrainerRepo) Create(ctx context.Context, trainer *models.Trainer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if trainer.ID == "" {
		trainer.ID = uuid.New().String()
	}
	now := time.Now()
	trainer.CreatedAt = now
	trainer.UpdatedAt = now
	if trainer.KycStatus == "" {
		trainer.KycStatus = models.KycStatusPending
	}

	if _, err := r.coll.InsertOne(ctx, trainer); err != nil {
		return fmt.Errorf("error creating trainer: %w", err)
	}
	return nil
}

func (r *MongoTrainerRepo) GetByID(ctx context.Context, trainerID string) (*models.Trainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var trainer models.Trainer
	if err := r.coll.FindOne(ctx, bson.M{"id": trainerID}).Decode(&trainer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("error fetching trainer %s: %w", trainerID, err)
	}
	return &trainer, nil
}

func (r *MongoTrainerRepo) GetByEmail(ctx context.Context, email string) (*models.Trainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var trainer models.Trainer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&trainer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("error fetching trainer by email: %w", err)
	}
	return &trainer, nil
}

func (r *MongoTrainerRepo) SetKycStatus(ctx context.Context, trainerID, status string, docs *models.KycDocs) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"kycStatus": status, "updatedAt": time.Now()}
	if docs != nil {
		set["kycDocuments"] = docs
		if docs.ProfileImage != "" {
			set["profileImage"] = docs.ProfileImage
		}
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": trainerID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating KYC status of trainer %s: %w", trainerID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoTrainerRepo) GetSpecializationByID(ctx context.Context, specializationID string) (*models.Specialization, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var spec models.Specialization
	if err := r.specColl.FindOne(ctx, bson.M{"id": specializationID}).Decode(&spec); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("error fetching specialization %s: %w", specializationID, err)
	}
	return &spec, nil
}

func (r *MongoTrainerRepo) ListSpecializations(ctx context.Context) ([]models.Specialization, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.specColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching specializations: %w", err)
	}
	defer cursor.Close(ctx)

	var specs []models.Specialization
	if err := cursor.All(ctx, &specs); err != nil {
		return nil, fmt.Errorf("error decoding specializations: %w", err)
	}
	return specs, nil
}

// EnsureIndexes creates the necessary indexes on the trainers collection.
func (r *MongoTrainerRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_email"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create trainer indexes: %w", err)
	}
	return nil
}
