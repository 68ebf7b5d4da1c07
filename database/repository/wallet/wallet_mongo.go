package walletRepo

import (
	"context"
	"fmt"
	"time"

	"fitbook/database"
	"fitbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoWalletRepo implements Repository using MongoDB.
type MongoWalletRepo struct {
	coll *mongo.Collection
}

// NewMongoWalletRepo constructs a new instance of MongoWalletRepo.
func NewMongoWalletRepo() *MongoWalletRepo {
	return &MongoWalletRepo{coll: database.DB().Collection("wallets")}
}

func (r *MongoWalletRepo) Get(ctx context.Context, trainerID string) (*models.Wallet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var wallet models.Wallet
	if err := r.coll.FindOne(ctx, bson.M{"trainerId": trainerID}).Decode(&wallet); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("error fetching wallet for trainer %s: %w", trainerID, err)
	}
	return &wallet, nil
}

func (r *MongoWalletRepo) Credit(ctx context.Context, trainerID string, txn models.Transaction) (*models.Wallet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	// The filter only matches a wallet that does not yet hold a credit for
	// this booking. A retried credit then misses the stored wallet, the
	// upsert collides with the unique trainerId index, and the duplicate-key
	// error tells us the payout already landed.
	filter := bson.M{"trainerId": trainerID}
	if txn.BookingID != "" {
		filter["transactions"] = bson.M{"$not": bson.M{"$elemMatch": bson.M{
			"bookingId":       txn.BookingID,
			"transactionType": models.TransactionCredit,
		}}}
	}
	update := bson.M{
		"$inc":         bson.M{"balance": txn.Amount},
		"$push":        bson.M{"transactions": txn},
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var wallet models.Wallet
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&wallet); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return r.Get(ctx, trainerID)
		}
		return nil, fmt.Errorf("error crediting wallet for trainer %s: %w", trainerID, err)
	}
	return &wallet, nil
}

// Debit decrements the balance and appends the transaction in one conditional
// update, so concurrent withdrawals cannot drive the balance negative.
func (r *MongoWalletRepo) Debit(ctx context.Context, trainerID string, txn models.Transaction) (*models.Wallet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"trainerId": trainerID, "balance": bson.M{"$gte": txn.Amount}}
	update := bson.M{
		"$inc":  bson.M{"balance": -txn.Amount},
		"$push": bson.M{"transactions": txn},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var wallet models.Wallet
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&wallet); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("error debiting wallet for trainer %s: %w", trainerID, err)
	}
	return &wallet, nil
}

// EnsureIndexes creates the necessary indexes on the wallets collection.
func (r *MongoWalletRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_trainer"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create wallet indexes: %w", err)
	}
	return nil
}
