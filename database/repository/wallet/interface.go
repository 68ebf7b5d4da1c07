package walletRepo

import (
	"context"

	"fitbook/models"
)

// Repository owns trainer wallets. Credit upserts so the wallet is created
// lazily on first payout; Debit is conditional on sufficient balance so the
// check and the decrement are a single storage operation.
type Repository interface {
	Get(ctx context.Context, trainerID string) (*models.Wallet, error)
	// Credit applies at most once per (txn.BookingID, credit): a wallet that
	// already holds a credit for the booking is returned unchanged.
	Credit(ctx context.Context, trainerID string, txn models.Transaction) (*models.Wallet, error)
	// Debit applies only when balance >= txn.Amount; returns ErrNoDocuments
	// from the driver when the condition does not match.
	Debit(ctx context.Context, trainerID string, txn models.Transaction) (*models.Wallet, error)
	EnsureIndexes() error
}
