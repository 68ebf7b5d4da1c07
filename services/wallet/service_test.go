package wallet

import (
	"context"
	"testing"

	"fitbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// stubWalletRepo mimics the Mongo repo's upsert and conditional-debit
// semantics in memory.
type stubWalletRepo struct {
	wallets map[string]*models.Wallet
}

func newStubWalletRepo() *stubWalletRepo {
	return &stubWalletRepo{wallets: map[string]*models.Wallet{}}
}

func (r *stubWalletRepo) Get(_ context.Context, trainerID string) (*models.Wallet, error) {
	w, ok := r.wallets[trainerID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *w
	return &cp, nil
}

func (r *stubWalletRepo) Credit(_ context.Context, trainerID string, txn models.Transaction) (*models.Wallet, error) {
	w, ok := r.wallets[trainerID]
	if !ok {
		w = &models.Wallet{TrainerID: trainerID}
		r.wallets[trainerID] = w
	}
	if txn.BookingID != "" {
		for _, prev := range w.Transactions {
			if prev.Type == models.TransactionCredit && prev.BookingID == txn.BookingID {
				cp := *w
				return &cp, nil
			}
		}
	}
	w.Balance += txn.Amount
	w.Transactions = append(w.Transactions, txn)
	cp := *w
	return &cp, nil
}

func (r *stubWalletRepo) Debit(_ context.Context, trainerID string, txn models.Transaction) (*models.Wallet, error) {
	w, ok := r.wallets[trainerID]
	if !ok || w.Balance < txn.Amount {
		return nil, mongo.ErrNoDocuments
	}
	w.Balance -= txn.Amount
	w.Transactions = append(w.Transactions, txn)
	cp := *w
	return &cp, nil
}

func (r *stubWalletRepo) EnsureIndexes() error { return nil }

func TestCreditPaysTrainerShare(t *testing.T) {
	repo := newStubWalletRepo()
	svc := NewDefaultWalletService(repo, zap.NewNop())

	w, err := svc.Credit(context.Background(), "trainer-1", 100, "booking-1")
	require.NoError(t, err)

	assert.InDelta(t, 90, w.Balance, 1e-9)
	require.Len(t, w.Transactions, 1)
	txn := w.Transactions[0]
	assert.Equal(t, models.TransactionCredit, txn.Type)
	assert.Equal(t, "booking-1", txn.BookingID)
	assert.InDelta(t, 90, txn.Amount, 1e-9)
	assert.Equal(t, "txn_booking-1", txn.TransactionID,
		"credit ids are derived from the booking so retries collide")
}

func TestCreditIsIdempotentPerBooking(t *testing.T) {
	repo := newStubWalletRepo()
	svc := NewDefaultWalletService(repo, zap.NewNop())

	_, err := svc.Credit(context.Background(), "trainer-1", 100, "booking-1")
	require.NoError(t, err)
	w, err := svc.Credit(context.Background(), "trainer-1", 100, "booking-1")
	require.NoError(t, err)

	assert.InDelta(t, 90, w.Balance, 1e-9)
	assert.Len(t, w.Transactions, 1, "a retried credit must not pay twice")

	w, err = svc.Credit(context.Background(), "trainer-1", 100, "booking-2")
	require.NoError(t, err)
	assert.InDelta(t, 180, w.Balance, 1e-9)
	assert.Len(t, w.Transactions, 2)
}

func TestCreditCreatesWalletOnFirstPayout(t *testing.T) {
	repo := newStubWalletRepo()
	svc := NewDefaultWalletService(repo, zap.NewNop())

	_, err := svc.Get(context.Background(), "trainer-1")
	assert.ErrorIs(t, err, ErrWalletNotFound)

	_, err = svc.Credit(context.Background(), "trainer-1", 50, "booking-1")
	require.NoError(t, err)

	w, err := svc.Get(context.Background(), "trainer-1")
	require.NoError(t, err)
	assert.InDelta(t, 45, w.Balance, 1e-9)
}

func TestWithdraw(t *testing.T) {
	repo := newStubWalletRepo()
	svc := NewDefaultWalletService(repo, zap.NewNop())
	_, err := svc.Credit(context.Background(), "trainer-1", 100, "booking-1")
	require.NoError(t, err)

	w, err := svc.Withdraw(context.Background(), "trainer-1", 40)
	require.NoError(t, err)
	assert.InDelta(t, 50, w.Balance, 1e-9)
	require.Len(t, w.Transactions, 2)
	assert.Equal(t, models.TransactionDebit, w.Transactions[1].Type)
}

func TestWithdrawInsufficientBalanceLeavesWalletUnchanged(t *testing.T) {
	repo := newStubWalletRepo()
	svc := NewDefaultWalletService(repo, zap.NewNop())
	_, err := svc.Credit(context.Background(), "trainer-1", 100, "booking-1")
	require.NoError(t, err)

	_, err = svc.Withdraw(context.Background(), "trainer-1", 91)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	w, err := svc.Get(context.Background(), "trainer-1")
	require.NoError(t, err)
	assert.InDelta(t, 90, w.Balance, 1e-9)
	assert.Len(t, w.Transactions, 1)
}

func TestWithdrawExactBalance(t *testing.T) {
	repo := newStubWalletRepo()
	svc := NewDefaultWalletService(repo, zap.NewNop())
	_, err := svc.Credit(context.Background(), "trainer-1", 100, "booking-1")
	require.NoError(t, err)

	w, err := svc.Withdraw(context.Background(), "trainer-1", 90)
	require.NoError(t, err)
	assert.InDelta(t, 0, w.Balance, 1e-9)
}

func TestWithdrawFromMissingWallet(t *testing.T) {
	svc := NewDefaultWalletService(newStubWalletRepo(), zap.NewNop())

	_, err := svc.Withdraw(context.Background(), "ghost", 10)
	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestWithdrawRejectsNonPositiveAmount(t *testing.T) {
	svc := NewDefaultWalletService(newStubWalletRepo(), zap.NewNop())

	_, err := svc.Withdraw(context.Background(), "trainer-1", 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = svc.Withdraw(context.Background(), "trainer-1", -5)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
