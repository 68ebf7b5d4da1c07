package wallet

import (
	"context"
	"errors"
	"time"

	walletRepo "fitbook/database/repository/wallet"
	"fitbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// trainerShare is the fraction of a booking amount paid out to the trainer;
// the remainder is the platform fee.
const trainerShare = 0.9

var (
	// ErrWalletNotFound is returned when a trainer has no wallet yet.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrInsufficientBalance is returned when a withdrawal exceeds the balance.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	// ErrInvalidAmount is returned for zero or negative withdrawal amounts.
	ErrInvalidAmount = errors.New("withdrawal amount must be positive")
)

// Service manages trainer payout wallets.
type Service interface {
	// Credit pays the trainer their share of a completed booking. It is
	// idempotent per booking, so callers may safely retry it.
	Credit(ctx context.Context, trainerID string, bookingAmount float64, bookingID string) (*models.Wallet, error)
	Withdraw(ctx context.Context, trainerID string, amount float64) (*models.Wallet, error)
	Get(ctx context.Context, trainerID string) (*models.Wallet, error)
}

// DefaultWalletService is the production implementation of Service.
type DefaultWalletService struct {
	Repo   walletRepo.Repository
	Logger *zap.Logger
}

// NewDefaultWalletService constructs a wallet service.
func NewDefaultWalletService(repo walletRepo.Repository, logger *zap.Logger) *DefaultWalletService {
	return &DefaultWalletService{Repo: repo, Logger: logger}
}

func (s *DefaultWalletService) Credit(ctx context.Context, trainerID string, bookingAmount float64, bookingID string) (*models.Wallet, error) {
	// The transaction id is derived from the booking so retries produce the
	// same ledger entry; the repo drops the duplicate.
	txn := models.Transaction{
		Amount:        bookingAmount * trainerShare,
		TransactionID: "txn_" + bookingID,
		Type:          models.TransactionCredit,
		BookingID:     bookingID,
		Date:          time.Now(),
	}

	w, err := s.Repo.Credit(ctx, trainerID, txn)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("wallet credited",
		zap.String("trainerId", trainerID),
		zap.String("bookingId", bookingID),
		zap.Float64("amount", txn.Amount))
	return w, nil
}

func (s *DefaultWalletService) Withdraw(ctx context.Context, trainerID string, amount float64) (*models.Wallet, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	txn := models.Transaction{
		Amount:        amount,
		TransactionID: "txn_" + uuid.New().String(),
		Type:          models.TransactionDebit,
		Date:          time.Now(),
	}

	w, err := s.Repo.Debit(ctx, trainerID, txn)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Distinguish a missing wallet from a short balance.
			if _, getErr := s.Repo.Get(ctx, trainerID); getErr == mongo.ErrNoDocuments {
				return nil, ErrWalletNotFound
			}
			return nil, ErrInsufficientBalance
		}
		return nil, err
	}
	s.Logger.Info("wallet debited",
		zap.String("trainerId", trainerID),
		zap.Float64("amount", amount))
	return w, nil
}

func (s *DefaultWalletService) Get(ctx context.Context, trainerID string) (*models.Wallet, error) {
	w, err := s.Repo.Get(ctx, trainerID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	return w, nil
}
