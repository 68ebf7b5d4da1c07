package models

import "time"

// Wallet transaction types.
const (
	TransactionCredit = "credit"
	TransactionDebit  = "debit"
)

// Transaction is one append-only wallet ledger entry.
type Transaction struct {
	Amount        float64   `bson:"amount" json:"amount"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	Type          string    `bson:"transactionType" json:"transactionType"`
	BookingID     string    `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	Date          time.Time `bson:"date" json:"date"`
}

// Wallet holds a trainer's payout balance. The balance always equals the sum
// of credits minus the sum of debits in Transactions.
type Wallet struct {
	TrainerID    string        `bson:"trainerId" json:"trainerId"`
	Balance      float64       `bson:"balance" json:"balance"`
	Transactions []Transaction `bson:"transactions" json:"transactions"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}
