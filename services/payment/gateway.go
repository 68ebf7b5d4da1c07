package payment

import "context"

// CheckoutRequest describes one hosted checkout to create.
type CheckoutRequest struct {
	AmountCents int64
	Currency    string
	Name        string
	Description string
	SuccessURL  string
	CancelURL   string
}

// Checkout is the provider-side view of a checkout session.
type Checkout struct {
	ID               string
	PaymentReference string // provider payment intent id, empty until paid
}

// Gateway abstracts the payment provider so booking logic stays testable.
type Gateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error)
	RetrieveCheckout(ctx context.Context, checkoutID string) (*Checkout, error)
	// Refund refunds amount (minor units) against a payment reference and
	// reports whether the provider accepted it.
	Refund(ctx context.Context, paymentReference string, amount int64) (bool, error)
}
