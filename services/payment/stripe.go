package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/refund"
	"go.uber.org/zap"
)

// StripeGateway implements Gateway against Stripe Checkout. The package-level
// stripe.Key must be set before use.
type StripeGateway struct {
	Logger *zap.Logger
}

// NewStripeGateway constructs a Stripe-backed gateway.
func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	return &StripeGateway{Logger: logger}
}

func (g *StripeGateway) CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error) {
	currency := req.Currency
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(req.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.Name),
						Description: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}
	g.Logger.Debug("checkout session created", zap.String("sessionId", s.ID))
	return &Checkout{ID: s.ID}, nil
}

func (g *StripeGateway) RetrieveCheckout(ctx context.Context, checkoutID string) (*Checkout, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := session.Get(checkoutID, params)
	if err != nil {
		return nil, fmt.Errorf("retrieving checkout session %s: %w", checkoutID, err)
	}

	co := &Checkout{ID: s.ID}
	if s.PaymentIntent != nil {
		co.PaymentReference = s.PaymentIntent.ID
	}
	return co, nil
}

func (g *StripeGateway) Refund(ctx context.Context, paymentReference string, amount int64) (bool, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentReference),
		Amount:        stripe.Int64(amount),
	}
	params.Context = ctx

	r, err := refund.New(params)
	if err != nil {
		return false, fmt.Errorf("refunding %s: %w", paymentReference, err)
	}
	ok := r.Status == stripe.RefundStatusSucceeded || r.Status == stripe.RefundStatusPending
	if !ok {
		g.Logger.Warn("refund not accepted",
			zap.String("paymentReference", paymentReference),
			zap.String("status", string(r.Status)))
	}
	return ok, nil
}
