package booking

import (
	"context"
	"fmt"

	"egarage/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeGateway implements PaymentGateway with Stripe PaymentIntents.
type StripeGateway struct {
	Logger *zap.Logger
}

// NewStripeGateway constructs a StripeGateway. The API key is installed
// globally (stripe.Key) at startup.
func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	return &StripeGateway{Logger: logger}
}

// CreateIntent opens a PaymentIntent for the given amount. Amounts are in
// major currency units; Stripe takes minor units.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount float64, currency string, metadata map[string]string) (*models.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		g.Logger.Error("failed to create payment intent", zap.Error(err))
		return nil, fmt.Errorf("failed to open payment session: %w", err)
	}

	g.Logger.Info("payment intent created",
		zap.String("intent", pi.ID),
		zap.Float64("amount", amount),
		zap.String("currency", currency))

	return &models.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       amount,
		Currency:     currency,
	}, nil
}
