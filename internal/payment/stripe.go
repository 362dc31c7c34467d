package payment

import (
	"context"
	"math"

	apperrors "inventory-service/pkg/errors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const (
	paymentMethodCard = "card"

	errCreateIntentFailed = "failed to create payment intent"
)

// Client wraps the processor behind the one call this service makes.
type Client struct {
	api      *client.API
	currency string
}

func NewClient(secretKey, currency string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &Client{
		api:      api,
		currency: currency,
	}
}

// CreateIntent requests a card payment intent for a decimal price and
// returns the client secret the SPA confirms with. Upstream failures are
// surfaced once, not retried.
func (c *Client) CreateIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(c.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{paymentMethodCard}),
	}

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", apperrors.PaymentProvider(errCreateIntentFailed, err)
	}

	return intent.ClientSecret, nil
}

// MinorUnits converts a decimal currency amount to integer minor units.
// Rounding, not truncation: 19.99 dollars is exactly 1999 cents.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
