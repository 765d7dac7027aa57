package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
)

type paymentIntentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent asks the backend for a payment intent. amountCents is
// already in minor units.
func (c *Client) CreatePaymentIntent(ctx context.Context, amountCents int64, currency, idempotencyKey string) (*domain.PaymentIntent, error) {
	if amountCents < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amountCents)
	}

	var resp paymentIntentResponse
	err := c.do(ctx, call{
		operation:      "create_payment_intent",
		method:         http.MethodPost,
		path:           "/create-payment-intent",
		body:           paymentIntentRequest{Amount: amountCents, Currency: currency},
		idempotencyKey: idempotencyKey,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &domain.PaymentIntent{
		ClientSecret: resp.ClientSecret,
		AmountCents:  amountCents,
		Currency:     currency,
		Outcome:      domain.PaymentOutcome{Result: domain.PaymentUnresolved},
	}, nil
}
