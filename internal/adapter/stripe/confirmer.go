package stripe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
)

// Confirmer confirms backend-created payment intents with Stripe. Any
// returned error is a decline whose message is shown to the user.
type Confirmer struct {
	sc            *client.API
	paymentMethod string
	logger        *logrus.Logger
}

// NewConfirmer builds a Confirmer. backends may be nil to use Stripe's
// public API.
func NewConfirmer(secretKey, paymentMethod string, backends *stripego.Backends, logger *logrus.Logger) *Confirmer {
	sc := &client.API{}
	sc.Init(secretKey, backends)

	return &Confirmer{
		sc:            sc,
		paymentMethod: paymentMethod,
		logger:        logger,
	}
}

// intentID extracts "pi_123" from a client secret "pi_123_secret_abc".
func intentID(clientSecret string) (string, error) {
	id, _, found := strings.Cut(clientSecret, "_secret_")
	if !found || id == "" {
		return "", errors.New("malformed payment client secret")
	}
	return id, nil
}

func (c *Confirmer) Confirm(ctx context.Context, clientSecret string, billing domain.BillingDetails) error {
	id, err := intentID(clientSecret)
	if err != nil {
		return err
	}

	params := &stripego.PaymentIntentConfirmParams{
		PaymentMethod: stripego.String(c.paymentMethod),
	}
	if billing.Email != "" {
		params.ReceiptEmail = stripego.String(billing.Email)
	}
	params.Context = ctx

	pi, err := c.sc.PaymentIntents.Confirm(id, params)
	if err != nil {
		var stripeErr *stripego.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			return errors.New(stripeErr.Msg)
		}
		return err
	}

	if pi.Status != stripego.PaymentIntentStatusSucceeded {
		c.logger.WithFields(logrus.Fields{
			"payment_intent": pi.ID,
			"status":         pi.Status,
		}).Warn("payment intent not settled after confirmation")
		return fmt.Errorf("payment is %s", strings.ReplaceAll(string(pi.Status), "_", " "))
	}

	return nil
}
