package ports

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/srgjo27/ticketing_client/internal/core/domain"
)

// PaymentConfirmer is the payment SDK's confirmation call. A nil error
// means the charge succeeded.
type PaymentConfirmer interface {
	Confirm(ctx context.Context, clientSecret string, billing domain.BillingDetails) error
}

// PaymentGateway charges an amount expressed in major currency units.
// Transport problems come back as errors, declines as a Failed outcome.
type PaymentGateway interface {
	Charge(ctx context.Context, session domain.Session, amount decimal.Decimal) (domain.PaymentOutcome, error)
}
