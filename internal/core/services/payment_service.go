package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
	"github.com/srgjo27/ticketing_client/internal/core/ports"
	"github.com/srgjo27/ticketing_client/internal/platform/metrics"
)

type PaymentService struct {
	api       ports.PaymentIntentAPI
	confirmer ports.PaymentConfirmer
	currency  string
	logger    *logrus.Logger
}

func NewPaymentService(api ports.PaymentIntentAPI, confirmer ports.PaymentConfirmer, currency string, logger *logrus.Logger) *PaymentService {
	return &PaymentService{
		api:       api,
		confirmer: confirmer,
		currency:  currency,
		logger:    logger,
	}
}

// ToMinorUnits converts major currency units into cents. This is the only
// place in the codebase where that conversion happens.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	if amount.IsNegative() {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, amount.String())
	}

	return amount.Shift(2).Round(0).IntPart(), nil
}

// Charge requests a payment intent for amount and confirms it through the
// payment SDK. A declined confirmation is a Failed outcome, not an error.
func (s *PaymentService) Charge(ctx context.Context, session domain.Session, amount decimal.Decimal) (domain.PaymentOutcome, error) {
	unresolved := domain.PaymentOutcome{Result: domain.PaymentUnresolved}

	cents, err := ToMinorUnits(amount)
	if err != nil {
		return unresolved, err
	}

	log := s.logger.WithFields(logrus.Fields{
		"user_id":      session.UserID(),
		"amount_cents": cents,
		"currency":     s.currency,
	})

	intent, err := s.api.CreatePaymentIntent(ctx, cents, s.currency, uuid.NewString())
	if err != nil {
		metrics.TrackPayment(metrics.ResultFailure)
		log.WithError(err).Error("payment intent request failed")
		return unresolved, fmt.Errorf("create payment intent: %w", err)
	}

	if intent.ClientSecret == "" {
		metrics.TrackPayment(metrics.ResultFailure)
		return unresolved, fmt.Errorf("create payment intent: %w: empty client secret", domain.ErrTransport)
	}

	billing := domain.BillingDetails{
		Email: session.User.Email,
		Name:  session.User.Username,
	}

	if err := s.confirmer.Confirm(ctx, intent.ClientSecret, billing); err != nil {
		intent.Outcome = domain.Failed(err.Error())
		metrics.TrackPayment(metrics.ResultRejected)
		log.WithField("reason", err.Error()).Info("payment declined")
		return intent.Outcome, nil
	}

	intent.Outcome = domain.Succeeded()
	metrics.TrackPayment(metrics.ResultSuccess)
	log.Info("payment succeeded")

	return intent.Outcome, nil
}
