package services_test

import (
	"io"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
	"github.com/srgjo27/ticketing_client/internal/core/ports/mocks"
	"github.com/srgjo27/ticketing_client/internal/core/services"
)

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testSession() domain.Session {
	return domain.NewSession(domain.User{ID: "7", Username: "awa", Email: "awa@example.com"})
}

func freeEvent(id domain.ID, seats int) *domain.Event {
	return &domain.Event{
		ID:           id,
		Title:        "Open air concert",
		Type:         domain.EventFree,
		SeatsTotal:   seats,
		Privacy:      domain.PrivacyPublic,
		Date:         fixedNow.Add(30 * 24 * time.Hour),
		Localisation: "Dakar",
		Description:  "Live music",
	}
}

func paidEvent(id domain.ID, amount string) *domain.Event {
	event := freeEvent(id, 100)
	event.Type = domain.EventPaid
	event.Amount = decimal.RequireFromString(amount)
	return event
}

type reservationDeps struct {
	events   *mocks.EventAPI
	api      *mocks.ReservationAPI
	payments *mocks.PaymentGateway
	repo     *mocks.ReservationRepository
	guard    *mocks.ReservationGuard
	catalog  *services.CatalogService
	service  *services.ReservationService
}

func newReservationDeps(t *testing.T) *reservationDeps {
	d := &reservationDeps{
		events:   mocks.NewEventAPI(t),
		api:      mocks.NewReservationAPI(t),
		payments: mocks.NewPaymentGateway(t),
		repo:     mocks.NewReservationRepository(t),
		guard:    mocks.NewReservationGuard(t),
	}

	logger := quietLogger()
	d.catalog = services.NewCatalogService(d.events, nil, time.Minute, logger)
	d.service = services.NewReservationService(d.catalog, d.api, d.payments, d.repo, d.guard, time.Minute, logger).
		WithClock(func() time.Time { return fixedNow })

	return d
}

// reservationCount reads ticketing_reservations_total from the default
// registry for one label pair.
func reservationCount(t *testing.T, eventType, result string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != "ticketing_reservations_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["event_type"] == eventType && labels["result"] == result {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}
