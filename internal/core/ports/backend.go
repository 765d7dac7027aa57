package ports

import (
	"context"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
)

type CreateReservationRequest struct {
	Reserveur       domain.ID `json:"reserveur"`
	EvenementID     domain.ID `json:"evenement_id"`
	ReservationDate string    `json:"reservation_date"`
	IdempotencyKey  string    `json:"-"`
}

type EventAPI interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, eventID domain.ID) (*domain.Event, error)
	SearchEvents(ctx context.Context, query string) ([]domain.Event, error)
	ListEventsNotCreatedBy(ctx context.Context, userID domain.ID) ([]domain.Event, error)
	ListEventsCreatedBy(ctx context.Context, userID domain.ID) ([]domain.Event, error)
	GetEventStatistics(ctx context.Context, eventID domain.ID) (*domain.EventStatistics, error)
	ListEventReservations(ctx context.Context, eventID domain.ID) ([]domain.Attendee, error)
}

type ReservationAPI interface {
	// CreateReservation returns a nil reservation when the backend
	// acknowledged the write without echoing the record.
	CreateReservation(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error)
	DeleteReservation(ctx context.Context, reservationID domain.ID) error
	ListUserReservations(ctx context.Context, userID domain.ID) ([]domain.Reservation, error)
}

type PaymentIntentAPI interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency, idempotencyKey string) (*domain.PaymentIntent, error)
}

type SessionProvider interface {
	Login(ctx context.Context, email, password string) error
	CurrentUser(ctx context.Context) (*domain.User, error)
}
