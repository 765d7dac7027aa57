package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
	"github.com/srgjo27/ticketing_client/internal/core/ports"
)

type reservationEnvelope struct {
	Message     string          `json:"message"`
	Reservation *reservationDTO `json:"reservation"`
}

type reservationsEnvelope struct {
	Reservations []reservationDTO `json:"reservations"`
}

func (c *Client) CreateReservation(ctx context.Context, req ports.CreateReservationRequest) (*domain.Reservation, error) {
	var envelope reservationEnvelope
	err := c.do(ctx, call{
		operation:      "create_reservation",
		method:         http.MethodPost,
		path:           "/reservations",
		body:           req,
		idempotencyKey: req.IdempotencyKey,
	}, &envelope)
	if err != nil {
		return nil, err
	}

	if envelope.Reservation == nil || envelope.Reservation.ID.IsZero() {
		return nil, nil
	}

	reservation := envelope.Reservation.toDomain()
	return &reservation, nil
}

func (c *Client) DeleteReservation(ctx context.Context, reservationID domain.ID) error {
	return c.do(ctx, call{
		operation: "delete_reservation",
		method:    http.MethodDelete,
		path:      "/reservations/" + url.PathEscape(reservationID.String()),
		notFound:  domain.ErrReservationNotFound,
	}, nil)
}

func (c *Client) ListUserReservations(ctx context.Context, userID domain.ID) ([]domain.Reservation, error) {
	var envelope reservationsEnvelope
	err := c.do(ctx, call{
		operation: "list_user_reservations",
		method:    http.MethodGet,
		path:      "/mes-reservations/" + url.PathEscape(userID.String()),
	}, &envelope)
	if err != nil {
		return nil, err
	}

	reservations := make([]domain.Reservation, 0, len(envelope.Reservations))
	for _, r := range envelope.Reservations {
		reservation := r.toDomain()
		if reservation.UserID.IsZero() {
			reservation.UserID = userID
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}
