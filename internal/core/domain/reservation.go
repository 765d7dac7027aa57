package domain

import (
	"fmt"
	"time"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCancelled ReservationStatus = "CANCELLED"
)

// Reservation binds one user to one event. ID stays empty until the
// backend acknowledges the create request.
type Reservation struct {
	ID              ID
	UserID          ID
	EventID         ID
	ReservationDate string
	Status          ReservationStatus
	UpdatedAt       time.Time

	// Event summary columns returned by the "my reservations" listing.
	Title        string
	Date         time.Time
	Localisation string
	Description  string
	Image        string
}

// NewPendingReservation is the state held while a paid reservation waits
// for its payment to settle.
func NewPendingReservation(userID, eventID ID, day string) *Reservation {
	return &Reservation{
		UserID:          userID,
		EventID:         eventID,
		ReservationDate: day,
		Status:          ReservationPending,
	}
}

func (r *Reservation) IsConfirmed() bool {
	return r.Status == ReservationConfirmed
}

func (r *Reservation) IsCancelled() bool {
	return r.Status == ReservationCancelled
}

// Confirm moves a new or pending reservation to Confirmed.
func (r *Reservation) Confirm(id ID) error {
	switch r.Status {
	case "", ReservationPending:
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, ReservationConfirmed)
	}
	r.ID = id
	r.Status = ReservationConfirmed
	r.UpdatedAt = time.Now()
	return nil
}

// Cancel is only legal from Confirmed; Cancelled is terminal.
func (r *Reservation) Cancel() error {
	if r.Status != ReservationConfirmed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, ReservationCancelled)
	}
	r.Status = ReservationCancelled
	r.UpdatedAt = time.Now()
	return nil
}
