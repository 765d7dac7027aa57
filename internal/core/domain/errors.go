package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTransport             = errors.New("backend unreachable")
	ErrSeatsExhausted        = errors.New("no seats left for this event")
	ErrAlreadyReserved       = errors.New("event already reserved by this user")
	ErrPaymentFailed         = errors.New("payment failed")
	ErrExport                = errors.New("ticket export failed")
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrEventNotFound         = errors.New("event not found")
	ErrEventExpired          = errors.New("event is over")
	ErrUnauthenticated       = errors.New("not signed in")
	ErrReservationInProgress = errors.New("a reservation for this event is already in progress")
	ErrTicketUnavailable     = errors.New("ticket unavailable for this reservation")
	ErrInvalidTransition     = errors.New("invalid reservation transition")
	ErrInvalidAmount         = errors.New("invalid amount")
)

type PaymentFailedError struct {
	Reason string
}

func (e *PaymentFailedError) Error() string {
	return fmt.Sprintf("payment failed: %s", e.Reason)
}

func (e *PaymentFailedError) Is(target error) bool {
	return target == ErrPaymentFailed
}

// BackendError is a non-2xx response. Message is the backend's {message}
// verbatim; Kind is the classified sentinel.
type BackendError struct {
	StatusCode int
	Message    string
	Kind       error
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Kind != nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("backend responded with status %d", e.StatusCode)
}

func (e *BackendError) Unwrap() error {
	return e.Kind
}

// UserMessage renders any error coming out of the core as one
// human-readable line.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var backendErr *BackendError
	if errors.As(err, &backendErr) && backendErr.Message != "" {
		return backendErr.Message
	}

	var paymentErr *PaymentFailedError
	if errors.As(err, &paymentErr) {
		return "Payment failed: " + paymentErr.Reason
	}

	switch {
	case errors.Is(err, ErrTransport):
		return "The service is unreachable, please try again."
	case errors.Is(err, ErrSeatsExhausted):
		return "This event is full."
	case errors.Is(err, ErrAlreadyReserved):
		return "You already have a reservation for this event."
	case errors.Is(err, ErrReservationInProgress):
		return "Your reservation is already being processed."
	case errors.Is(err, ErrReservationNotFound):
		return "This reservation no longer exists."
	case errors.Is(err, ErrEventNotFound):
		return "This event does not exist."
	case errors.Is(err, ErrEventExpired):
		return "This event is over."
	case errors.Is(err, ErrUnauthenticated):
		return "Please sign in first."
	case errors.Is(err, ErrTicketUnavailable):
		return "No ticket is available for this reservation."
	case errors.Is(err, ErrExport):
		return "The ticket could not be exported, please try again."
	}

	return err.Error()
}
