package ports

import (
	"context"
	"time"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
)

type ReservationRepository interface {
	// Save upserts the record. A stored Cancelled record is never overwritten.
	Save(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, reservationID domain.ID) (*domain.Reservation, error)
	CancelledIDs(ctx context.Context, userID domain.ID) (map[domain.ID]struct{}, error)
	DeleteCancelledBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
