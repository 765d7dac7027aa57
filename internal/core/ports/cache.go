package ports

import (
	"context"
	"time"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
)

type EventCache interface {
	Get(ctx context.Context, eventID domain.ID) (*domain.Event, error)
	Set(ctx context.Context, event *domain.Event, ttl time.Duration) error
	Invalidate(ctx context.Context, eventID domain.ID) error
}

// ReservationGuard allows at most one in-flight reservation per key.
type ReservationGuard interface {
	Acquire(ctx context.Context, key string, token string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string, token string) error
}
