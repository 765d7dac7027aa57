package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
	"github.com/srgjo27/ticketing_client/internal/core/ports"
)

// CatalogService is the read-only view over backend events. Concurrent
// fetches of the same event share one backend call.
type CatalogService struct {
	api    ports.EventAPI
	cache  ports.EventCache
	ttl    time.Duration
	group  singleflight.Group
	logger *logrus.Logger
}

func NewCatalogService(api ports.EventAPI, cache ports.EventCache, ttl time.Duration, logger *logrus.Logger) *CatalogService {
	return &CatalogService{
		api:    api,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *CatalogService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.api.ListEvents(ctx)
}

// ListForUser returns the events the user did not create.
func (s *CatalogService) ListForUser(ctx context.Context, session domain.Session) ([]domain.Event, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}

	return s.api.ListEventsNotCreatedBy(ctx, session.UserID())
}

// ListOwn returns the events the user created.
func (s *CatalogService) ListOwn(ctx context.Context, session domain.Session) ([]domain.Event, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}

	return s.api.ListEventsCreatedBy(ctx, session.UserID())
}

func (s *CatalogService) Statistics(ctx context.Context, session domain.Session, eventID domain.ID) (*domain.EventStatistics, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}
	if eventID.IsZero() {
		return nil, domain.ErrEventNotFound
	}

	stats, err := s.api.GetEventStatistics(ctx, eventID)
	if err != nil {
		return nil, err
	}
	stats.EventID = eventID
	return stats, nil
}

// Attendees lists who reserved an event. The backend only answers for the
// event's creator.
func (s *CatalogService) Attendees(ctx context.Context, session domain.Session, eventID domain.ID) ([]domain.Attendee, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}
	if eventID.IsZero() {
		return nil, domain.ErrEventNotFound
	}

	return s.api.ListEventReservations(ctx, eventID)
}

func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Event, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Event{}, nil
	}

	return s.api.SearchEvents(ctx, query)
}

// GetEvent serves from cache when possible.
func (s *CatalogService) GetEvent(ctx context.Context, eventID domain.ID) (*domain.Event, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, eventID)
		if err != nil {
			s.logger.WithError(err).WithField("event_id", eventID).Warn("event cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	return s.RefreshEvent(ctx, eventID)
}

// RefreshEvent always goes to the backend and repopulates the cache.
func (s *CatalogService) RefreshEvent(ctx context.Context, eventID domain.ID) (*domain.Event, error) {
	if eventID.IsZero() {
		return nil, domain.ErrEventNotFound
	}

	// The shared call must outlive the caller that happened to start it.
	v, err, _ := s.group.Do(eventID.String(), func() (interface{}, error) {
		return s.api.GetEvent(context.WithoutCancel(ctx), eventID)
	})
	if err != nil {
		return nil, err
	}

	event := *v.(*domain.Event)

	if s.cache != nil {
		if err := s.cache.Set(ctx, &event, s.ttl); err != nil {
			s.logger.WithError(err).WithField("event_id", eventID).Warn("event cache write failed")
		}
	}

	return &event, nil
}

func (s *CatalogService) Invalidate(ctx context.Context, eventID domain.ID) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Invalidate(ctx, eventID); err != nil {
		s.logger.WithError(err).WithField("event_id", eventID).Warn("event cache invalidation failed")
	}
}
