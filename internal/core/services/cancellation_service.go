package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
	"github.com/srgjo27/ticketing_client/internal/core/ports"
	"github.com/srgjo27/ticketing_client/internal/platform/metrics"
)

type CancellationService struct {
	api     ports.ReservationAPI
	repo    ports.ReservationRepository
	catalog *CatalogService
	logger  *logrus.Logger
}

func NewCancellationService(api ports.ReservationAPI, repo ports.ReservationRepository, catalog *CatalogService, logger *logrus.Logger) *CancellationService {
	return &CancellationService{
		api:     api,
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

// Cancel deletes the reservation on the backend, which releases the seat,
// then moves the local record from Confirmed to Cancelled so the id never
// resurfaces. Only reservations the user holds can be cancelled.
func (s *CancellationService) Cancel(ctx context.Context, session domain.Session, reservationID domain.ID) error {
	if err := session.Validate(); err != nil {
		return err
	}

	if reservationID.IsZero() {
		return domain.ErrReservationNotFound
	}

	log := s.logger.WithFields(logrus.Fields{
		"user_id":        session.UserID(),
		"reservation_id": reservationID,
	})

	reservation, err := s.held(ctx, session.UserID(), reservationID, log)
	if err != nil {
		result := metrics.ResultFailure
		if errors.Is(err, domain.ErrReservationNotFound) {
			result = metrics.ResultRejected
		}
		metrics.TrackCancellation(result)
		return fmt.Errorf("cancel reservation %s: %w", reservationID, err)
	}

	if !reservation.IsConfirmed() {
		metrics.TrackCancellation(metrics.ResultRejected)
		return fmt.Errorf("cancel reservation %s: %w: %s", reservationID, domain.ErrInvalidTransition, reservation.Status)
	}

	err = s.api.DeleteReservation(ctx, reservationID)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			metrics.TrackCancellation(metrics.ResultRejected)
			s.markCancelled(ctx, reservation, log)
			return fmt.Errorf("cancel reservation %s: %w", reservationID, err)
		}

		metrics.TrackCancellation(metrics.ResultFailure)
		return fmt.Errorf("cancel reservation %s: %w", reservationID, err)
	}

	s.markCancelled(ctx, reservation, log)

	metrics.TrackCancellation(metrics.ResultSuccess)
	log.Info("reservation cancelled")

	return nil
}

// held returns the user's reservation, from the local store when it is
// known there and from the backend listing otherwise.
func (s *CancellationService) held(ctx context.Context, userID, reservationID domain.ID, log *logrus.Entry) (*domain.Reservation, error) {
	local, err := s.repo.GetByID(ctx, reservationID)
	switch {
	case err == nil && local != nil:
		if local.UserID != userID || local.IsCancelled() {
			return nil, domain.ErrReservationNotFound
		}
		return local, nil
	case err != nil && !errors.Is(err, domain.ErrReservationNotFound):
		log.WithError(err).Warn("local reservation lookup failed")
	}

	list, err := s.api.ListUserReservations(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID == reservationID {
			r := list[i]
			r.UserID = userID
			r.Status = domain.ReservationConfirmed
			return &r, nil
		}
	}

	return nil, domain.ErrReservationNotFound
}

func (s *CancellationService) markCancelled(ctx context.Context, reservation *domain.Reservation, log *logrus.Entry) {
	if err := reservation.Cancel(); err != nil {
		log.WithError(err).Warn("reservation cannot be marked cancelled")
		return
	}

	s.catalog.Invalidate(ctx, reservation.EventID)

	if err := s.repo.Save(ctx, reservation); err != nil {
		log.WithError(err).Warn("failed to mark reservation cancelled locally")
	}
}

// RunHousekeeping periodically drops local records of reservations that
// were cancelled longer than retention ago.
func (s *CancellationService) RunHousekeeping(ctx context.Context, interval, retention time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Infof("Housekeeping worker started: pruning cancelled reservations every %s", interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Housekeeping worker stopped.")
			return
		case <-ticker.C:
			s.pruneCancelled(ctx, retention)
		}
	}
}

func (s *CancellationService) pruneCancelled(ctx context.Context, retention time.Duration) {
	removed, err := s.repo.DeleteCancelledBefore(ctx, time.Now().Add(-retention))
	if err != nil {
		s.logger.WithError(err).Error("failed to prune cancelled reservations")
		return
	}

	if removed > 0 {
		s.logger.Infof("Pruned %d cancelled reservations.", removed)
	}
}
