package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
	"github.com/srgjo27/ticketing_client/internal/core/ports"
	"github.com/srgjo27/ticketing_client/internal/platform/metrics"
)

const reservationDateLayout = "2006-01-02"

type ReservationService struct {
	catalog  *CatalogService
	api      ports.ReservationAPI
	payments ports.PaymentGateway
	repo     ports.ReservationRepository
	guard    ports.ReservationGuard
	lockTTL  time.Duration
	now      func() time.Time
	logger   *logrus.Logger
}

func NewReservationService(
	catalog *CatalogService,
	api ports.ReservationAPI,
	payments ports.PaymentGateway,
	repo ports.ReservationRepository,
	guard ports.ReservationGuard,
	lockTTL time.Duration,
	logger *logrus.Logger,
) *ReservationService {
	return &ReservationService{
		catalog:  catalog,
		api:      api,
		payments: payments,
		repo:     repo,
		guard:    guard,
		lockTTL:  lockTTL,
		now:      time.Now,
		logger:   logger,
	}
}

// WithClock replaces the time source, used for expiry checks and the
// reservation date.
func (s *ReservationService) WithClock(now func() time.Time) *ReservationService {
	s.now = now
	return s
}

func guardKey(userID, eventID domain.ID) string {
	return fmt.Sprintf("reservation:lock:%s:%s", userID, eventID)
}

// Reserve turns a reserve action into a confirmed reservation. Paid events
// are charged first; the create request is only sent once the payment has
// succeeded. Capacity and uniqueness are decided by the backend.
func (s *ReservationService) Reserve(ctx context.Context, session domain.Session, eventID domain.ID) (*domain.Reservation, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}

	if eventID.IsZero() {
		return nil, domain.ErrEventNotFound
	}

	log := s.logger.WithFields(logrus.Fields{
		"user_id":  session.UserID(),
		"event_id": eventID,
	})

	key := guardKey(session.UserID(), eventID)
	token := uuid.NewString()

	acquired, err := s.guard.Acquire(ctx, key, token, s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire reservation guard: %w: %w", domain.ErrTransport, err)
	}

	if !acquired {
		log.Info("reservation already in progress")
		return nil, domain.ErrReservationInProgress
	}

	defer func() {
		if err := s.guard.Release(context.WithoutCancel(ctx), key, token); err != nil {
			log.WithError(err).Warn("failed to release reservation guard")
		}
	}()

	event, err := s.catalog.RefreshEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load event %s: %w", eventID, err)
	}

	if event.IsExpired(s.now()) {
		metrics.TrackReservation(string(event.Type), metrics.ResultRejected)
		return nil, domain.ErrEventExpired
	}

	var reservation *domain.Reservation

	switch event.Type {
	case domain.EventFree:
		reservation = &domain.Reservation{
			UserID:          session.UserID(),
			EventID:         eventID,
			ReservationDate: s.now().Format(reservationDateLayout),
		}

	case domain.EventPaid:
		reservation = domain.NewPendingReservation(session.UserID(), eventID, s.now().Format(reservationDateLayout))

		outcome, err := s.payments.Charge(ctx, session, event.Amount)
		if err != nil {
			metrics.TrackReservation(string(event.Type), metrics.ResultFailure)
			return nil, fmt.Errorf("charge event %s: %w", eventID, err)
		}

		if !outcome.IsSucceeded() {
			metrics.TrackReservation(string(event.Type), metrics.ResultRejected)
			return nil, outcome.Err()
		}

	default:
		metrics.TrackReservation(string(event.Type), metrics.ResultRejected)
		return nil, fmt.Errorf("event %s has unsupported type %q", eventID, event.Type)
	}

	created, err := s.api.CreateReservation(ctx, ports.CreateReservationRequest{
		Reserveur:       reservation.UserID,
		EvenementID:     reservation.EventID,
		ReservationDate: reservation.ReservationDate,
		IdempotencyKey:  token,
	})
	if err != nil {
		metrics.TrackReservation(string(event.Type), resultFor(err))
		if event.IsPaid() {
			log.WithError(err).Error("payment succeeded but the reservation was rejected")
		}
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	var reservationID domain.ID
	if created != nil {
		reservationID = created.ID
	}

	if reservationID.IsZero() {
		reservationID = s.lookupReservationID(ctx, session.UserID(), eventID)
	}

	if reservationID.IsZero() {
		s.catalog.Invalidate(ctx, eventID)
		metrics.TrackReservation(string(event.Type), metrics.ResultFailure)
		log.Error("reservation accepted but its id could not be resolved")
		return nil, fmt.Errorf("%w: reservation for event %s was accepted but its id could not be resolved", domain.ErrTransport, eventID)
	}

	if err := reservation.Confirm(reservationID); err != nil {
		return nil, err
	}

	s.persist(ctx, reservation)
	s.catalog.Invalidate(ctx, eventID)

	metrics.TrackReservation(string(event.Type), metrics.ResultSuccess)
	log.WithField("reservation_id", reservation.ID).Info("reservation confirmed")

	return reservation, nil
}

// ListMine returns the user's reservations minus those cancelled locally
// but not yet reflected by the backend.
func (s *ReservationService) ListMine(ctx context.Context, session domain.Session) ([]domain.Reservation, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}

	list, err := s.api.ListUserReservations(ctx, session.UserID())
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	cancelled, err := s.repo.CancelledIDs(ctx, session.UserID())
	if err != nil {
		s.logger.WithError(err).Warn("could not read locally cancelled reservations")
	}

	visible := make([]domain.Reservation, 0, len(list))
	for _, r := range list {
		if _, gone := cancelled[r.ID]; gone {
			continue
		}
		r.Status = domain.ReservationConfirmed
		visible = append(visible, r)
	}

	return visible, nil
}

// GetMine returns one of the user's live reservations.
func (s *ReservationService) GetMine(ctx context.Context, session domain.Session, reservationID domain.ID) (*domain.Reservation, error) {
	local, err := s.repo.GetByID(ctx, reservationID)
	switch {
	case err == nil && local != nil && local.IsCancelled():
		return nil, fmt.Errorf("reservation %s: %w", reservationID, domain.ErrReservationNotFound)
	case err != nil && !errors.Is(err, domain.ErrReservationNotFound):
		s.logger.WithError(err).WithField("reservation_id", reservationID).Warn("local reservation lookup failed")
	}

	list, err := s.ListMine(ctx, session)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID == reservationID {
			return &list[i], nil
		}
	}

	return nil, fmt.Errorf("reservation %s: %w", reservationID, domain.ErrReservationNotFound)
}

func (s *ReservationService) lookupReservationID(ctx context.Context, userID, eventID domain.ID) domain.ID {
	list, err := s.api.ListUserReservations(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("event_id", eventID).Warn("could not resolve the new reservation id")
		return ""
	}

	return newestReservationFor(list, eventID)
}

func newestReservationFor(list []domain.Reservation, eventID domain.ID) domain.ID {
	var newest domain.ID
	for _, r := range list {
		if r.EventID != eventID || r.ID.IsZero() {
			continue
		}
		if newest.IsZero() || idAfter(r.ID, newest) {
			newest = r.ID
		}
	}
	return newest
}

func idAfter(a, b domain.ID) bool {
	na, errA := strconv.ParseInt(a.String(), 10, 64)
	nb, errB := strconv.ParseInt(b.String(), 10, 64)
	if errA == nil && errB == nil {
		return na > nb
	}
	return true
}

func (s *ReservationService) persist(ctx context.Context, reservation *domain.Reservation) {
	if reservation.ID.IsZero() {
		return
	}

	if err := s.repo.Save(ctx, reservation); err != nil {
		s.logger.WithError(err).WithField("reservation_id", reservation.ID).Warn("failed to store reservation locally")
	}
}

func resultFor(err error) string {
	if errors.Is(err, domain.ErrSeatsExhausted) || errors.Is(err, domain.ErrAlreadyReserved) {
		return metrics.ResultRejected
	}
	return metrics.ResultFailure
}
