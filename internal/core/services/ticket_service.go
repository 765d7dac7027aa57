package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
	"github.com/srgjo27/ticketing_client/internal/core/ports"
	"github.com/srgjo27/ticketing_client/internal/platform/metrics"
)

const (
	generalAdmission = "General admission"
	qrImageSize      = 256
)

// IssueTicket projects a confirmed reservation and its event into a
// ticket. It performs no I/O.
func IssueTicket(reservation *domain.Reservation, event *domain.Event, user domain.User, issuedAt time.Time) (*domain.Ticket, error) {
	if reservation == nil || !reservation.IsConfirmed() || reservation.ID.IsZero() {
		return nil, domain.ErrTicketUnavailable
	}

	if event == nil || event.ID != reservation.EventID {
		return nil, fmt.Errorf("%w: event does not match reservation %s", domain.ErrTicketUnavailable, reservation.ID)
	}

	holder := user.Username
	if holder == "" {
		holder = user.Email
	}

	return &domain.Ticket{
		ReservationID: reservation.ID,
		EventID:       event.ID,
		QRPayload:     reservation.ID.String(),
		Title:         event.Title,
		Date:          event.Date,
		Localisation:  event.Localisation,
		Description:   event.Description,
		HolderName:    holder,
		Admission:     generalAdmission,
		IssuedAt:      issuedAt,
	}, nil
}

type TicketService struct {
	reservations *ReservationService
	catalog      *CatalogService
	renderer     ports.TicketRenderer
	store        ports.ArtifactStore
	logger       *logrus.Logger
}

func NewTicketService(reservations *ReservationService, catalog *CatalogService, renderer ports.TicketRenderer, store ports.ArtifactStore, logger *logrus.Logger) *TicketService {
	return &TicketService{
		reservations: reservations,
		catalog:      catalog,
		renderer:     renderer,
		store:        store,
		logger:       logger,
	}
}

func (s *TicketService) Issue(reservation *domain.Reservation, event *domain.Event, user domain.User) (*domain.Ticket, error) {
	return IssueTicket(reservation, event, user, time.Now())
}

// IssueByID loads a live reservation of the session user and issues its
// ticket. Cancelled or unknown reservations never yield a ticket.
func (s *TicketService) IssueByID(ctx context.Context, session domain.Session, reservationID domain.ID) (*domain.Ticket, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}

	reservation, err := s.reservations.GetMine(ctx, session, reservationID)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrTicketUnavailable, err)
		}
		return nil, err
	}

	event, err := s.catalog.GetEvent(ctx, reservation.EventID)
	if err != nil {
		if reservation.Title == "" {
			return nil, err
		}
		s.logger.WithError(err).WithField("reservation_id", reservationID).Warn("event lookup failed, using reservation summary")
		event = summaryEvent(reservation)
	}

	return s.Issue(reservation, event, session.User)
}

func (s *TicketService) QRCode(ticket *domain.Ticket) ([]byte, error) {
	png, err := s.renderer.RenderQR(ticket, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("render qr code: %w: %w", domain.ErrExport, err)
	}
	return png, nil
}

// Export renders the printable ticket and writes it as a shareable
// artifact. Failures are retryable.
func (s *TicketService) Export(ctx context.Context, ticket *domain.Ticket) (*domain.Document, error) {
	if ticket == nil {
		return nil, domain.ErrTicketUnavailable
	}

	log := s.logger.WithField("reservation_id", ticket.ReservationID)

	content, err := s.renderer.RenderPDF(ticket)
	if err != nil {
		metrics.TrackExport(metrics.ResultFailure)
		log.WithError(err).Error("ticket rendering failed")
		return nil, fmt.Errorf("render ticket: %w: %w", domain.ErrExport, err)
	}

	name := fmt.Sprintf("ticket-%s-%s.pdf", ticket.ReservationID, uuid.NewString())

	path, err := s.store.Write(ctx, name, content)
	if err != nil {
		metrics.TrackExport(metrics.ResultFailure)
		log.WithError(err).Error("ticket artifact write failed")
		return nil, fmt.Errorf("write ticket: %w: %w", domain.ErrExport, err)
	}

	metrics.TrackExport(metrics.ResultSuccess)

	return &domain.Document{
		Name:        name,
		Path:        path,
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

func summaryEvent(r *domain.Reservation) *domain.Event {
	return &domain.Event{
		ID:           r.EventID,
		Title:        r.Title,
		Date:         r.Date,
		Localisation: r.Localisation,
		Description:  r.Description,
		Image:        r.Image,
	}
}
