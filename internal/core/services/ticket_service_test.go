package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
	"github.com/srgjo27/ticketing_client/internal/core/ports/mocks"
	"github.com/srgjo27/ticketing_client/internal/core/services"
)

type ticketDeps struct {
	*reservationDeps
	renderer *mocks.TicketRenderer
	store    *mocks.ArtifactStore
	service  *services.TicketService
	cancel   *services.CancellationService
}

func newTicketDeps(t *testing.T) *ticketDeps {
	r := newReservationDeps(t)
	d := &ticketDeps{
		reservationDeps: r,
		renderer:        mocks.NewTicketRenderer(t),
		store:           mocks.NewArtifactStore(t),
	}
	logger := quietLogger()
	d.service = services.NewTicketService(r.service, r.catalog, d.renderer, d.store, logger)
	d.cancel = services.NewCancellationService(r.api, r.repo, r.catalog, logger)
	return d
}

func confirmed(id, eventID domain.ID) *domain.Reservation {
	return &domain.Reservation{ID: id, UserID: "7", EventID: eventID, Status: domain.ReservationConfirmed}
}

func TestIssueTicket_QRPayloadIsReservationID(t *testing.T) {
	event := freeEvent("3", 10)

	a, err := services.IssueTicket(confirmed("100", "3"), event, testSession().User, fixedNow)
	require.NoError(t, err)
	b, err := services.IssueTicket(confirmed("101", "3"), event, testSession().User, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "100", a.QRPayload)
	assert.Equal(t, "101", b.QRPayload)
	assert.NotEqual(t, a.QRPayload, b.QRPayload)
	assert.NotEqual(t, event.ID.String(), a.QRPayload)
	assert.Equal(t, "awa", a.HolderName)
	assert.Equal(t, "Dakar", a.Localisation)
}

func TestIssueTicket_RequiresConfirmedReservation(t *testing.T) {
	event := freeEvent("3", 10)

	pending := domain.NewPendingReservation("7", "3", "2026-10-19")
	_, err := services.IssueTicket(pending, event, testSession().User, fixedNow)
	assert.ErrorIs(t, err, domain.ErrTicketUnavailable)

	cancelled := confirmed("100", "3")
	require.NoError(t, cancelled.Cancel())
	_, err = services.IssueTicket(cancelled, event, testSession().User, fixedNow)
	assert.ErrorIs(t, err, domain.ErrTicketUnavailable)

	_, err = services.IssueTicket(confirmed("100", "9"), event, testSession().User, fixedNow)
	assert.ErrorIs(t, err, domain.ErrTicketUnavailable)
}

func TestIssueTicket_IsASnapshot(t *testing.T) {
	reservation := confirmed("100", "3")

	ticket, err := services.IssueTicket(reservation, freeEvent("3", 10), testSession().User, fixedNow)
	require.NoError(t, err)

	require.NoError(t, reservation.Cancel())
	assert.Equal(t, "100", ticket.QRPayload)
}

func TestIssueByID_AfterCancelNeverSucceeds(t *testing.T) {
	d := newTicketDeps(t)
	ctx := context.Background()

	d.api.On("DeleteReservation", mock.Anything, domain.ID("100")).Return(nil).Once()
	d.repo.On("GetByID", mock.Anything, domain.ID("100")).Return(confirmed("100", "3"), nil).Once()
	d.repo.On("Save", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool { return r.IsCancelled() })).Return(nil).Once()

	require.NoError(t, d.cancel.Cancel(ctx, testSession(), "100"))

	cancelled := confirmed("100", "3")
	cancelled.Status = domain.ReservationCancelled
	d.repo.On("GetByID", mock.Anything, domain.ID("100")).Return(cancelled, nil)

	ticket, err := d.service.IssueByID(ctx, testSession(), "100")

	assert.Nil(t, ticket)
	assert.ErrorIs(t, err, domain.ErrTicketUnavailable)
	d.api.AssertNotCalled(t, "ListUserReservations", mock.Anything, mock.Anything)
}

func TestIssueByID_UnknownToBackend(t *testing.T) {
	d := newTicketDeps(t)

	d.repo.On("GetByID", mock.Anything, domain.ID("100")).Return(nil, domain.ErrReservationNotFound)
	d.repo.On("CancelledIDs", mock.Anything, domain.ID("7")).Return(map[domain.ID]struct{}{}, nil)
	d.api.On("ListUserReservations", mock.Anything, domain.ID("7")).Return([]domain.Reservation{{ID: "5", EventID: "3"}}, nil)

	_, err := d.service.IssueByID(context.Background(), testSession(), "100")

	assert.ErrorIs(t, err, domain.ErrTicketUnavailable)
}

func TestIssueByID_Success(t *testing.T) {
	d := newTicketDeps(t)

	d.repo.On("GetByID", mock.Anything, domain.ID("100")).Return(confirmed("100", "3"), nil)
	d.repo.On("CancelledIDs", mock.Anything, domain.ID("7")).Return(nil, nil)
	d.api.On("ListUserReservations", mock.Anything, domain.ID("7")).Return([]domain.Reservation{{ID: "100", EventID: "3"}}, nil)
	d.events.On("GetEvent", mock.Anything, domain.ID("3")).Return(freeEvent("3", 10), nil)

	ticket, err := d.service.IssueByID(context.Background(), testSession(), "100")

	require.NoError(t, err)
	assert.Equal(t, "100", ticket.QRPayload)
	assert.Equal(t, "Open air concert", ticket.Title)
}

func TestIssueByID_FallsBackToReservationSummary(t *testing.T) {
	d := newTicketDeps(t)

	d.repo.On("GetByID", mock.Anything, domain.ID("100")).Return(nil, domain.ErrReservationNotFound)
	d.repo.On("CancelledIDs", mock.Anything, domain.ID("7")).Return(nil, nil)
	d.api.On("ListUserReservations", mock.Anything, domain.ID("7")).Return([]domain.Reservation{
		{ID: "100", EventID: "3", Title: "Jazz night", Localisation: "Thiès"},
	}, nil)
	d.events.On("GetEvent", mock.Anything, domain.ID("3")).Return(nil, domain.ErrTransport)

	ticket, err := d.service.IssueByID(context.Background(), testSession(), "100")

	require.NoError(t, err)
	assert.Equal(t, "Jazz night", ticket.Title)
	assert.Equal(t, "Thiès", ticket.Localisation)
}

func TestExport_WritesDocument(t *testing.T) {
	d := newTicketDeps(t)
	ticket, err := services.IssueTicket(confirmed("100", "3"), freeEvent("3", 10), testSession().User, time.Now())
	require.NoError(t, err)

	pdf := []byte("%PDF-1.3 ...")
	d.renderer.On("RenderPDF", ticket).Return(pdf, nil)
	d.store.On("Write", mock.Anything, mock.MatchedBy(func(name string) bool {
		return len(name) > len("ticket-100-") && name[:len("ticket-100-")] == "ticket-100-"
	}), pdf).Return("/tmp/tickets/ticket-100.pdf", nil)

	doc, err := d.service.Export(context.Background(), ticket)

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, "/tmp/tickets/ticket-100.pdf", doc.Path)
	assert.Equal(t, len(pdf), doc.Size())
}

func TestExport_RenderFailure(t *testing.T) {
	d := newTicketDeps(t)
	ticket := &domain.Ticket{ReservationID: "100", QRPayload: "100"}

	d.renderer.On("RenderPDF", ticket).Return(nil, errors.New("font not found"))

	_, err := d.service.Export(context.Background(), ticket)

	assert.ErrorIs(t, err, domain.ErrExport)
	d.store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
}

func TestExport_WriteFailureIsRetryable(t *testing.T) {
	d := newTicketDeps(t)
	ticket := &domain.Ticket{ReservationID: "100", QRPayload: "100"}
	pdf := []byte("%PDF")

	d.renderer.On("RenderPDF", ticket).Return(pdf, nil).Twice()
	d.store.On("Write", mock.Anything, mock.Anything, pdf).Return("", errors.New("disk full")).Once()
	d.store.On("Write", mock.Anything, mock.Anything, pdf).Return("/tmp/t.pdf", nil).Once()

	_, err := d.service.Export(context.Background(), ticket)
	assert.ErrorIs(t, err, domain.ErrExport)

	doc, err := d.service.Export(context.Background(), ticket)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/t.pdf", doc.Path)
}

func TestQRCode(t *testing.T) {
	d := newTicketDeps(t)
	ticket := &domain.Ticket{ReservationID: "100", QRPayload: "100"}

	d.renderer.On("RenderQR", ticket, 256).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := d.service.QRCode(ticket)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
