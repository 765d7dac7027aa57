package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/ticketing_client/internal/adapter/handler"
	"github.com/srgjo27/ticketing_client/internal/core/domain"
	"github.com/srgjo27/ticketing_client/internal/core/ports/mocks"
	"github.com/srgjo27/ticketing_client/internal/core/services"
)

type fixture struct {
	sessions *mocks.SessionProvider
	events   *mocks.EventAPI
	api      *mocks.ReservationAPI
	payments *mocks.PaymentGateway
	repo     *mocks.ReservationRepository
	guard    *mocks.ReservationGuard
	renderer *mocks.TicketRenderer
	store    *mocks.ArtifactStore
	router   *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	f := &fixture{
		sessions: mocks.NewSessionProvider(t),
		events:   mocks.NewEventAPI(t),
		api:      mocks.NewReservationAPI(t),
		payments: mocks.NewPaymentGateway(t),
		repo:     mocks.NewReservationRepository(t),
		guard:    mocks.NewReservationGuard(t),
		renderer: mocks.NewTicketRenderer(t),
		store:    mocks.NewArtifactStore(t),
	}

	sessionSvc := services.NewSessionService(f.sessions)
	catalog := services.NewCatalogService(f.events, nil, time.Minute, logger)
	reservations := services.NewReservationService(catalog, f.api, f.payments, f.repo, f.guard, time.Minute, logger)
	cancellation := services.NewCancellationService(f.api, f.repo, catalog, logger)
	tickets := services.NewTicketService(reservations, catalog, f.renderer, f.store, logger)

	f.router = handler.NewRouter(handler.Handlers{
		Sessions:     handler.NewSessionHandler(sessionSvc),
		Events:       handler.NewEventHandler(catalog),
		Reservations: handler.NewReservationHandler(reservations, cancellation),
		Tickets:      handler.NewTicketHandler(tickets),
	}, sessionSvc, logger)

	return f
}

func (f *fixture) signedIn() {
	f.sessions.On("CurrentUser", mock.Anything).Return(&domain.User{ID: "7", Username: "awa", Email: "awa@example.com"}, nil)
}

func (f *fixture) serve(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) handler.ErrorResponse {
	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func upcoming(id domain.ID) *domain.Event {
	return &domain.Event{
		ID:           id,
		Title:        "Open air concert",
		Type:         domain.EventFree,
		Date:         time.Now().Add(30 * 24 * time.Hour),
		Localisation: "Dakar",
	}
}

func TestUnauthenticatedRequestsAreRejected(t *testing.T) {
	f := newFixture(t)
	f.sessions.On("CurrentUser", mock.Anything).
		Return(nil, &domain.BackendError{StatusCode: 401, Message: "Non authentifié", Kind: domain.ErrUnauthenticated})

	w := f.serve(http.MethodGet, "/reservations", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Non authentifié", decodeError(t, w).Message)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	f.sessions.On("Login", mock.Anything, "awa@example.com", "secret").Return(nil)
	f.signedIn()

	w := f.serve(http.MethodPost, "/login", `{"email":"awa@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"awa"`)

	w = f.serve(http.MethodPost, "/login", `{"email":"awa@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReserveFreeEvent(t *testing.T) {
	f := newFixture(t)
	f.signedIn()

	f.guard.On("Acquire", mock.Anything, "reservation:lock:7:3", mock.Anything, time.Minute).Return(true, nil)
	f.guard.On("Release", mock.Anything, "reservation:lock:7:3", mock.Anything).Return(nil)
	f.events.On("GetEvent", mock.Anything, domain.ID("3")).Return(upcoming("3"), nil)
	f.api.On("CreateReservation", mock.Anything, mock.Anything).Return(&domain.Reservation{ID: "15", EventID: "3"}, nil)
	f.repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	w := f.serve(http.MethodPost, "/events/3/reservations", "")

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Reservation handler.ReservationResponse `json:"reservation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.ID("15"), resp.Reservation.ID)
	assert.Equal(t, domain.ReservationConfirmed, resp.Reservation.Status)
}

func TestReserve_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "seats exhausted shows backend message",
			err:     &domain.BackendError{StatusCode: 409, Message: "Événement complet", Kind: domain.ErrSeatsExhausted},
			status:  http.StatusConflict,
			message: "Événement complet",
		},
		{
			name:    "already reserved",
			err:     &domain.BackendError{StatusCode: 409, Kind: domain.ErrAlreadyReserved},
			status:  http.StatusConflict,
			message: domain.UserMessage(domain.ErrAlreadyReserved),
		},
		{
			name:    "transport",
			err:     domain.ErrTransport,
			status:  http.StatusBadGateway,
			message: domain.UserMessage(domain.ErrTransport),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.signedIn()

			f.guard.On("Acquire", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
			f.guard.On("Release", mock.Anything, mock.Anything, mock.Anything).Return(nil)
			f.events.On("GetEvent", mock.Anything, domain.ID("3")).Return(upcoming("3"), nil)
			f.api.On("CreateReservation", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := f.serve(http.MethodPost, "/events/3/reservations", "")

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, decodeError(t, w).Message)
		})
	}
}

func TestReserve_PaymentDeclined(t *testing.T) {
	f := newFixture(t)
	f.signedIn()

	paid := upcoming("4")
	paid.Type = domain.EventPaid

	f.guard.On("Acquire", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	f.guard.On("Release", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.events.On("GetEvent", mock.Anything, domain.ID("4")).Return(paid, nil)
	f.payments.On("Charge", mock.Anything, mock.Anything, mock.Anything).Return(domain.Failed("Your card was declined."), nil)

	w := f.serve(http.MethodPost, "/events/4/reservations", "")

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, "Payment failed: Your card was declined.", decodeError(t, w).Message)
	f.api.AssertNotCalled(t, "CreateReservation", mock.Anything, mock.Anything)
}

func TestSearchEvents(t *testing.T) {
	f := newFixture(t)
	f.signedIn()
	f.events.On("SearchEvents", mock.Anything, "jazz").Return([]domain.Event{*upcoming("3")}, nil)

	w := f.serve(http.MethodGet, "/events/search?q=jazz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Open air concert")
}

func TestGetEvent_NotFound(t *testing.T) {
	f := newFixture(t)
	f.signedIn()
	f.events.On("GetEvent", mock.Anything, domain.ID("99")).Return(nil, domain.ErrEventNotFound)

	w := f.serve(http.MethodGet, "/events/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrganiserRoutes(t *testing.T) {
	f := newFixture(t)
	f.signedIn()
	f.events.On("ListEventsCreatedBy", mock.Anything, domain.ID("7")).Return([]domain.Event{*upcoming("3")}, nil)
	f.events.On("GetEventStatistics", mock.Anything, domain.ID("3")).Return(&domain.EventStatistics{
		DailySubscriptions: []domain.DailySubscriptions{{Date: "2026-10-18", Count: 4}},
	}, nil)
	f.events.On("ListEventReservations", mock.Anything, domain.ID("3")).Return([]domain.Attendee{
		{Username: "fatou", Email: "fatou@example.com"},
	}, nil)

	w := f.serve(http.MethodGet, "/me/events", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Open air concert")

	w = f.serve(http.MethodGet, "/events/3/statistics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":4`)
	assert.Contains(t, w.Body.String(), `"subscriptions":4`)

	w = f.serve(http.MethodGet, "/events/3/reservations", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fatou@example.com")
}

func TestEventStatistics_ForbiddenToOthers(t *testing.T) {
	f := newFixture(t)
	f.signedIn()
	f.events.On("GetEventStatistics", mock.Anything, domain.ID("4")).
		Return(nil, &domain.BackendError{StatusCode: 403, Message: "Accès refusé", Kind: domain.ErrUnauthenticated})

	w := f.serve(http.MethodGet, "/events/4/statistics", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Accès refusé", decodeError(t, w).Message)
}

func TestCancelReservation(t *testing.T) {
	f := newFixture(t)
	f.signedIn()
	f.repo.On("GetByID", mock.Anything, domain.ID("15")).Return(nil, domain.ErrReservationNotFound)
	f.api.On("ListUserReservations", mock.Anything, domain.ID("7")).Return([]domain.Reservation{{ID: "15", EventID: "3"}}, nil)
	f.api.On("DeleteReservation", mock.Anything, domain.ID("15")).Return(nil)
	f.repo.On("Save", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.ID == "15" && r.IsCancelled()
	})).Return(nil)

	w := f.serve(http.MethodDelete, "/reservations/15", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCancelReservation_NotHeldByCaller(t *testing.T) {
	f := newFixture(t)
	f.signedIn()
	f.repo.On("GetByID", mock.Anything, domain.ID("16")).Return(nil, domain.ErrReservationNotFound)
	f.api.On("ListUserReservations", mock.Anything, domain.ID("7")).Return([]domain.Reservation{{ID: "15", EventID: "3"}}, nil)

	w := f.serve(http.MethodDelete, "/reservations/16", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	f.api.AssertNotCalled(t, "DeleteReservation", mock.Anything, mock.Anything)
}

func TestTicketQRCode(t *testing.T) {
	f := newFixture(t)
	f.signedIn()
	f.repo.On("GetByID", mock.Anything, domain.ID("15")).Return(nil, domain.ErrReservationNotFound)
	f.repo.On("CancelledIDs", mock.Anything, domain.ID("7")).Return(nil, nil)
	f.api.On("ListUserReservations", mock.Anything, domain.ID("7")).Return([]domain.Reservation{{ID: "15", EventID: "3"}}, nil)
	f.events.On("GetEvent", mock.Anything, domain.ID("3")).Return(upcoming("3"), nil)
	f.renderer.On("RenderQR", mock.MatchedBy(func(ticket *domain.Ticket) bool {
		return ticket.QRPayload == "15"
	}), 256).Return([]byte("\x89PNG"), nil)

	w := f.serve(http.MethodGet, "/reservations/15/ticket/qr", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestTicketForCancelledReservation(t *testing.T) {
	f := newFixture(t)
	f.signedIn()
	f.repo.On("GetByID", mock.Anything, domain.ID("15")).
		Return(&domain.Reservation{ID: "15", EventID: "3", Status: domain.ReservationCancelled}, nil)

	w := f.serve(http.MethodGet, "/reservations/15/ticket", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketPDFExportFailure(t *testing.T) {
	f := newFixture(t)
	f.signedIn()
	f.repo.On("GetByID", mock.Anything, domain.ID("15")).Return(nil, domain.ErrReservationNotFound)
	f.repo.On("CancelledIDs", mock.Anything, domain.ID("7")).Return(nil, nil)
	f.api.On("ListUserReservations", mock.Anything, domain.ID("7")).Return([]domain.Reservation{{ID: "15", EventID: "3"}}, nil)
	f.events.On("GetEvent", mock.Anything, domain.ID("3")).Return(upcoming("3"), nil)
	f.renderer.On("RenderPDF", mock.Anything).Return([]byte("%PDF"), nil)
	f.store.On("Write", mock.Anything, mock.Anything, mock.Anything).Return("", io.ErrShortWrite)

	w := f.serve(http.MethodGet, "/reservations/15/ticket/pdf", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, domain.UserMessage(domain.ErrExport), decodeError(t, w).Message)
}
