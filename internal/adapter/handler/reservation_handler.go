package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
	"github.com/srgjo27/ticketing_client/internal/core/services"
)

type ReservationHandler struct {
	reservations *services.ReservationService
	cancellation *services.CancellationService
}

func NewReservationHandler(reservations *services.ReservationService, cancellation *services.CancellationService) *ReservationHandler {
	return &ReservationHandler{
		reservations: reservations,
		cancellation: cancellation,
	}
}

type ReservationResponse struct {
	ID              domain.ID                `json:"id"`
	EventID         domain.ID                `json:"event_id"`
	Status          domain.ReservationStatus `json:"status"`
	ReservationDate string                   `json:"reservation_date,omitempty"`
	Title           string                   `json:"title,omitempty"`
	Date            *time.Time               `json:"date,omitempty"`
	Localisation    string                   `json:"localisation,omitempty"`
	Description     string                   `json:"description,omitempty"`
}

func toReservationResponse(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:              r.ID,
		EventID:         r.EventID,
		Status:          r.Status,
		ReservationDate: r.ReservationDate,
		Title:           r.Title,
		Localisation:    r.Localisation,
		Description:     r.Description,
	}
	if !r.Date.IsZero() {
		date := r.Date
		resp.Date = &date
	}
	return resp
}

func (h *ReservationHandler) Reserve(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		return
	}

	reservation, err := h.reservations.Reserve(c.Request.Context(), session, domain.ID(c.Param("id")))
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Reservation confirmed.",
		"reservation": toReservationResponse(reservation),
	})
}

func (h *ReservationHandler) ListMine(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		return
	}

	list, err := h.reservations.ListMine(c.Request.Context(), session)
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	resp := make([]ReservationResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toReservationResponse(&list[i]))
	}

	c.JSON(http.StatusOK, gin.H{"reservations": resp})
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		return
	}

	if err := h.cancellation.Cancel(c.Request.Context(), session, domain.ID(c.Param("id"))); err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled."})
}
