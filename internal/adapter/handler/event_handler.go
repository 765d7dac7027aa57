package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
	"github.com/srgjo27/ticketing_client/internal/core/services"
)

type EventHandler struct {
	catalog *services.CatalogService
}

func NewEventHandler(catalog *services.CatalogService) *EventHandler {
	return &EventHandler{catalog: catalog}
}

// ListEvents returns every event, or only those the user did not create
// when exclude_own=true.
func (h *EventHandler) ListEvents(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		return
	}

	excludeOwn, _ := strconv.ParseBool(c.Query("exclude_own"))

	var events []domain.Event
	var err error
	if excludeOwn {
		events, err = h.catalog.ListForUser(c.Request.Context(), session)
	} else {
		events, err = h.catalog.ListEvents(c.Request.Context())
	}
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *EventHandler) SearchEvents(c *gin.Context) {
	events, err := h.catalog.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.catalog.GetEvent(c.Request.Context(), domain.ID(c.Param("id")))
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// ListOwnEvents returns the events the signed-in user organises.
func (h *EventHandler) ListOwnEvents(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		return
	}

	events, err := h.catalog.ListOwn(c.Request.Context(), session)
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *EventHandler) GetStatistics(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		return
	}

	stats, err := h.catalog.Statistics(c.Request.Context(), session, domain.ID(c.Param("id")))
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"statistics": stats, "total": stats.Total()})
}

func (h *EventHandler) ListAttendees(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		return
	}

	attendees, err := h.catalog.Attendees(c.Request.Context(), session, domain.ID(c.Param("id")))
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservations": attendees})
}
