package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
	"github.com/srgjo27/ticketing_client/internal/core/services"
)

type TicketHandler struct {
	tickets *services.TicketService
}

func NewTicketHandler(tickets *services.TicketService) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

func (h *TicketHandler) issue(c *gin.Context) (*domain.Ticket, bool) {
	session, ok := sessionFrom(c)
	if !ok {
		return nil, false
	}

	ticket, err := h.tickets.IssueByID(c.Request.Context(), session, domain.ID(c.Param("id")))
	if err != nil {
		respondWithDomainError(c, err)
		return nil, false
	}

	return ticket, true
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticket, ok := h.issue(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

func (h *TicketHandler) GetQRCode(c *gin.Context) {
	ticket, ok := h.issue(c)
	if !ok {
		return
	}

	png, err := h.tickets.QRCode(ticket)
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (h *TicketHandler) ExportPDF(c *gin.Context) {
	ticket, ok := h.issue(c)
	if !ok {
		return
	}

	doc, err := h.tickets.Export(c.Request.Context(), ticket)
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	c.Header("X-Ticket-Path", doc.Path)
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}
