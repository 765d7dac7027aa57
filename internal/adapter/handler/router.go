package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handlers struct {
	Sessions     *SessionHandler
	Events       *EventHandler
	Reservations *ReservationHandler
	Tickets      *TicketHandler
}

func NewRouter(h Handlers, resolver SessionResolver, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger))

	router.POST("/login", h.Sessions.Login)

	authed := router.Group("/", RequireSession(resolver))
	{
		authed.GET("/me", h.Sessions.Me)
		authed.GET("/me/events", h.Events.ListOwnEvents)

		authed.GET("/events", h.Events.ListEvents)
		authed.GET("/events/search", h.Events.SearchEvents)
		authed.GET("/events/:id", h.Events.GetEvent)
		authed.GET("/events/:id/statistics", h.Events.GetStatistics)
		authed.GET("/events/:id/reservations", h.Events.ListAttendees)
		authed.POST("/events/:id/reservations", h.Reservations.Reserve)

		authed.GET("/reservations", h.Reservations.ListMine)
		authed.DELETE("/reservations/:id", h.Reservations.Cancel)
		authed.GET("/reservations/:id/ticket", h.Tickets.GetTicket)
		authed.GET("/reservations/:id/ticket/qr", h.Tickets.GetQRCode)
		authed.GET("/reservations/:id/ticket/pdf", h.Tickets.ExportPDF)
	}

	return router
}
