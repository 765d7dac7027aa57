package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/ticketing_client/internal/core/services"
)

type SessionHandler struct {
	svc *services.SessionService
}

func NewSessionHandler(svc *services.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Email and password are required.")
		return
	}

	session, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": session.User})
}

func (h *SessionHandler) Me(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": session.User})
}
