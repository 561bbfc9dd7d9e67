package controllers

import (
	"net/http"

	"studio-service/middleware"
	"studio-service/services"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	service *services.SessionService
}

func NewSessionController(service *services.SessionService) *SessionController {
	return &SessionController{service: service}
}

// ClearSession discards all state held for the caller's session
func (sc *SessionController) ClearSession(c *gin.Context) {
	if err := sc.service.Clear(c.Request.Context(), middleware.SessionID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session cleared"})
}
