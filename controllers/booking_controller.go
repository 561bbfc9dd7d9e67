package controllers

import (
	"net/http"

	"studio-service/middleware"
	"studio-service/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{service: service}
}

// GetBooking returns the session's booking state
func (bc *BookingController) GetBooking(c *gin.Context) {
	status, err := bc.service.Get(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// UpdateSelection applies partial selection updates
func (bc *BookingController) UpdateSelection(c *gin.Context) {
	var sel services.BookingSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	status, serr := bc.service.UpdateSelection(c.Request.Context(), middleware.SessionID(c), sel)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, status)
}

// OpenConfirmation opens the confirmation dialog
func (bc *BookingController) OpenConfirmation(c *gin.Context) {
	status, err := bc.service.OpenConfirmation(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// CloseConfirmation dismisses the confirmation dialog
func (bc *BookingController) CloseConfirmation(c *gin.Context) {
	status, err := bc.service.CloseConfirmation(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Confirm submits the booking; completion is asynchronous
func (bc *BookingController) Confirm(c *gin.Context) {
	status, err := bc.service.Confirm(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, status)
}
