package controllers

import (
	"net/http"

	"studio-service/middleware"
	"studio-service/models"
	"studio-service/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

// GetCart returns the session's cart with derived totals
func (cc *CartController) GetCart(c *gin.Context) {
	summary, err := cc.service.Get(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// AddItem adds or merges an item into the cart
func (cc *CartController) AddItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	summary, serr := cc.service.AddItem(c.Request.Context(), middleware.SessionID(c), item)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateQuantity sets a line's quantity; zero removes the line
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	summary, serr := cc.service.UpdateQuantity(c.Request.Context(), middleware.SessionID(c), c.Param("item_id"), *req.Quantity)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// RemoveItem drops a line from the cart
func (cc *CartController) RemoveItem(c *gin.Context) {
	summary, serr := cc.service.RemoveItem(c.Request.Context(), middleware.SessionID(c), c.Param("item_id"))
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ClearCart removes all items from the cart
func (cc *CartController) ClearCart(c *gin.Context) {
	summary, serr := cc.service.Clear(c.Request.Context(), middleware.SessionID(c))
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, summary)
}
