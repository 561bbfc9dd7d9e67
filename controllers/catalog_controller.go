package controllers

import (
	"net/http"

	"studio-service/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the static catalog. Everything here is read-only.
type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

func (cc *CatalogController) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.BookableServices})
}

func (cc *CatalogController) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"menu": catalog.Menu})
}

func (cc *CatalogController) ListMemberships(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tiers": catalog.MembershipTiers})
}

func (cc *CatalogController) ListGallery(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"images": catalog.GalleryImages})
}

func (cc *CatalogController) ListTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"time_slots": catalog.TimeSlots})
}
