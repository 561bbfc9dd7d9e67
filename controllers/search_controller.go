package controllers

import (
	"net/http"

	"studio-service/services"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	service *services.SearchService
}

func NewSearchController(service *services.SearchService) *SearchController {
	return &SearchController{service: service}
}

// Search filters the static index by the q parameter
func (sc *SearchController) Search(c *gin.Context) {
	results := sc.service.Search(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"results": results})
}
