package controllers

import (
	"studio-service/services"

	"github.com/gin-gonic/gin"
)

// respondError writes a ServiceError as JSON. Validation failures carry the
// per-field messages; everything else is a single error string.
func respondError(c *gin.Context, err *services.ServiceError) {
	if len(err.Fields) > 0 {
		c.JSON(err.StatusCode, gin.H{"error": err.Message, "errors": err.Fields})
		return
	}
	c.JSON(err.StatusCode, gin.H{"error": err.Message})
}
