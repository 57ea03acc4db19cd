package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondWithError sends the standardized JSON error body {"error": "..."}
// with the given HTTP status and stops further processing.
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
	c.Abort()
}

// RespondBadRequest is a shorthand for a 400 validation failure.
func RespondBadRequest(c *gin.Context, message string) {
	RespondWithError(c, http.StatusBadRequest, message)
}

// RespondNotFound is a shorthand for a 404 response.
func RespondNotFound(c *gin.Context, message string) {
	RespondWithError(c, http.StatusNotFound, message)
}

// RespondInternalError is a shorthand for a 500 response.
func RespondInternalError(c *gin.Context, message string) {
	RespondWithError(c, http.StatusInternalServerError, message)
}
