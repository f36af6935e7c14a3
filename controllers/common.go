package controllers

import (
	"errors"
	"net/http"

	"unityplates-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// serviceError translates a service-layer error into a response. Raw
// persistence errors are logged and hidden behind a generic 500.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("internal failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
