package handlers

import (
	"errors"
	"net/http"

	"launch-dashboard-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Bad request / selection errors
	case errors.Is(err, domain.ErrUnknownSite),
		errors.Is(err, domain.ErrInvalidSelection),
		errors.Is(err, domain.ErrUnknownSignal),
		errors.Is(err, domain.ErrInvalidBandWidth),
		errors.Is(err, domain.ErrInvalidPayloadArg):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Service unavailable errors
	case errors.Is(err, domain.ErrDatasetUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
