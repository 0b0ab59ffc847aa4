package api

import (
	"errors"   // Sentinel matching
	"net/http" // HTTP status codes

	"adept_play/internal/domain" // Domain sentinels

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// statusFor maps a domain sentinel to its HTTP status, 500 when it is not one
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrDuplicateUsername),
		errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrAlreadyJoined),
		errors.Is(err, domain.ErrAlreadyCompleted):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredential):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrTournamentClosed):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondError writes err as {"error": msg}; internal failures are logged and masked
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method, // Request method
			"path":   c.FullPath(),     // Route pattern
			"error":  err.Error(),      // Error message
		}).Error("Request failed")
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
