package web

import (
	"errors"
	"net/http"

	"vendorhub/services"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// respondServiceError maps service sentinel errors to HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrForbidden):
		respondError(c, http.StatusForbidden, "access denied")
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrVendorNotApproved),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrItemUnavailable):
		respondError(c, http.StatusConflict, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}
