package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
)

// respondError maps domain errors to HTTP status codes and writes a
// JSON error body.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		status = http.StatusNotFound

	case errors.Is(err, domain.ErrEmptyProductID),
		errors.Is(err, domain.ErrInvalidItemPrice),
		errors.Is(err, domain.ErrItemOutOfStock),
		errors.Is(err, domain.ErrInvalidOrderAmount):
		status = http.StatusBadRequest

	case errors.Is(err, domain.ErrOrderAlreadyPlaced),
		errors.Is(err, domain.ErrOrderNotPending):
		status = http.StatusConflict

	case errors.Is(err, domain.ErrCouponInvalid):
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
