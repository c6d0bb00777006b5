package handlers

import (
	"errors"
	"net/http"

	"foodie-api/lifecycle"
	"foodie-api/models"
	"foodie-api/policy"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// errConflict marks a stale write rejected by the version check.
var errConflict = errors.New("aggregate was modified concurrently, please retry")

// fail maps domain errors onto HTTP statuses. Storage faults fall through
// as internal errors; nothing is retried.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, policy.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to perform this action"})
	case errors.Is(err, lifecycle.ErrInvalidState):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, lifecycle.ErrInvalidStatus),
		errors.Is(err, lifecycle.ErrInvalidRating),
		errors.Is(err, models.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
