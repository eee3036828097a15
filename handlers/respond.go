package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"restaurant-pos-api/services"
	"restaurant-pos-api/statemachine"

	"github.com/gin-gonic/gin"
)

// parseID reads the numeric id path parameter. On failure it writes the 400
// response itself and returns ok=false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID supplied"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service failures onto the HTTP error contract: validation
// failures are 400, missing records 404, illegal lifecycle moves 422, anything
// else a logged 500 with a generic body.
func respondError(c *gin.Context, err error, notFoundMessage string) {
	var validation services.ValidationError
	var transition *services.TransitionError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &transition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    transition.From,
			"requested":         transition.To,
			"reason":            transition.Err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(transition.From),
		})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
