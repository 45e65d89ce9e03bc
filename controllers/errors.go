package controllers

import (
	"errors"
	"net/http"

	"github.com/carlosmnz/bingo-salas-backend/game"
	"github.com/gin-gonic/gin"
)

// respondError translates engine errors into HTTP responses. Anything the
// engine doesn't recognize is a 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrRoomNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrUnauthorized),
		errors.Is(err, game.ErrCardNotOwned):
		status = http.StatusForbidden
	case errors.Is(err, game.ErrInsufficientBalance):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrRoomUnavailable),
		errors.Is(err, game.ErrRoomFull),
		errors.Is(err, game.ErrInvalidState),
		errors.Is(err, game.ErrAlreadySettled),
		errors.Is(err, game.ErrGameExhausted):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// currentUser pulls the authenticated user id the platform attests via
// header. Auth itself lives outside this service.
func currentUser(c *gin.Context) (string, bool) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing X-User-ID header"})
		return "", false
	}
	return userID, true
}
