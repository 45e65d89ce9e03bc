package controllers

import (
	"net/http"

	"github.com/carlosmnz/bingo-salas-backend/services"
	"github.com/gin-gonic/gin"
)

// ListRooms returns snapshots of every room, oldest first
func ListRooms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rooms": services.Rooms.ListRooms()})
}

// GetRoom returns one room snapshot
func GetRoom(c *gin.Context) {
	snap, err := services.Rooms.RoomSnapshot(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// CreateRoom opens a new room; stake/capacity default from config when omitted
func CreateRoom(c *gin.Context) {
	var req struct {
		StakePerCard int64 `json:"stake_per_card"`
		Capacity     int   `json:"capacity"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	snap := services.Rooms.CreateRoom(req.StakePerCard, req.Capacity)
	c.JSON(http.StatusCreated, snap)
}

// JoinRoom buys the caller a card against the room's stake
func JoinRoom(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	result, err := services.Rooms.JoinRoom(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// StartGame moves a full room into the draw phase (privileged callers only)
func StartGame(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	prize, err := services.Rooms.StartGame(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prize_total": prize})
}

// DrawNumber reveals the next number for an in-progress room
func DrawNumber(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	n, drawn, err := services.Rooms.DrawNumber(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drawn_number": n, "drawn_numbers": drawn})
}

// ClaimWin validates the caller's card; the first valid claim settles the room
func ClaimWin(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		CardID string `json:"card_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	won, prize, err := services.Rooms.ClaimWin(userID, c.Param("id"), req.CardID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := gin.H{"won": won}
	if won {
		resp["prize"] = prize
	}
	c.JSON(http.StatusOK, resp)
}

// CancelRoom voids a room that has not started and refunds all stakes
func CancelRoom(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := services.Rooms.CancelRoom(userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room canceled, stakes refunded"})
}
