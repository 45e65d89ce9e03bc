package controllers

import (
	"net/http"

	"github.com/carlosmnz/bingo-salas-backend/config"
	"github.com/carlosmnz/bingo-salas-backend/models"
	"github.com/carlosmnz/bingo-salas-backend/services"
	"github.com/gin-gonic/gin"
)

// Deposit adds tokens to the caller's balance
func Deposit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Amount int64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	balance := services.Rooms.Deposit(userID, req.Amount)
	c.JSON(http.StatusCreated, gin.H{"balance": balance})
}

// Withdraw removes tokens from the caller's balance
func Withdraw(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Amount int64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	balance, err := services.Rooms.Withdraw(userID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"balance": balance})
}

// ListTransactions returns a user's token movement history
func ListTransactions(c *gin.Context) {
	id := c.Param("id")

	var txs []models.Transaction
	if err := config.DB.Where("user_id = ?", id).Order("created_at DESC").Find(&txs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, txs)
}
