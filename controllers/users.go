package controllers

import (
	"net/http"

	"github.com/carlosmnz/bingo-salas-backend/config"
	"github.com/carlosmnz/bingo-salas-backend/models"
	"github.com/carlosmnz/bingo-salas-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegisterUser creates a user record. Identity and auth live on the
// platform; this just seeds the local profile and token account.
func RegisterUser(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		ID:   uuid.NewString(),
		Name: req.Name,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser fetches a user together with their live token balance
func GetUser(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := config.DB.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// The ledger is authoritative; the row may lag behind it.
	user.Tokens = services.Rooms.Balance(user.ID)
	c.JSON(http.StatusOK, user)
}

// GetUserCards fetches all cards a user holds across rooms
func GetUserCards(c *gin.Context) {
	id := c.Param("id")

	var cards []models.Card
	if err := config.DB.Where("user_id = ?", id).Find(&cards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cards"})
		return
	}

	c.JSON(http.StatusOK, cards)
}
