package routes

import (
	"github.com/carlosmnz/bingo-salas-backend/controllers"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// ----------------------
	// User routes
	// ----------------------
	api.POST("/users", controllers.RegisterUser)
	api.GET("/users/:id", controllers.GetUser)
	api.GET("/users/:id/cards", controllers.GetUserCards)
	api.GET("/users/:id/transactions", controllers.ListTransactions)

	// ----------------------
	// Room routes
	// ----------------------
	api.GET("/rooms", controllers.ListRooms)
	api.POST("/rooms", controllers.CreateRoom)
	api.GET("/rooms/:id", controllers.GetRoom)
	api.POST("/rooms/:id/join", controllers.JoinRoom)
	api.POST("/rooms/:id/start", controllers.StartGame)
	api.POST("/rooms/:id/draw", controllers.DrawNumber)
	api.POST("/rooms/:id/claim", controllers.ClaimWin)
	api.POST("/rooms/:id/cancel", controllers.CancelRoom)

	// ----------------------
	// Token routes
	// ----------------------
	api.POST("/deposit", controllers.Deposit)
	api.POST("/withdraw", controllers.Withdraw)
}
