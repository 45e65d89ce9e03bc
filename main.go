package main

import (
	"log"
	"net/http"
	"time"

	"github.com/carlosmnz/bingo-salas-backend/config"
	"github.com/carlosmnz/bingo-salas-backend/routes"
	"github.com/carlosmnz/bingo-salas-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// setupRouter initializes Gin routes and middleware
func setupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// WebSocket room snapshot feed
	r.GET("/ws/rooms/:id", services.HandleWebSocket)

	return r
}

func main() {
	// Load env variables
	cfg := config.Load()

	// Connect to database
	config.SetupDatabase(cfg.DatabaseURL)

	// Initialize in-memory room engine
	services.InitRoomService(cfg.Economic)

	router := setupRouter()

	log.Printf("🚀 Bingo rooms server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
