package main

import (
	"log"

	"github.com/carlosmnz/bingo-salas-backend/config"
)

func main() {
	cfg := config.Load()
	db := config.SetupDatabase(cfg.DatabaseURL) // connects + migrates
	_ = db
	log.Println("✅ Database migration completed successfully")
}
