package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Economic is the snapshot of the token economy settings. Rooms capture these
// values at creation/start time so a config change never shifts an amount
// mid-operation.
type Economic struct {
	StakePerCard int64 // tokens debited per card
	Capacity     int   // players per room
	PrizePercent int   // share of the pot paid to the winner
}

type Config struct {
	Port        string
	DatabaseURL string
	Economic    Economic
}

// Load reads .env plus environment variables and validates required vars
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	cfg := Config{
		Port:        getEnv("PORT", "4000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Economic: Economic{
			StakePerCard: int64(getEnvInt("STAKE_PER_CARD", 5)),
			Capacity:     getEnvInt("ROOM_CAPACITY", 10),
			PrizePercent: getEnvInt("PRIZE_PERCENT", 70),
		},
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("[FATAL] DATABASE_URL is required in .env or environment")
	}
	if cfg.Economic.StakePerCard <= 0 || cfg.Economic.Capacity <= 0 {
		log.Fatal("[FATAL] STAKE_PER_CARD and ROOM_CAPACITY must be positive")
	}
	if cfg.Economic.PrizePercent < 0 || cfg.Economic.PrizePercent > 100 {
		log.Fatal("[FATAL] PRIZE_PERCENT must be between 0 and 100")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("[FATAL] %s must be an integer, got %q", key, v)
	}
	return n
}
