package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	Port        string
	SessionDB   string
	HTTPTimeout time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:3000/api"),
		Port:        getEnv("PORT", "5173"),
		SessionDB:   getEnv("SESSION_DB", "session.db"),
		HTTPTimeout: time.Duration(getEnvInt("HTTP_TIMEOUT", 15)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
