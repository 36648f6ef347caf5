package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	DBPath       string
	UploadDir    string
	GroqEndpoint string
	GroqAPIKey   string
	GroqModel    string
	CORSOrigin   string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:         get("PORT", "8090"),
		DBPath:       get("DB_PATH", "docqa.db"),
		UploadDir:    get("UPLOAD_DIR", "uploads"),
		GroqEndpoint: get("GROQ_ENDPOINT", "https://api.groq.com/openai"),
		GroqAPIKey:   get("GROQ_API_KEY", ""),
		GroqModel:    get("GROQ_MODEL", "openai/gpt-oss-20b"),
		CORSOrigin:   get("CORS_ORIGIN", "http://localhost:5173"),
	}

	redacted := cfg
	if redacted.GroqAPIKey != "" {
		redacted.GroqAPIKey = "***"
	}
	log.Printf("[cfg] %+v", redacted)
	return cfg
}
