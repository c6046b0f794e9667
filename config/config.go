package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string

	DBDriver   string // postgres|sqlite; empty picks postgres when DBHost is set
	DBHost     string
	DBName     string
	DBUser     string
	DBPassword string
	DBPort     string
	DBPath     string // sqlite file

	SpeechKey    string
	SpeechRegion string

	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string

	PriceTablePath string // optional CSV/XLSX override for the seeder
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
		Port:           get("PORT", "5000"),
		DBDriver:       get("DB_DRIVER", ""),
		DBHost:         get("DB_HOST", ""),
		DBName:         get("DB_NAME", "farmtomarket"),
		DBUser:         get("DB_USER", "postgres"),
		DBPassword:     get("DB_PASSWORD", ""),
		DBPort:         get("DB_PORT", "5432"),
		DBPath:         get("DB_PATH", "farmtomarket.db"),
		SpeechKey:      get("AZURE_SPEECH_KEY", ""),
		SpeechRegion:   get("AZURE_SPEECH_REGION", ""),
		LLMEndpoint:    get("LLM_ENDPOINT", ""),
		LLMAPIKey:      get("LLM_API_KEY", ""),
		LLMModel:       get("LLM_MODEL", "gpt-4o-mini"),
		PriceTablePath: get("PRICE_TABLE", ""),
	}
	log.Printf("[cfg] port=%s db=%s llm_model=%s", cfg.Port, cfg.DriverName(), cfg.LLMModel)
	return cfg
}

// DriverName resolves the effective database driver.
func (c AppConfig) DriverName() string {
	if c.DBDriver != "" {
		return c.DBDriver
	}
	if c.DBHost != "" {
		return "postgres"
	}
	return "sqlite"
}
