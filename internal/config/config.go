package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Geo      GeoConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

// APIKeys holds provider credentials. The JWT signing secret is read from the
// environment directly by serverutils, matching how the middleware runs.
type APIKeys struct {
	Yelp string
}

type AIConfig struct {
	LLMProvider    string // "openai" (LiteLLM-compatible) or "ollama"
	LLMModel       string
	LiteLLMBaseURL string
	LiteLLMAPIKey  string
	OllamaBaseURL  string
}

type GeoConfig struct {
	BaseURL         string
	DefaultLocation string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			Yelp: getEnv("YELP_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:    getEnv("LLM_PROVIDER", "openai"),
			LLMModel:       getEnv("LITELLM_MODEL", "openai.gpt-4o"),
			LiteLLMBaseURL: getEnv("LITELLM_BASE_URL", "https://api.ai.it.cornell.edu"),
			LiteLLMAPIKey:  getEnv("LITELLM_API_KEY", ""),
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Geo: GeoConfig{
			BaseURL:         getEnv("GEOIP_BASE_URL", "http://ip-api.com/json"),
			DefaultLocation: getEnv("DEFAULT_LOCATION", "Ithaca, NY"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
