package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	// MatchThreshold is the score percentage (0..100) a consultant needs to
	// land in the shortlist's matching bucket. The default of 1 means any
	// found keyword counts as matching.
	MatchThreshold int

	// UploadDir is where submitted resume files are kept.
	UploadDir string

	// OpenRouter settings for optional LLM-backed feedback. Feedback falls
	// back to the deterministic template when the key is empty.
	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "benchboard"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),

		MatchThreshold: getEnvInt("MATCH_THRESHOLD", 1),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),

		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "qwen/qwen2.5-32b-instruct"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "benchboard"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
