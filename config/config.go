package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultCompletionURL = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel         = "llama-3.3-70b-versatile"
	defaultOCRLocale     = "ko"
	defaultRecipeCount   = 10
	defaultTempDir       = "tmp/uploads"
)

// Config holds all configuration for the application. It is resolved once at
// startup and passed explicitly into constructors; nothing below the config
// layer reads the process environment.
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Completion service configuration
	GroqAPIKey string
	GroqAPIURL string
	GroqModel  string

	// OCR sidecar configuration
	OCRBaseURL string
	OCRLocale  string

	// Number of recipes requested per recommendation call
	RecipeCount int

	// Scratch directory for uploaded images
	TempDir string
}

// Load creates a Config from environment variables, falling back to the
// documented defaults, and validates it.
func Load() (*Config, error) {
	apiKey, err := resolveAPIKey()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerHost:  getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		GroqAPIKey:  apiKey,
		GroqAPIURL:  getEnv("GROQ_API_URL", defaultCompletionURL),
		GroqModel:   getEnv("GROQ_MODEL", defaultModel),
		OCRBaseURL:  os.Getenv("OCR_BASE_URL"),
		OCRLocale:   getEnv("OCR_LOCALE", defaultOCRLocale),
		RecipeCount: defaultRecipeCount,
		TempDir:     getEnv("TEMP_DIR", defaultTempDir),
	}

	if countStr := os.Getenv("RECIPE_COUNT"); countStr != "" {
		count, err := strconv.Atoi(countStr)
		if err != nil {
			return nil, fmt.Errorf("invalid RECIPE_COUNT %q: %w", countStr, err)
		}
		cfg.RecipeCount = count
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// resolveAPIKey reads the completion-service key from GROQ_API_KEY, or from
// the file named by GROQ_API_KEY_FILE when running with mounted secrets.
func resolveAPIKey() (string, error) {
	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		return key, nil
	}

	keyFile := os.Getenv("GROQ_API_KEY_FILE")
	if keyFile == "" {
		return "", fmt.Errorf("GROQ_API_KEY or GROQ_API_KEY_FILE must be set")
	}

	keyBytes, err := os.ReadFile(keyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}

	key := strings.TrimSpace(string(keyBytes))
	if key == "" {
		return "", fmt.Errorf("API key file is empty")
	}
	return key, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
