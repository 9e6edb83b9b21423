package config

import (
	"fmt"
	"strings"
)

// Validate checks that the configuration can actually run both pipelines.
func Validate(cfg *Config) error {
	var errors []string

	if cfg.GroqAPIKey == "" {
		errors = append(errors, "completion-service API key is required")
	}
	if cfg.GroqAPIURL == "" {
		errors = append(errors, "completion-service URL is required")
	}
	if cfg.GroqModel == "" {
		errors = append(errors, "completion-service model is required")
	}
	if cfg.OCRBaseURL == "" {
		errors = append(errors, "OCR_BASE_URL is required")
	}
	if cfg.OCRLocale == "" {
		errors = append(errors, "OCR locale is required")
	}
	if cfg.RecipeCount < 1 {
		errors = append(errors, fmt.Sprintf("recipe count must be at least 1, got %d", cfg.RecipeCount))
	}
	if cfg.TempDir == "" {
		errors = append(errors, "temp directory is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}
	return nil
}
