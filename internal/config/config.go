// Package config provides configuration loading and validation for the
// resume screener.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the runtime configuration. Values come from the environment;
// a .env file may supply them via godotenv before Load runs.
type Config struct {
	Port        int    // HTTP listen port
	DatabaseURL string // PostgreSQL connection URL
	CompanyName string // Company name used in outreach emails

	SMTPHost       string // SMTP server hostname
	SMTPPort       int    // SMTP server port
	SenderEmail    string // From address for invitations
	SenderPassword string // SMTP password

	TFIDFMaxFeatures int  // Vocabulary cap for similarity scoring
	Debug            bool // Verbose logging
	LogJSON          bool // JSON log encoding
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        8080,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CompanyName: envOr("COMPANY_NAME", "Your Company Name"),

		SMTPHost:       envOr("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:       587,
		SenderEmail:    os.Getenv("SENDER_EMAIL"),
		SenderPassword: os.Getenv("SENDER_PASSWORD"),

		TFIDFMaxFeatures: 1000,
		Debug:            os.Getenv("DEBUG") == "true",
		LogJSON:          os.Getenv("LOG_JSON") == "true",
	}

	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return nil, err
	}
	if cfg.SMTPPort, err = envInt("SMTP_PORT", cfg.SMTPPort); err != nil {
		return nil, err
	}
	if cfg.TFIDFMaxFeatures, err = envInt("TFIDF_MAX_FEATURES", cfg.TFIDFMaxFeatures); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'PORT' must be between 1 and 65535")
	}
	if c.TFIDFMaxFeatures < 1 {
		return fmt.Errorf("config error: 'TFIDF_MAX_FEATURES' must be positive")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'DATABASE_URL' is required")
	}
	return nil
}

// EmailConfigured reports whether outreach email can be sent. A missing or
// placeholder sender address means invitations are disabled.
func (c *Config) EmailConfigured() bool {
	return c.SenderEmail != "" && c.SenderEmail != "your-email@gmail.com"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config error: '%s' must be an integer: %w", key, err)
	}
	return n, nil
}
