package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Backend
	APIBaseURL         string `mapstructure:"API_BASE_URL"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`

	// App
	Env string `mapstructure:"APP_ENV"` // development | production

	// Single string token persisted under this path
	TokenPath string `mapstructure:"TOKEN_PATH"`

	// Reports
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`
}

// HTTPTimeout returns the configured transport timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 15)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("TOKEN_PATH", defaultTokenPath())
	viper.SetDefault("PDF_STORAGE_PATH", defaultStoragePath("reportes"))

	// Optional .env file for local development, missing is fine
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultTokenPath() string {
	return filepath.Join(configDir(), "token")
}

func defaultStoragePath(sub string) string {
	return filepath.Join(configDir(), sub)
}

func configDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "inventario")
}
