// Package config loads bot settings from the process environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultStoragePath is the shopping list file used when STORAGE_PATH is
// unset. Relative to the working directory.
const DefaultStoragePath = "shopping-list.json"

// Config holds runtime settings.
type Config struct {
	// Token is the Telegram bot access token.
	Token string

	// StoragePath is the path of the serialized shopping list file.
	StoragePath string

	// Debug enables verbose logging.
	Debug bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; a missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}

	path := os.Getenv("STORAGE_PATH")
	if path == "" {
		path = DefaultStoragePath
	}

	return &Config{
		Token:       token,
		StoragePath: path,
		Debug:       os.Getenv("LOG_LEVEL") == "debug",
	}, nil
}
