package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first; real environment variables win over
// it, and absence of the file is not an error.
//
// Recognized variables:
//
//	APPTRACK_DB         path of the local database file
//	APPTRACK_LOG_LEVEL  minimum log level
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("APPTRACK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("APPTRACK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
