// Package config loads application configuration from environment variables.
// A .env file in the working directory is read first (if present) so local
// development does not require exporting variables by hand.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The HTTP port stays a string because it is only
// ever concatenated into a listen address.
type Config struct {
	Env         string // application environment (e.g. "dev", "prod")
	Port        string // HTTP port to listen on
	DBPath      string // path to the SQLite database file (":memory:" allowed)
	OMDbAPIKey  string // API key for the movie metadata service
	OMDbBaseURL string // metadata service base URL (optional override)
}

// Load reads configuration values from the environment and returns a Config.
// Required variables are enforced by must() and missing values cause the
// program to exit with a fatal log message.
func Load() Config {
	// A missing .env file simply means plain env vars.
	_ = godotenv.Load()

	return Config{
		Env:         must("APP_ENV"),
		Port:        must("APP_PORT"),
		DBPath:      must("DB_PATH"),
		OMDbAPIKey:  must("OMDB_API_KEY"),
		OMDbBaseURL: os.Getenv("OMDB_BASE_URL"), // empty -> client default
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
