package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds server configuration. Values come from the environment
// (optionally seeded from a .env file); command-line flags override.
type Config struct {
	DBPath  string
	Addr    string
	LogPath string
}

// Defaults.
const (
	DefaultDBPath = "founddesk.sqlite3"
	DefaultAddr   = ":8080"
)

// Load reads configuration from the environment. If envFile is
// non-empty and exists, it is loaded first without overriding variables
// already set in the process environment.
func Load(envFile string) Config {
	if envFile != "" {
		// A missing .env file is not an error; the environment may be
		// configured directly.
		_ = godotenv.Load(envFile)
	}

	cfg := Config{
		DBPath:  os.Getenv("FOUNDDESK_DB"),
		Addr:    os.Getenv("FOUNDDESK_ADDR"),
		LogPath: os.Getenv("FOUNDDESK_LOG"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	return cfg
}
