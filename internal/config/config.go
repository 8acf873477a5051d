package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from its environment. It is
// built once in main and passed down; request-handling code never touches
// os.Getenv.
type Config struct {
	ListenAddr        string
	DBPath            string
	AdminPasswordHash string
	RedisAddr         string
	Env               string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ListenAddr:        getenv("LISTEN_ADDR", ":8080"),
		DBPath:            getenv("DB_PATH", "urls.db"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		Env:               getenv("APP_ENV", "development"),
	}
}

// Validate checks the fields the HTTP server cannot run without. The manage
// CLI only needs DBPath and skips this.
func (c Config) Validate() error {
	if c.AdminPasswordHash == "" {
		return errors.New("ADMIN_PASSWORD_HASH not set (generate one with: manage hash <password>)")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
