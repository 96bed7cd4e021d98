// apps/go-scorer/internal/config/config.go
//
// Process configuration, read once at startup.
// A .env file in the working directory is loaded first (development only);
// real environment variables always win over it.
//
// Environment variables:
//   PORT, LOG_LEVEL, LOG_FORMAT, DB_PATH, JWT_SECRET, JWT_EXPIRES_DAYS,
//   COOKIE_NAME, CLIENT_ORIGIN, NODE_ENV, DAILY_SALT, WORDS_ANSWERS_FILE,
//   REQUEST_TIMEOUT, MAX_GUESSES

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every tunable of the scoring service.
type Config struct {
	Port           string
	LogLevel       string
	LogFormat      string // "json" | "console"
	DBPath         string
	JWTSecret      string
	JWTExpiresDays int
	CookieName     string
	ClientOrigin   string
	Production     bool
	DailySalt      string
	AnswersFile    string // empty → embedded answer list
	RequestTimeout time.Duration
	MaxGuesses     int
}

// Load reads .env (if present) and the environment, applying defaults.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	c := Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		DBPath:       getEnv("DB_PATH", "./data/app.db"),
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		CookieName:   getEnv("COOKIE_NAME", "wordle_token"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:   os.Getenv("NODE_ENV") == "production",
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		AnswersFile:  os.Getenv("WORDS_ANSWERS_FILE"),
	}

	var err error
	if c.JWTExpiresDays, err = envInt("JWT_EXPIRES_DAYS", 14); err != nil {
		return Config{}, err
	}
	if c.MaxGuesses, err = envInt("MAX_GUESSES", 6); err != nil {
		return Config{}, err
	}
	if c.RequestTimeout, err = envDuration("REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	return c, nil
}

// TokenTTL is the JWT lifetime.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiresDays) * 24 * time.Hour
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("config: %s must be a positive integer, got %q", k, v)
	}
	return n, nil
}

func envDuration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("config: %s must be a positive duration, got %q", k, v)
	}
	return d, nil
}
