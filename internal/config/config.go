// internal/config/config.go
//
// Process configuration read from the environment.
// godotenv.Load (called from main) makes a local `.env` file visible here.
//
// Environment variables (defaults in parentheses):
//   LOG_LEVEL (info)          zerolog level name
//   PORT (5175)               HTTP listen port
//   WORDS_FILE                vocabulary file; embedded list when empty
//   MAX_ATTEMPTS (6)          guesses per round
//   REJECT_REPEATS (false)    refuse a guess already made this round
//   DAILY_SALT (local_dev_salt)
//   JWT_SECRET (dev_secret_change_me)
//   JWT_EXPIRES_DAYS (14)
//   COOKIE_NAME (wordle_session)
//   CLIENT_ORIGIN (http://localhost:5173)
//   DB_PATH                   results log; disabled when empty
//   APP_ENV (development)     "production" turns on Secure cookies

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every setting the binaries use.
type Config struct {
	LogLevel      string
	Port          string
	WordsFile     string
	MaxAttempts   int
	RejectRepeats bool
	DailySalt     string
	JWTSecret     string
	SessionTTL    time.Duration
	CookieName    string
	ClientOrigin  string
	DBPath        string
	Production    bool
}

// Load reads the environment.
func Load() Config {
	return Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Port:          getEnv("PORT", "5175"),
		WordsFile:     os.Getenv("WORDS_FILE"),
		MaxAttempts:   getInt("MAX_ATTEMPTS", 6),
		RejectRepeats: getBool("REJECT_REPEATS", false),
		DailySalt:     getEnv("DAILY_SALT", "local_dev_salt"),
		JWTSecret:     getEnv("JWT_SECRET", "dev_secret_change_me"),
		SessionTTL:    time.Duration(getInt("JWT_EXPIRES_DAYS", 14)) * 24 * time.Hour,
		CookieName:    getEnv("COOKIE_NAME", "wordle_session"),
		ClientOrigin:  getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		DBPath:        os.Getenv("DB_PATH"),
		Production:    getEnv("APP_ENV", "development") == "production",
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

func getBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return def
}
