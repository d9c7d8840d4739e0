package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "PORT", "WORDS_FILE", "MAX_ATTEMPTS", "REJECT_REPEATS",
		"DAILY_SALT", "JWT_SECRET", "JWT_EXPIRES_DAYS", "COOKIE_NAME", "CLIENT_ORIGIN", "DB_PATH", "APP_ENV"} {
		t.Setenv(k, "")
	}

	c := Load()
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, 6, c.MaxAttempts)
	assert.False(t, c.RejectRepeats)
	assert.Equal(t, 14*24*time.Hour, c.SessionTTL)
	assert.Equal(t, "wordle_session", c.CookieName)
	assert.Empty(t, c.DBPath)
	assert.False(t, c.Production)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAX_ATTEMPTS", "8")
	t.Setenv("REJECT_REPEATS", "true")
	t.Setenv("JWT_EXPIRES_DAYS", "1")
	t.Setenv("DB_PATH", "./data/results.db")
	t.Setenv("APP_ENV", "production")

	c := Load()
	assert.Equal(t, 8, c.MaxAttempts)
	assert.True(t, c.RejectRepeats)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, "./data/results.db", c.DBPath)
	assert.True(t, c.Production)
}

func TestLoadIgnoresGarbage(t *testing.T) {
	t.Setenv("MAX_ATTEMPTS", "lots")
	t.Setenv("REJECT_REPEATS", "maybe")

	c := Load()
	assert.Equal(t, 6, c.MaxAttempts)
	assert.False(t, c.RejectRepeats)
}
