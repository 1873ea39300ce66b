package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	c := map[string]string{
		"NAME":     "portfolio",
		"PORT":     "9000",
		"BAD_INT":  "nine",
		"ENABLED":  "true",
		"INTERVAL": "90s",
	}

	assert.Equal(t, "portfolio", GetString(c, "NAME", "fallback"))
	assert.Equal(t, "fallback", GetString(c, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "NAME", "fallback"))

	assert.Equal(t, 9000, GetInt(c, "PORT", 8080))
	assert.Equal(t, 8080, GetInt(c, "BAD_INT", 8080))
	assert.Equal(t, 8080, GetInt(c, "MISSING", 8080))

	assert.True(t, GetBool(c, "ENABLED", false))
	assert.False(t, GetBool(c, "MISSING", false))

	assert.Equal(t, 90*time.Second, GetDuration(c, "INTERVAL", time.Minute))
	assert.Equal(t, time.Minute, GetDuration(c, "MISSING", time.Minute))
}

func TestNewContactSettingsDefaults(t *testing.T) {
	s := NewContactSettings(map[string]string{})
	assert.Equal(t, 150, s.SubjectMax)
	assert.Equal(t, 3, s.RateLimitMax)
	assert.Equal(t, time.Hour, s.RateLimitWindow)
	assert.Equal(t, RateLimitByEmail, s.RateLimitKey)
}

func TestNewContactSettingsOverrides(t *testing.T) {
	s := NewContactSettings(map[string]string{
		"CONTACT_SUBJECT_MAX":       "80",
		"CONTACT_RATE_LIMIT_MAX":    "5",
		"CONTACT_RATE_LIMIT_WINDOW": "30m",
		"CONTACT_RATE_LIMIT_KEY":    "remote_addr",
	})
	assert.Equal(t, 80, s.SubjectMax)
	assert.Equal(t, 5, s.RateLimitMax)
	assert.Equal(t, 30*time.Minute, s.RateLimitWindow)
	assert.Equal(t, RateLimitByRemote, s.RateLimitKey)
}
