package config

import "time"

// RateLimitKey selects which sender attribute the contact rate limit is
// counted against.
type RateLimitKey string

const (
	RateLimitByEmail  RateLimitKey = "email"
	RateLimitByRemote RateLimitKey = "remote_addr"
)

// ContactSettings carries the tunable bounds of the contact intake pipeline.
// The defaults match the persistence-layer limits.
type ContactSettings struct {
	SubjectMax      int
	RateLimitMax    int
	RateLimitWindow time.Duration
	RateLimitKey    RateLimitKey
}

func NewContactSettings(c map[string]string) ContactSettings {
	key := RateLimitByEmail
	if RateLimitKey(GetString(c, "CONTACT_RATE_LIMIT_KEY", string(RateLimitByEmail))) == RateLimitByRemote {
		key = RateLimitByRemote
	}

	return ContactSettings{
		SubjectMax:      GetInt(c, "CONTACT_SUBJECT_MAX", 150),
		RateLimitMax:    GetInt(c, "CONTACT_RATE_LIMIT_MAX", 3),
		RateLimitWindow: GetDuration(c, "CONTACT_RATE_LIMIT_WINDOW", time.Hour),
		RateLimitKey:    key,
	}
}
