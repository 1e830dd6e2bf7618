package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// TTL settings for different entity types. SessionTTL doubles as
	// the saved-game retention window: a session Redis expires is a
	// session the player can no longer resume.
	GuestAccountTTL time.Duration
	SessionTTL      time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:             "redis://localhost:6379",
		PoolSize:        10,
		MinIdleConns:    2,
		GuestAccountTTL: 24 * time.Hour,
		SessionTTL:      7 * 24 * time.Hour,
	}
}
