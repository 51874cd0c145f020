package config

import (
	"strings"
	"time"
)

// RateLimitConfig drives the token bucket on public form endpoints. It only
// takes effect when a Redis client is configured.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	Prefix         string
}

func LoadRateLimitConfig() RateLimitConfig {
	def := RateLimitConfig{
		Enabled:        EnvBool("RATE_LIMIT_ENABLED", true),
		Capacity:       EnvInt("RATE_LIMIT_CAPACITY", 5),
		RefillTokens:   EnvInt("RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval: EnvDur("RATE_LIMIT_REFILL_INTERVAL", time.Minute),
		TTL:            EnvDur("RATE_LIMIT_TTL", 30*time.Minute),
		Prefix:         EnvStr("RATE_LIMIT_PREFIX", "rl"),
	}
	if def.Capacity < 1 {
		def.Capacity = 1
	}
	if def.RefillTokens < 1 {
		def.RefillTokens = 1
	}
	if def.RefillInterval <= 0 {
		def.RefillInterval = time.Minute
	}
	if minTTL := 5 * def.RefillInterval; def.TTL < minTTL {
		def.TTL = minTTL
	}
	return def
}

// CacheConfig drives the Redis response cache on public GET endpoints.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      EnvBool("CACHE_ENABLED", true),
		TTL:          EnvDur("CACHE_TTL", 5*time.Minute),
		Prefix:       strings.TrimSuffix(EnvStr("CACHE_PREFIX", "cache"), ":"),
		MaxBodyBytes: EnvInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
