// Package ratelimit provides per-client request limiting for the match API
// using the token bucket algorithm.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds rate limiter settings.
type Config struct {
	Capacity   int     // burst capacity per client
	RefillRate float64 // tokens per second
	// Idle buckets older than CleanupAge are dropped by the cleanup pass.
	CleanupAge time.Duration
}

// LoadConfig reads limiter settings from the environment, falling back to
// defaults generous enough for interactive use but tight enough to protect
// batch ranking endpoints.
func LoadConfig() Config {
	cfg := Config{
		Capacity:   30,
		RefillRate: 10,
		CleanupAge: 10 * time.Minute,
	}
	if v := os.Getenv("RATE_LIMIT_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Capacity = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_REFILL_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RefillRate = f
		}
	}
	return cfg
}

// bucket is one client's token bucket.
type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// Limiter manages token buckets for multiple clients.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  Config
	stop    chan struct{}
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(cfg Config) *Limiter {
	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  cfg,
		stop:    make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow consumes one token for the client if available.
// Remaining reports the tokens left after the call.
func (l *Limiter) Allow(clientID string) (allowed bool, remaining int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[clientID]
	now := time.Now()
	if !ok {
		b = &bucket{tokens: float64(l.config.Capacity), lastRefill: now}
		l.buckets[clientID] = b
	}

	// Refill based on elapsed time, capped at capacity.
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens += elapsed * l.config.RefillRate
	if b.tokens > float64(l.config.Capacity) {
		b.tokens = float64(l.config.Capacity)
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true, int(b.tokens)
	}
	return false, 0
}

// Stop terminates the cleanup loop.
func (l *Limiter) Stop() {
	close(l.stop)
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()
	cutoff := time.Now().Add(-l.config.CleanupAge)
	for id, b := range l.buckets {
		if b.lastRefill.Before(cutoff) {
			delete(l.buckets, id)
		}
	}
}
