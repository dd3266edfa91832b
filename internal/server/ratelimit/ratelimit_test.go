package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllow_WithinCapacity(t *testing.T) {
	l := NewLimiter(Config{Capacity: 3, RefillRate: 0.001, CleanupAge: time.Minute})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("client-a")
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, remaining := l.Allow("client-a")
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(Config{Capacity: 1, RefillRate: 0.001, CleanupAge: time.Minute})
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	assert.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	assert.False(t, allowed)

	allowed, _ = l.Allow("client-b")
	assert.True(t, allowed)
}

func TestAllow_RefillsOverTime(t *testing.T) {
	l := NewLimiter(Config{Capacity: 1, RefillRate: 100, CleanupAge: time.Minute})
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	assert.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	assert.False(t, allowed)

	time.Sleep(30 * time.Millisecond)
	allowed, _ = l.Allow("client-a")
	assert.True(t, allowed)
}

func TestCleanup_DropsIdleBuckets(t *testing.T) {
	l := NewLimiter(Config{Capacity: 1, RefillRate: 1, CleanupAge: time.Millisecond})
	defer l.Stop()

	l.Allow("client-a")
	time.Sleep(5 * time.Millisecond)
	l.cleanup()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.buckets)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "")
	t.Setenv("RATE_LIMIT_REFILL_RATE", "")

	cfg := LoadConfig()
	assert.Equal(t, 30, cfg.Capacity)
	assert.Equal(t, 10.0, cfg.RefillRate)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "5")
	t.Setenv("RATE_LIMIT_REFILL_RATE", "2.5")

	cfg := LoadConfig()
	assert.Equal(t, 5, cfg.Capacity)
	assert.Equal(t, 2.5, cfg.RefillRate)
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "not-a-number")
	t.Setenv("RATE_LIMIT_REFILL_RATE", "-3")

	cfg := LoadConfig()
	assert.Equal(t, 30, cfg.Capacity)
	assert.Equal(t, 10.0, cfg.RefillRate)
}
