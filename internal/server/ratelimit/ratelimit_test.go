package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func testConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    10,
		DefaultWindow:   10 * time.Second,
		IdleTTL:         time.Hour,
		Whitelist:       map[string]bool{"10.0.0.1": true},
		Blacklist:       map[string]bool{"10.0.0.2": true},
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

func TestTokenBucket_BurstThenDeny(t *testing.T) {
	now := time.Now()
	bucket := newTokenBucket(10, 1.0, now)

	for i := 0; i < 10; i++ {
		allowed, _, _ := bucket.take(now)
		assert.True(t, allowed, "request %d", i+1)
	}
	allowed, remaining, _ := bucket.take(now)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestTokenBucket_Refill(t *testing.T) {
	now := time.Now()
	bucket := newTokenBucket(2, 1.0, now)
	bucket.take(now)
	bucket.take(now)

	allowed, _, _ := bucket.take(now.Add(1100 * time.Millisecond))
	assert.True(t, allowed)

	allowed, _, full := bucket.take(now.Add(1100 * time.Millisecond))
	assert.False(t, allowed)
	assert.True(t, full.After(now.Add(1100*time.Millisecond)))
}

func TestLimiter_DefaultLimit(t *testing.T) {
	clock := newFakeClock()
	l := newLimiter(testConfig(), clock.Now)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("192.0.2.1", "/our-companies", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
	}

	allowed, info := l.Allow("192.0.2.1", "/our-companies", "GET")
	assert.False(t, allowed)
	assert.Equal(t, time.Second, info.RetryAfter)

	clock.Advance(time.Second)
	allowed, _ = l.Allow("192.0.2.1", "/our-companies", "GET")
	assert.True(t, allowed)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	clock := newFakeClock()
	l := newLimiter(testConfig(), clock.Now)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		l.Allow("192.0.2.1", "/", "GET")
	}
	allowed, _ := l.Allow("192.0.2.9", "/", "GET")
	assert.True(t, allowed)
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	clock := newFakeClock()
	l := newLimiter(testConfig(), clock.Now)
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("192.0.2.1", "/ws/viewport", "GET")
		require.True(t, allowed)
		assert.Equal(t, 30, info.Limit)
	}
	allowed, _ := l.Allow("192.0.2.1", "/ws/viewport", "GET")
	assert.False(t, allowed, "websocket burst is 5")
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	l := newLimiter(testConfig(), newFakeClock().Now)
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("192.0.2.1", "/health", "GET")
		require.True(t, allowed)
	}
	assert.Equal(t, 0, l.Len())
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	l := newLimiter(testConfig(), newFakeClock().Now)
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/", "GET")
		require.True(t, allowed)
	}

	allowed, _ := l.Allow("10.0.0.2", "/", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l := newLimiter(&Config{Enabled: false}, newFakeClock().Now)
	defer l.Stop()

	for i := 0; i < 1000; i++ {
		allowed, _ := l.Allow("192.0.2.1", "/", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_EvictIdle(t *testing.T) {
	clock := newFakeClock()
	l := newLimiter(testConfig(), clock.Now)
	defer l.Stop()

	l.Allow("192.0.2.1", "/", "GET")
	l.Allow("192.0.2.2", "/", "GET")
	require.Equal(t, 2, l.Len())

	clock.Advance(30 * time.Minute)
	l.Allow("192.0.2.2", "/", "GET")
	clock.Advance(31 * time.Minute)

	assert.Equal(t, 1, l.evictIdle())
	assert.Equal(t, 1, l.Len())
}

func TestLimiter_Concurrent(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultLimit = 100
	l := newLimiter(cfg, newFakeClock().Now)
	defer l.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Allow("192.0.2.1", "/", "GET"); ok {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowedCount)
}

func TestNewLimiter_NilConfig(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()

	allowed, info := l.Allow("192.0.2.1", "/", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 600, info.Limit)
}

func TestLimiter_StopTwice(t *testing.T) {
	l := NewLimiter(nil)
	l.Stop()
	assert.NotPanics(t, l.Stop)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/images/", Method: "GET", Limit: 1},
		{Path: "/images/logos/", Method: "GET", Limit: 2},
		{Path: "/ws/viewport", Method: "GET", Limit: 3},
	}

	tests := []struct {
		path, method string
		want         int
	}{
		{"/ws/viewport", "GET", 3},
		{"/images/kaj-logo.png", "GET", 1},
		{"/images/logos/a.png", "GET", 2},
		{"/ws/viewport", "POST", -1},
		{"/", "GET", -1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.want < 0 {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Limit)
		})
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_WHITELIST", "127.0.0.1, ::1")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.True(t, cfg.Whitelist["127.0.0.1"])
	assert.True(t, cfg.Whitelist["::1"])
	assert.NotEmpty(t, cfg.EndpointConfigs)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}
