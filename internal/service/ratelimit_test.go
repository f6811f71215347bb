package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives a KeyedLimiter deterministically.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
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

func newTestLimiter(clock *fakeClock) *KeyedLimiter {
	// Documented export baseline: 3 per 60s, 5-minute cooldown.
	l := NewKeyedLimiter(60*time.Second, 3, 5*time.Minute)
	l.now = clock.Now
	return l
}

func TestKeyedLimiter_FourthCallWithinWindowDenied(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(clock)
	key := "export_key:42"

	for i := 0; i < 3; i++ {
		res := l.Allow(key)
		require.True(t, res.Allowed, "attempt %d should pass", i+1)
		clock.Advance(5 * time.Second)
	}

	res := l.Allow(key)
	assert.False(t, res.Allowed)
	assert.Positive(t, res.RetryAfter, "denial must carry a retry hint")
	assert.Equal(t, 5*time.Minute, res.RetryAfter)
}

func TestKeyedLimiter_CooldownExpiryAllowsAgain(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(clock)
	key := "export_key:42"

	for i := 0; i < 4; i++ {
		l.Allow(key)
	}

	// Still inside the cooldown.
	clock.Advance(4 * time.Minute)
	res := l.Allow(key)
	assert.False(t, res.Allowed)
	assert.Equal(t, time.Minute, res.RetryAfter)

	// Past the cooldown.
	clock.Advance(61 * time.Second)
	res = l.Allow(key)
	assert.True(t, res.Allowed)
}

func TestKeyedLimiter_WindowResets(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(clock)
	key := "export_mnemonic:7"

	for i := 0; i < 3; i++ {
		require.True(t, l.Allow(key).Allowed)
	}

	clock.Advance(61 * time.Second)
	res := l.Allow(key)
	assert.True(t, res.Allowed, "a fresh window starts counting from zero")
	assert.Equal(t, 2, res.Remaining)
}

func TestKeyedLimiter_KeysAreIndependent(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(clock)

	for i := 0; i < 4; i++ {
		l.Allow("export_key:1")
	}

	assert.False(t, l.Allow("export_key:1").Allowed)
	assert.True(t, l.Allow("export_key:2").Allowed, "another tenant is unaffected")
	assert.True(t, l.Allow("withdraw:1").Allowed, "another class is unaffected")
}

func TestKeyedLimiter_Reset(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(clock)
	key := "market:9"

	for i := 0; i < 4; i++ {
		l.Allow(key)
	}
	require.False(t, l.Allow(key).Allowed)

	l.Reset(key)
	assert.True(t, l.Allow(key).Allowed)
}

func TestKeyedLimiter_ConcurrentSingleKey(t *testing.T) {
	l := NewKeyedLimiter(time.Minute, 50, time.Minute)
	key := "withdraw:3"

	var wg sync.WaitGroup
	allowed := make(chan bool, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- l.Allow(key).Allowed
		}()
	}
	wg.Wait()
	close(allowed)

	var passed int
	for ok := range allowed {
		if ok {
			passed++
		}
	}
	assert.Equal(t, 50, passed, "updates to a single key must be atomic")
}
