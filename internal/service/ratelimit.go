package service

import (
	"sync"
	"time"

	"custodial-wallet-vault/internal/core/ports"
)

// KeyedLimiter is a fixed-window throttle with a cooldown once the window
// threshold is exceeded. One instance serves one operation class; keys are
// composite strings like "export_key:12345".
//
// State is process-local and in memory: a restart resets every window and
// cooldown. That is a documented trade-off, not a durable security boundary.
type KeyedLimiter struct {
	mu        sync.Mutex
	window    time.Duration
	threshold int
	cooldown  time.Duration
	entries   map[string]*limiterEntry
	now       func() time.Time
}

type limiterEntry struct {
	count         int
	windowStart   time.Time
	cooldownUntil time.Time
}

// NewKeyedLimiter creates a limiter allowing threshold attempts per window,
// then denying for cooldown.
func NewKeyedLimiter(window time.Duration, threshold int, cooldown time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		window:    window,
		threshold: threshold,
		cooldown:  cooldown,
		entries:   make(map[string]*limiterEntry),
		now:       time.Now,
	}
}

// Allow records an attempt against key and reports whether it may proceed.
// When denied, RetryAfter carries a positive hint.
func (l *KeyedLimiter) Allow(key string) ports.RateLimitResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok {
		e = &limiterEntry{windowStart: now}
		l.entries[key] = e
	}

	if e.cooldownUntil.After(now) {
		return ports.RateLimitResult{RetryAfter: e.cooldownUntil.Sub(now)}
	}

	if now.Sub(e.windowStart) >= l.window {
		e.count = 0
		e.windowStart = now
	}

	e.count++
	if e.count > l.threshold {
		e.cooldownUntil = now.Add(l.cooldown)
		e.count = 0
		e.windowStart = now
		return ports.RateLimitResult{RetryAfter: l.cooldown}
	}

	return ports.RateLimitResult{Allowed: true, Remaining: l.threshold - e.count}
}

// Reset drops all state for a key (used when an operator clears a tenant).
func (l *KeyedLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
}

var _ ports.RateLimiter = (*KeyedLimiter)(nil)
