package server

import (
	"sync"
	"time"
)

// loginLimiter throttles sign-in attempts per key using a fixed window.
type loginLimiter struct {
	limit  int
	window time.Duration
	mu     sync.Mutex
	items  map[string]*loginWindow
}

type loginWindow struct {
	start time.Time
	count int
}

func newLoginLimiter(limit int, window time.Duration) *loginLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &loginLimiter{
		limit:  limit,
		window: window,
		items:  make(map[string]*loginWindow),
	}
}

func (l *loginLimiter) Allow(key string) bool {
	if key == "" {
		return false
	}

	now := time.Now().UTC()
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.items[key]
	if entry == nil || now.Sub(entry.start) > l.window {
		l.prune(now)
		entry = &loginWindow{start: now}
		l.items[key] = entry
	}

	if entry.count >= l.limit {
		return false
	}

	entry.count++
	return true
}

// prune drops expired windows so the map does not grow with every
// distinct client seen.
func (l *loginLimiter) prune(now time.Time) {
	for key, entry := range l.items {
		if now.Sub(entry.start) > l.window {
			delete(l.items, key)
		}
	}
}
