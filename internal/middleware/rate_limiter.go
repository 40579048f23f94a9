package middleware

import (
	"sync"
	"time"
)

// RateLimiter caps how many events a single user may feed into the quiz
// per window. Chat bots are a popular flood target; exceeding events are
// dropped before they reach the controller.
type RateLimiter struct {
	userLimits map[int64]*userLimit
	mu         sync.Mutex

	maxRequests int
	window      time.Duration
}

type userLimit struct {
	requests  int
	resetTime time.Time
}

func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		userLimits:  make(map[int64]*userLimit),
		maxRequests: maxRequests,
		window:      window,
	}

	go rl.cleanup()

	return rl
}

// Allow reports whether the user is still within the limit and counts the
// event.
func (rl *RateLimiter) Allow(userID int64) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	limit, exists := rl.userLimits[userID]
	if !exists || now.After(limit.resetTime) {
		rl.userLimits[userID] = &userLimit{
			requests:  1,
			resetTime: now.Add(rl.window),
		}
		return true
	}

	if limit.requests >= rl.maxRequests {
		return false
	}

	limit.requests++
	return true
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for userID, limit := range rl.userLimits {
			if now.After(limit.resetTime) {
				delete(rl.userLimits, userID)
			}
		}
		rl.mu.Unlock()
	}
}
