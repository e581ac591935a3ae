package ingestion

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterIdleTimeout = 10 * time.Minute

// DeviceLimiter applies a token bucket per device.
type DeviceLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*deviceLimit
	rate      rate.Limit
	burst     int
	lastPrune time.Time
	now       func() time.Time
}

type deviceLimit struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewDeviceLimiter(perSecond float64, burst int) *DeviceLimiter {
	if burst < 1 {
		burst = 1
	}

	return &DeviceLimiter{
		limiters: make(map[string]*deviceLimit),
		rate:     rate.Limit(perSecond),
		burst:    burst,
		now:      time.Now,
	}
}

func (l *DeviceLimiter) Allow(deviceID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	d, ok := l.limiters[deviceID]
	if !ok {
		d = &deviceLimit{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[deviceID] = d
	}
	d.lastSeen = now

	return d.limiter.AllowN(now, 1)
}

func (l *DeviceLimiter) prune(now time.Time) {
	if now.Sub(l.lastPrune) < time.Minute {
		return
	}
	l.lastPrune = now

	for id, d := range l.limiters {
		if now.Sub(d.lastSeen) > limiterIdleTimeout {
			delete(l.limiters, id)
		}
	}
}
