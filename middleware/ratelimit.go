// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/danielhkuo/premios/auth"
)

// idleLimiterTTL is how long an unused client limiter is kept
const idleLimiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
// IPs are hashed before they are stored.
type RateLimiter struct {
	mu         sync.Mutex
	clients    map[string]*clientLimiter
	limit      rate.Limit
	burst      int
	salt       string
	trustProxy bool
	now        func() time.Time
	lastSweep  time.Time
}

// NewRateLimiter keys clients by RemoteAddr, or by forwarding headers
// when trustProxy is set (see GetClientIP)
func NewRateLimiter(perSecond float64, burst int, salt string, trustProxy bool) *RateLimiter {
	return &RateLimiter{
		clients:    make(map[string]*clientLimiter),
		limit:      rate.Limit(perSecond),
		burst:      burst,
		salt:       salt,
		trustProxy: trustProxy,
		now:        time.Now,
	}
}

// Allow reports whether the client at ip may proceed now
func (l *RateLimiter) Allow(ip string) bool {
	key := auth.HashIP(ip, l.salt)

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	c, ok := l.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// sweep drops limiters idle for longer than idleLimiterTTL. Caller holds mu.
func (l *RateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < idleLimiterTTL {
		return
	}
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) > idleLimiterTTL {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}

// Wrap rejects requests over the limit with 429 Too Many Requests
func (l *RateLimiter) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := GetClientIP(r, l.trustProxy)
		if !l.Allow(ip) {
			slog.Warn("rate limit exceeded", "path", r.URL.Path)
			retry := 1.0
			if l.limit > 0 {
				retry = math.Ceil(1 / float64(l.limit))
			}
			w.Header().Set("Retry-After", strconv.Itoa(int(retry)))
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}
