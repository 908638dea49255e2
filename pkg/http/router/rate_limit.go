package router

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const clientLimiterTTL = 3 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type clientLimiters struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	lastGC  time.Time
}

func newClientLimiters(limit rate.Limit, burst int) *clientLimiters {
	return &clientLimiters{
		clients: make(map[string]*clientLimiter),
		limit:   limit,
		burst:   burst,
		lastGC:  time.Now(),
	}
}

func (cl *clientLimiters) get(ip string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := time.Now()
	if now.Sub(cl.lastGC) > clientLimiterTTL {
		for k, c := range cl.clients {
			if now.Sub(c.lastSeen) > clientLimiterTTL {
				delete(cl.clients, k)
			}
		}
		cl.lastGC = now
	}

	c, ok := cl.clients[ip]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(cl.limit, cl.burst)}
		cl.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter
}
