// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Three tiers protect the API: a loose general tier for catalog browsing, a
// tight tier for credential endpoints and a middle tier for file uploads.
// Token buckets are tracked per client IP.

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipRateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   rate.Limit
	burst   int
}

func newIPRateLimiter(limit rate.Limit, burst int) *ipRateLimiter {
	l := &ipRateLimiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		burst:   burst,
	}
	go l.sweep()
	return l
}

// sweep drops buckets idle for three minutes so the map does not grow with
// every IP that ever hit the API.
func (l *ipRateLimiter) sweep() {
	ticker := time.NewTicker(time.Minute)
	for range ticker.C {
		l.mu.Lock()
		for ip, b := range l.buckets {
			if time.Since(b.lastSeen) > 3*time.Minute {
				delete(l.buckets, ip)
			}
		}
		l.mu.Unlock()
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[ip] = b
	}
	b.lastSeen = time.Now()
	l.mu.Unlock()

	return b.limiter.Allow()
}

func (l *ipRateLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please slow down.",
			})
			return
		}
		c.Next()
	}
}

var (
	generalTier = newIPRateLimiter(rate.Limit(10), 20)            // catalog browsing
	authTier    = newIPRateLimiter(rate.Every(12*time.Second), 5) // login, register, refresh
	uploadTier  = newIPRateLimiter(rate.Every(6*time.Second), 10) // KYC documents, product images
)

func GeneralRateLimit() gin.HandlerFunc {
	return generalTier.middleware()
}

func AuthRateLimit() gin.HandlerFunc {
	return authTier.middleware()
}

func UploadRateLimit() gin.HandlerFunc {
	return uploadTier.middleware()
}
