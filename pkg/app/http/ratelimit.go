package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apperrors "github.com/chainsafe/swap-offers/pkg/app/errors"
)

// KeyFunc derives the rate limiting key of a request.
type KeyFunc func(r *http.Request) string

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-client token bucket limiter. Idle clients are evicted
// lazily once they have not been seen for idleTTL.
type RateLimiter struct {
	perSecond rate.Limit
	burst     int
	idleTTL   time.Duration
	keyFn     KeyFunc
	logger    *zap.Logger

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter creates a limiter allowing requestsPerMinute with the given
// burst per key. A nil keyFn keys on the client IP.
func NewRateLimiter(requestsPerMinute float64, burst int, idleTTL time.Duration, keyFn KeyFunc, logger *zap.Logger) *RateLimiter {
	perSecond := requestsPerMinute / 60.0
	if perSecond <= 0 {
		perSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	if keyFn == nil {
		keyFn = ClientIP
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateLimiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		idleTTL:   idleTTL,
		keyFn:     keyFn,
		logger:    logger,
		visitors:  make(map[string]*visitor),
		now:       time.Now,
	}
}

// Middleware rejects requests over the limit with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rl.keyFn(r)
		limiter := rl.limiter(key)

		if !limiter.Allow() {
			rl.logger.Debug("rate limit exceeded", zap.String("key", key), zap.String("path", r.URL.Path))
			w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
			DefaultErrorHandler(w, apperrors.TooManyRequestsError("rate limit exceeded"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > rl.idleTTL {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) > rl.idleTTL {
				delete(rl.visitors, k)
			}
		}
		rl.lastSweep = now
	}

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.perSecond, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (rl *RateLimiter) retryAfterSeconds() int {
	secs := int(1 / float64(rl.perSecond))
	if secs < 1 {
		secs = 1
	}
	return secs
}

// ClientIP returns the host part of the request's remote address. Run chi's
// RealIP middleware first when behind a proxy.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
