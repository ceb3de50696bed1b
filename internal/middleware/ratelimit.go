package middleware

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/loterias-lab/backend/pkg/errorx"
	"github.com/loterias-lab/backend/pkg/router"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"github.com/puzpuzpuz/xsync"
	"golang.org/x/time/rate"
)

const minLimiterIdleTimeout = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// RateLimiter keeps a token bucket per user, anonymous requests share a bucket
// per remote address. Buckets idle for longer than it takes to refill them
// are dropped, so a returning user gets the same full bucket a kept one
// would have.
type RateLimiter struct {
	visitors    *xsync.MapOf[string, *visitor]
	rate        rate.Limit
	burst       int
	idleTimeout time.Duration
	lastSweep   atomic.Int64
}

func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	idleTimeout := minLimiterIdleTimeout
	if requestsPerSecond > 0 {
		refill := time.Duration(float64(burst) / requestsPerSecond * float64(time.Second))
		if refill > idleTimeout {
			idleTimeout = refill
		}
	}

	rl := &RateLimiter{
		visitors:    xsync.NewMapOf[*visitor](),
		rate:        rate.Limit(requestsPerSecond),
		burst:       burst,
		idleTimeout: idleTimeout,
	}
	rl.lastSweep.Store(time.Now().UnixNano())

	return rl
}

func (rl *RateLimiter) allow(key string, now time.Time) bool {
	v, ok := rl.visitors.Load(key)
	if !ok {
		v, _ = rl.visitors.LoadOrStore(key, &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)})
	}
	v.lastSeen.Store(now.UnixNano())

	last := rl.lastSweep.Load()
	if now.Sub(time.Unix(0, last)) > rl.idleTimeout && rl.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		rl.sweep(now)
	}

	return v.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.visitors.Range(func(key string, v *visitor) bool {
		if now.Sub(time.Unix(0, v.lastSeen.Load())) > rl.idleTimeout {
			rl.visitors.Delete(key)
		}
		return true
	})
}

func (rl *RateLimiter) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if rl.rate <= 0 {
			return nil, nil
		}

		key := xcontext.RequestUserID(ctx)
		if key == "" {
			if req := xcontext.HTTPRequest(ctx); req != nil {
				key = req.RemoteAddr
			}
		}

		if !rl.allow(key, time.Now()) {
			return nil, errorx.New(errorx.TooManyRequests, "Too many requests, try again later")
		}

		return nil, nil
	}
}
