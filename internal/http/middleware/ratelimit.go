package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	apierrors "github.com/pribylovaa/social-network/internal/errors"
)

// ErrTooManyRequests — превышен лимит запросов с IP. HTTP 429.
var ErrTooManyRequests = apierrors.TooManyRequests("too many requests from this ip, please try again later")

// IPLimiter — token bucket на каждый IP: requests запросов за window,
// вся квота доступна сразу.
type IPLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type visitor struct {
	lim  *rate.Limiter
	seen time.Time
}

// NewIPLimiter создаёт лимитер. requests <= 0 отключает ограничение.
func NewIPLimiter(requests int, window time.Duration) *IPLimiter {
	l := &IPLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Inf,
		burst:    requests,
		idle:     window,
		now:      time.Now,
	}

	if requests > 0 && window > 0 {
		l.limit = rate.Every(window / time.Duration(requests))
	}

	return l
}

// Allow списывает токен у ip.
func (l *IPLimiter) Allow(ip string) bool {
	if l.limit == rate.Inf {
		return true
	}

	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.idle {
		for k, v := range l.visitors {
			if now.Sub(v.seen) > l.idle {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{lim: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.seen = now

	return v.lim.AllowN(now, 1)
}

// RateLimit отвечает 429, когда IP исчерпал квоту. IP берётся из RemoteAddr
// (за прокси его подставляет chi middleware.RealIP).
func RateLimit(l *IPLimiter, errs apierrors.Writer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(clientIP(r)) {
				errs.WriteError(w, r, ErrTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
