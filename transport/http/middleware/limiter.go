package middleware

import (
	"net"
	"net/http"
	"repnowait/shared"
	"repnowait/shared/cache"
	"repnowait/shared/constant"
	"repnowait/transport/http/response"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownUserAgent  = "unknown"
)

// RateLimit counts requests per client. Redis holds a fixed window shared by every instance when the
// cache is enabled; otherwise each instance keeps a token bucket per client.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(writer, request)

				return
			}

			if !a.config.Cache.Enable {
				if !a.limiter.allow(clientIP(request)) {
					response.WithRequestLimitExceeded(writer)

					return
				}

				next.ServeHTTP(writer, request)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds
			cacheKey := shared.CacheKey(cacheKeyRateLimit, clientIP(request), userAgent(request))

			var count int

			err := a.cache.Get(request.Context(), cacheKey, &count)
			if err != nil {
				if !cache.IsMiss(err) {
					log.Warn().Err(err).Msg("rate limiter cache unavailable, request allowed")
					next.ServeHTTP(writer, request)

					return
				}

				count = 1
			} else {
				count++
			}

			if count > maxReqs {
				response.WithRequestLimitExceeded(writer)

				return
			}

			if err := a.cache.Save(request.Context(), cacheKey, count, windowSecs); err != nil {
				next.ServeHTTP(writer, request)

				return
			}

			writer.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			writer.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			writer.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(writer, request)
		})
	}
}

func userAgent(request *http.Request) string {
	ua := request.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = unknownUserAgent
	}

	return ua
}

func clientIP(request *http.Request) string {
	if xff := request.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		// first hop is the client
		if first, _, found := strings.Cut(xff, ","); found {
			return strings.TrimSpace(first)
		}

		return strings.TrimSpace(xff)
	}

	if xri := request.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}

	return host
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorLimiter is the in-process fallback: one token bucket per client, refilled so that
// maxRequests are allowed per window.
type visitorLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rate      rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
}

func newVisitorLimiter(maxRequests, windowSeconds int) *visitorLimiter {
	maxRequests = max(maxRequests, 1)
	window := time.Duration(max(windowSeconds, 1)) * time.Second

	return &visitorLimiter{
		visitors:  map[string]*visitor{},
		rate:      rate.Every(window / time.Duration(maxRequests)),
		burst:     maxRequests,
		ttl:       window * 3,
		lastSweep: time.Now(),
	}
}

func (l *visitorLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	if now.Sub(l.lastSweep) > l.ttl {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.ttl {
				delete(l.visitors, k)
			}
		}

		l.lastSweep = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[key] = v
	}

	v.lastSeen = now

	return v.limiter.Allow()
}
