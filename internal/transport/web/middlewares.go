package web

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func (s *Server) loggerMiddleware() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now().UTC()

			requestID := uuid.NewString()
			w.Header().Set("X-Request-Id", requestID)
			r = r.WithContext(NewContextWithRequestID(r.Context(), requestID))

			next.ServeHTTP(w, r)

			var traceID string

			if sc := trace.SpanContextFromContext(r.Context()); sc.IsValid() {
				traceID = sc.TraceID().String()
			}

			s.l.Info("Request handled",
				zap.String("type", "access"),
				zap.String("method", r.Method),
				zap.String("url", r.URL.Path),
				zap.String("proto", r.Proto),
				zap.String("userAgent", r.Header.Get("User-Agent")),
				zap.String("requestID", requestID),
				zap.String("traceID", traceID),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}

func (s *Server) recoverMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if re := recover(); re != nil {
					err, ok := re.(error)
					if !ok {
						err = fmt.Errorf("%v: %w", re, ErrPanic)
					}

					requestID, _ := RequestIDFromContext(r.Context())

					s.l.Error("Handler panicked",
						zap.String("url", r.URL.Path),
						zap.String("requestID", requestID),
						zap.Error(err),
					)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) rateLimitMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientKey(r)

			if !s.limiters.get(client).Allow() {
				s.l.Warn("Rate limit exceeded", zap.String("client", client))

				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) applyMiddlewares(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for _, middleware := range middlewares {
		h = middleware(h)
	}

	return h
}

// limiterStore keeps one token bucket per client, created lazily on the
// first request from that client.
type limiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newLimiterStore(perMinute, burst int) *limiterStore {
	if perMinute <= 0 {
		perMinute = 60
	}

	if burst <= 0 {
		burst = 1
	}

	return &limiterStore{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
	}
}

func (s *limiterStore) get(client string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, ok := s.limiters[client]
	if !ok {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters[client] = limiter
	}

	return limiter
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
