package http

import (
	"log/slog"
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	apperrors "cmicli/internal/errors"
	"cmicli/internal/infrastructure"
)

// RequestID attaches a UUID to every request's context so handler
// logs correlate.
func RequestID(next nethttp.Handler) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		ctx := infrastructure.WithRequestID(r.Context(), id)
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLogger logs one structured line per request.
func RequestLogger(logger *slog.Logger) func(nethttp.Handler) nethttp.Handler {
	return func(next nethttp.Handler) nethttp.Handler {
		return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: nethttp.StatusOK}
			next.ServeHTTP(ww, r)
			logger.InfoContext(r.Context(), "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)))
		})
	}
}

// RequestMetrics counts requests by matched route pattern and status
// code. Unmatched requests fall back to the raw path.
func RequestMetrics(metrics *Metrics) func(nethttp.Handler) nethttp.Handler {
	return func(next nethttp.Handler) nethttp.Handler {
		return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			ww := &statusWriter{ResponseWriter: w, status: nethttp.StatusOK}
			next.ServeHTTP(ww, r)

			route := ""
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}
			if route == "" {
				route = r.URL.Path
			}
			metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(ww.status)).Inc()
		})
	}
}

// RateLimiter applies a process-wide token bucket to the API.
func RateLimiter(rps float64, burst int) func(nethttp.Handler) nethttp.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next nethttp.Handler) nethttp.Handler {
		return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			if !limiter.Allow() {
				render.Render(w, r, apperrors.NewErrorResponse(apperrors.ErrRateLimitExceeded))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// statusWriter captures the response status for logging.
type statusWriter struct {
	nethttp.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
