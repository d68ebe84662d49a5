package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/YusovID/review-dashboard/internal/session"
	"github.com/google/uuid"
)

type contextKey string

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = contextKey("requestID")
)

// requestID tags every request with an id, reusing the caller's one when
// present. The id is also set on the inbound headers so proxied backend
// calls carry it.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}

		w.Header().Set(requestIDHeader, id)

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func getRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}

	return ""
}

// logRequest logs one line per request. The session token is never logged,
// only whether the request carried one.
func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := r.Cookie(session.CookieName)

		log := s.log.With(
			slog.String("request_id", getRequestID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("authenticated", err == nil),
			slog.Bool("proxied", isProxied(r.URL.Path)),
		)
		log.Debug("request started", slog.String("remote_addr", r.RemoteAddr))

		start := time.Now()
		wrapper := newResponseWriterWrapper(w)

		next.ServeHTTP(wrapper, r)

		level := slog.LevelInfo
		if wrapper.statusCode >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		log.Log(r.Context(), level, "request completed",
			slog.String("route", routePattern(r)),
			slog.Int("status", wrapper.statusCode),
			slog.String("duration", time.Since(start).String()),
		)
	})
}

func isProxied(path string) bool {
	return strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/_/")
}
