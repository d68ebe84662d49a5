package http

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/YusovID/review-dashboard/pkg/api"
	"github.com/YusovID/review-dashboard/pkg/logger/sl"
	"github.com/go-chi/cors"
)

// backendCORS lets any origin call the proxied backend API. Preflight
// requests are answered here and never reach the backend.
var backendCORS = cors.Handler(cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
		http.MethodOptions,
	},
	AllowedHeaders: []string{"Content-Type", "Authorization"},
	MaxAge:         300,
})

// newBackendProxy forwards requests unchanged to the review backend, cookies
// included, so the browser can call the backend through the dashboard origin.
func (s *Server) newBackendProxy(target *url.URL) http.Handler {
	const op = "internal.transport.http.backendProxy"

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			s.log.Error("backend proxy failed",
				slog.String("op", op),
				slog.String("request_id", getRequestID(r.Context())),
				slog.String("path", r.URL.Path),
				sl.Err(err),
			)

			s.respondError(w, http.StatusBadGateway, api.ErrorCodeUpstream, "backend unavailable")
		},
	}
}
