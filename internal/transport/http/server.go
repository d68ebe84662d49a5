// Package http implements the HTTP transport layer of the dashboard.
// It serves the dashboard JSON API, proxies the review backend and exposes
// health and metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/service"
	"github.com/YusovID/review-dashboard/internal/validation"
	"github.com/YusovID/review-dashboard/pkg/api"
	"github.com/YusovID/review-dashboard/pkg/logger/sl"
	"github.com/YusovID/review-dashboard/swagger"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles the services the dashboard API is served from.
type Services struct {
	Auth          service.AuthService
	Projects      service.ProjectService
	Binding       service.BindingService
	Analysis      service.AnalysisService
	Notifications service.NotificationService
}

var _ api.ServerInterface = (*Server)(nil)

// Server holds the dependencies for the HTTP server, including the logger and services.
type Server struct {
	log      *slog.Logger
	services Services
	backend  *url.URL
}

// NewServer creates a new instance of the HTTP server. A nil backend disables
// the /api and /_ reverse proxy.
func NewServer(log *slog.Logger, services Services, backend *url.URL) *Server {
	return &Server{
		log:      log,
		services: services,
		backend:  backend,
	}
}

// Routes sets up the router with all middleware and endpoints.
func (s *Server) Routes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(s.requestID)
	mux.Use(s.logRequest)
	mux.Use(s.metricsMiddleware)

	mux.Get("/healthz", s.health)
	mux.Handle("/metrics", promhttp.Handler())

	if s.backend != nil {
		proxy := s.newBackendProxy(s.backend)

		mux.With(backendCORS).Handle("/api/*", proxy)
		mux.Handle("/_/*", proxy)
	}

	swaggerHandler, err := swagger.GetHandler()
	if err != nil {
		s.log.Error("failed to get swagger handler", sl.Err(err))
	} else {
		mux.Mount("/swagger", http.StripPrefix("/swagger", swaggerHandler))
	}

	api.HandlerWithOptions(s, api.ChiServerOptions{
		BaseRouter:       mux,
		ErrorHandlerFunc: s.handleParamError,
	})

	return mux
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respond is a helper function to encode data to JSON and write it to the response.
// It centralizes setting the Content-Type header and writing the status code.
func (s *Server) respond(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.log.Error("failed to encode response", sl.Err(err))
		}
	}
}

// respondError sends the structured error body of the dashboard API.
func (s *Server) respondError(w http.ResponseWriter, code int, errCode api.ErrorCode, message string) {
	var body api.ErrorResponse
	body.Error.Code = errCode
	body.Error.Message = message

	s.respond(w, code, body)
}

// decodeAndValidate is a helper that deserializes a JSON request body into a struct
// and then runs validation checks on it.
func (s *Server) decodeAndValidate(r *http.Request, v any) error {
	if err := s.decode(r.Body, v); err != nil {
		return err
	}

	if err := validation.ValidateStruct(v); err != nil {
		return err
	}

	return nil
}

// decode is a helper function to decode a JSON request body.
func (s *Server) decode(body io.ReadCloser, v any) error {
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}

	return nil
}

// positiveID rejects ids that no GitLab object can have.
func positiveID(name string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s must be a positive integer, got %d", apperrors.ErrInvalidRequest, name, id)
	}

	return nil
}

// handleParamError answers path and query parameters that fail to parse.
func (s *Server) handleParamError(w http.ResponseWriter, r *http.Request, err error) {
	s.handleServiceError(w, r, "internal.transport.http.handleParamError",
		fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err))
}

// handleServiceError provides centralized error handling for all HTTP handlers.
// It logs the internal error and maps it to a user-facing HTTP response.
func (s *Server) handleServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := s.log.With(slog.String("op", op), slog.String("request_id", getRequestID(r.Context())))

	var validationErr *validation.ValidationError

	switch {
	case errors.Is(err, context.Canceled) && r.Context().Err() != nil:
		log.Debug("client went away", sl.Err(err))
		return
	case errors.As(err, &validationErr):
		log.Warn("request rejected", sl.Err(err))
		s.respondError(w, http.StatusBadRequest, api.ErrorCodeInvalidRequest, validationErr.Error())
		return
	case errors.Is(err, apperrors.ErrSuperseded):
		log.Debug("request superseded", sl.Err(err))
		s.respondError(w, http.StatusConflict, api.ErrorCodeSuperseded, apperrors.ErrSuperseded.Error())
		return
	}

	status, code, message := classify(err)

	if status >= http.StatusInternalServerError {
		log.Error("service error occurred", sl.Err(err))
	} else {
		log.Warn("request failed", sl.Err(err))
	}

	s.respondError(w, status, code, message)
}

// classify maps a service error onto an HTTP status, an API error code and
// a message safe to show.
func classify(err error) (int, api.ErrorCode, string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidRequest):
		return http.StatusBadRequest, api.ErrorCodeInvalidRequest, backendInfo(err, apperrors.ErrInvalidRequest.Error())
	case errors.Is(err, apperrors.ErrInvalidToken):
		return http.StatusUnauthorized, api.ErrorCodeInvalidToken, apperrors.ErrInvalidToken.Error()
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized, api.ErrorCodeUnauthenticated, apperrors.ErrUnauthenticated.Error()
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, api.ErrorCodeForbidden, apperrors.ErrForbidden.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, api.ErrorCodeNotFound, apperrors.ErrNotFound.Error()
	case errors.Is(err, apperrors.ErrAlreadyBound):
		return http.StatusConflict, api.ErrorCodeAlreadyBound, apperrors.AlreadyBoundMessage
	case errors.Is(err, apperrors.ErrParseAnalysis):
		return http.StatusUnprocessableEntity, api.ErrorCodeParseFailed, apperrors.ParseAnalysisMessage
	case errors.Is(err, apperrors.ErrPending):
		return http.StatusAccepted, api.ErrorCodePending, apperrors.ErrPending.Error()
	case errors.Is(err, apperrors.ErrFailed):
		return http.StatusBadGateway, api.ErrorCodeJobFailed, apperrors.ErrFailed.Error()
	case errors.Is(err, apperrors.ErrUpstream):
		return http.StatusBadGateway, api.ErrorCodeUpstream, apperrors.ErrUpstream.Error()
	default:
		return http.StatusInternalServerError, api.ErrorCodeInternal, "internal server error"
	}
}

// backendInfo returns the info text of a backend business error, or fallback.
func backendInfo(err error, fallback string) string {
	var be *apperrors.BusinessError
	if errors.As(err, &be) && be.Info != "" {
		return be.Info
	}

	return fallback
}
