package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/YusovID/review-dashboard/internal/session"
	"github.com/YusovID/review-dashboard/pkg/logger/sl"
)

type AuthService interface {
	CurrentUser(ctx context.Context, sess *session.Session) (*domain.User, error)
	Logout(ctx context.Context, sess *session.Session)
}

type AuthServiceImpl struct {
	BaseService
}

func NewAuthService(base BaseService) *AuthServiceImpl {
	return &AuthServiceImpl{BaseService: base}
}

// CurrentUser validates the session token against the backend and returns
// the GitLab profile of its owner. Any failure clears the session.
func (s *AuthServiceImpl) CurrentUser(ctx context.Context, sess *session.Session) (*domain.User, error) {
	const op = "internal.service.CurrentUser"

	if !sess.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	log := s.log.With(slog.String("op", op))

	if _, err := s.backend.Profile(ctx, sess); err != nil {
		log.Warn("token rejected by backend, clearing session", sl.Err(err))
		sess.Clear()

		return nil, fmt.Errorf("%s: backend.Profile failed: %w", op, err)
	}

	user, err := s.gitlab.CurrentUser(ctx, sess)
	if err != nil {
		log.Warn("gitlab user lookup failed, clearing session", sl.Err(err))
		sess.Clear()

		return nil, fmt.Errorf("%s: gitlab.CurrentUser failed: %w", op, err)
	}

	return &user, nil
}

// Logout revokes the token on the backend. The session is cleared whether
// or not the backend call succeeds.
func (s *AuthServiceImpl) Logout(ctx context.Context, sess *session.Session) {
	const op = "internal.service.Logout"

	defer sess.Clear()

	if !sess.Authenticated() {
		return
	}

	if err := s.backend.Logout(ctx, sess); err != nil {
		s.log.Warn("backend logout failed", slog.String("op", op), sl.Err(err))
	}
}
