package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/YusovID/review-dashboard/internal/session"
	"github.com/YusovID/review-dashboard/pkg/logger/sl"
)

// debouncedWriteTimeout bounds a debounced write, which runs after the
// request that scheduled it has finished.
const debouncedWriteTimeout = 10 * time.Second

type NotificationService interface {
	Settings(ctx context.Context, sess *session.Session) (*domain.NotificationSettings, error)
	UpdateSettings(ctx context.Context, sess *session.Session, settings domain.NotificationSettings) (*domain.NotificationSettings, error)
	ScheduleUpdate(ctx context.Context, sess *session.Session, settings domain.NotificationSettings) error
	Flush()
}

type NotificationServiceImpl struct {
	BaseService
	debouncer *Debouncer
}

func NewNotificationService(base BaseService, debouncer *Debouncer) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		BaseService: base,
		debouncer:   debouncer,
	}
}

func (s *NotificationServiceImpl) Settings(ctx context.Context, sess *session.Session) (*domain.NotificationSettings, error) {
	const op = "internal.service.NotificationSettings"

	if !sess.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	settings, err := s.backend.NotificationSettings(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("%s: backend.NotificationSettings failed: %w", op, err)
	}

	return &settings, nil
}

// UpdateSettings persists settings immediately.
func (s *NotificationServiceImpl) UpdateSettings(
	ctx context.Context, sess *session.Session, settings domain.NotificationSettings,
) (*domain.NotificationSettings, error) {
	const op = "internal.service.UpdateNotificationSettings"

	if !sess.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	stored, err := s.backend.UpdateNotificationSettings(ctx, sess, settings)
	if err != nil {
		return nil, fmt.Errorf("%s: backend.UpdateNotificationSettings failed: %w", op, err)
	}

	return &stored, nil
}

// ScheduleUpdate persists settings once the session has stopped editing for
// the debounce period. Only the last settings of a burst are written.
func (s *NotificationServiceImpl) ScheduleUpdate(
	_ context.Context, sess *session.Session, settings domain.NotificationSettings,
) error {
	const op = "internal.service.ScheduleNotificationUpdate"

	if !sess.Authenticated() {
		return apperrors.ErrUnauthenticated
	}

	// The request's session is tied to its response; keep only the token.
	detached := session.New(sess.Token())

	s.debouncer.Schedule(sess.Token(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), debouncedWriteTimeout)
		defer cancel()

		if _, err := s.backend.UpdateNotificationSettings(ctx, detached, settings); err != nil {
			s.log.Error("debounced settings write failed", slog.String("op", op), sl.Err(err))
			return
		}

		s.log.Debug("debounced settings written", slog.String("op", op))
	})

	return nil
}

// Flush writes every pending update now.
func (s *NotificationServiceImpl) Flush() {
	s.debouncer.Flush()
}
