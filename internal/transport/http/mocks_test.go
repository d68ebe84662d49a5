package http

import (
	"context"

	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/YusovID/review-dashboard/internal/service"
	"github.com/YusovID/review-dashboard/internal/session"
	"github.com/stretchr/testify/mock"
)

type AuthServiceMock struct {
	mock.Mock
}

var _ service.AuthService = (*AuthServiceMock)(nil)

func (m *AuthServiceMock) CurrentUser(ctx context.Context, sess *session.Session) (*domain.User, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *AuthServiceMock) Logout(ctx context.Context, sess *session.Session) {
	m.Called(ctx, sess)
}

type ProjectServiceMock struct {
	mock.Mock
}

var _ service.ProjectService = (*ProjectServiceMock)(nil)

func (m *ProjectServiceMock) ListProjects(ctx context.Context, sess *session.Session, selected *int64) (*domain.ProjectList, error) {
	args := m.Called(ctx, sess, selected)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.ProjectList), args.Error(1)
}

func (m *ProjectServiceMock) ProjectDetails(ctx context.Context, sess *session.Session, projectID int64) (*domain.ProjectDetails, error) {
	args := m.Called(ctx, sess, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.ProjectDetails), args.Error(1)
}

func (m *ProjectServiceMock) PushHistory(ctx context.Context, sess *session.Session, projectID int64) ([]domain.PushEvent, error) {
	args := m.Called(ctx, sess, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.PushEvent), args.Error(1)
}

type BindingServiceMock struct {
	mock.Mock
}

var _ service.BindingService = (*BindingServiceMock)(nil)

func (m *BindingServiceMock) BindRepository(ctx context.Context, sess *session.Session, projectID int64) (*domain.ProjectList, error) {
	args := m.Called(ctx, sess, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.ProjectList), args.Error(1)
}

func (m *BindingServiceMock) UnbindRepository(ctx context.Context, sess *session.Session, projectID int64) error {
	args := m.Called(ctx, sess, projectID)
	return args.Error(0)
}

func (m *BindingServiceMock) VerifyAndGetRepositoryID(ctx context.Context, sess *session.Session, name string) (int64, error) {
	args := m.Called(ctx, sess, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BindingServiceMock) SearchRepositories(ctx context.Context, sess *session.Session, query string) ([]domain.Project, error) {
	args := m.Called(ctx, sess, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Project), args.Error(1)
}

type AnalysisServiceMock struct {
	mock.Mock
}

var _ service.AnalysisService = (*AnalysisServiceMock)(nil)

func (m *AnalysisServiceMock) ProjectAnalysis(ctx context.Context, sess *session.Session, projectID int64) (*domain.AnalysisView, error) {
	args := m.Called(ctx, sess, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.AnalysisView), args.Error(1)
}

func (m *AnalysisServiceMock) ProjectAnalysisByID(
	ctx context.Context, sess *session.Session, projectID, analysisID int64,
) (*domain.AnalysisView, error) {
	args := m.Called(ctx, sess, projectID, analysisID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.AnalysisView), args.Error(1)
}

func (m *AnalysisServiceMock) Analysis(
	ctx context.Context, sess *session.Session, analysisID int64, links domain.SourceLinks,
) (*domain.AnalysisView, error) {
	args := m.Called(ctx, sess, analysisID, links)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.AnalysisView), args.Error(1)
}

func (m *AnalysisServiceMock) CommitAnalysis(
	ctx context.Context, sess *session.Session, projectID int64, sha string,
) (*domain.CommitAnalysisView, error) {
	args := m.Called(ctx, sess, projectID, sha)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.CommitAnalysisView), args.Error(1)
}

func (m *AnalysisServiceMock) MergeRequestAnalysis(
	ctx context.Context, sess *session.Session, projectID, iid int64,
) (*domain.CommitAnalysisView, error) {
	args := m.Called(ctx, sess, projectID, iid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.CommitAnalysisView), args.Error(1)
}

func (m *AnalysisServiceMock) TriggerAnalysis(ctx context.Context, sess *session.Session, projectID int64, branch string) (string, error) {
	args := m.Called(ctx, sess, projectID, branch)
	return args.String(0), args.Error(1)
}

func (m *AnalysisServiceMock) AnalysisHistory(ctx context.Context, sess *session.Session, projectID int64) ([]int64, error) {
	args := m.Called(ctx, sess, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]int64), args.Error(1)
}

type NotificationServiceMock struct {
	mock.Mock
}

var _ service.NotificationService = (*NotificationServiceMock)(nil)

func (m *NotificationServiceMock) Settings(ctx context.Context, sess *session.Session) (*domain.NotificationSettings, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.NotificationSettings), args.Error(1)
}

func (m *NotificationServiceMock) UpdateSettings(
	ctx context.Context, sess *session.Session, settings domain.NotificationSettings,
) (*domain.NotificationSettings, error) {
	args := m.Called(ctx, sess, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.NotificationSettings), args.Error(1)
}

func (m *NotificationServiceMock) ScheduleUpdate(
	ctx context.Context, sess *session.Session, settings domain.NotificationSettings,
) error {
	args := m.Called(ctx, sess, settings)
	return args.Error(0)
}

func (m *NotificationServiceMock) Flush() {
	m.Called()
}
