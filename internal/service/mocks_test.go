package service

import (
	"context"

	"github.com/YusovID/review-dashboard/internal/diagram"
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/YusovID/review-dashboard/internal/gitlab"
	"github.com/YusovID/review-dashboard/internal/repository"
	"github.com/YusovID/review-dashboard/internal/session"
	"github.com/stretchr/testify/mock"
)

type GitLabMock struct {
	mock.Mock
}

var _ GitLab = (*GitLabMock)(nil)

func (m *GitLabMock) CurrentUser(ctx context.Context, s *session.Session) (domain.User, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *GitLabMock) Projects(ctx context.Context, s *session.Session, q gitlab.ProjectQuery) ([]domain.Project, error) {
	args := m.Called(ctx, s, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *GitLabMock) Project(ctx context.Context, s *session.Session, id int64) (domain.Project, error) {
	args := m.Called(ctx, s, id)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *GitLabMock) ProjectByPath(ctx context.Context, s *session.Session, fullPath string) (domain.Project, error) {
	args := m.Called(ctx, s, fullPath)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *GitLabMock) Commits(ctx context.Context, s *session.Session, projectID int64) ([]domain.Commit, error) {
	args := m.Called(ctx, s, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Commit), args.Error(1)
}

func (m *GitLabMock) Commit(ctx context.Context, s *session.Session, projectID int64, sha string) (domain.Commit, error) {
	args := m.Called(ctx, s, projectID, sha)
	return args.Get(0).(domain.Commit), args.Error(1)
}

func (m *GitLabMock) Branches(ctx context.Context, s *session.Session, projectID int64) ([]domain.Branch, error) {
	args := m.Called(ctx, s, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Branch), args.Error(1)
}

func (m *GitLabMock) MergeRequests(ctx context.Context, s *session.Session, projectID int64) ([]domain.MergeRequest, error) {
	args := m.Called(ctx, s, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.MergeRequest), args.Error(1)
}

func (m *GitLabMock) MergeRequest(ctx context.Context, s *session.Session, projectID, iid int64) (domain.MergeRequest, error) {
	args := m.Called(ctx, s, projectID, iid)
	return args.Get(0).(domain.MergeRequest), args.Error(1)
}

func (m *GitLabMock) PushEvents(ctx context.Context, s *session.Session, projectID int64) ([]domain.Event, error) {
	args := m.Called(ctx, s, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *GitLabMock) Compare(ctx context.Context, s *session.Session, projectID int64, from, to string) (domain.Comparison, error) {
	args := m.Called(ctx, s, projectID, from, to)
	return args.Get(0).(domain.Comparison), args.Error(1)
}

type BackendMock struct {
	mock.Mock
}

var _ Backend = (*BackendMock)(nil)

func (m *BackendMock) Profile(ctx context.Context, s *session.Session) (domain.Profile, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *BackendMock) Logout(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *BackendMock) BoundRepositories(ctx context.Context, s *session.Session) ([]domain.BoundRepository, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.BoundRepository), args.Error(1)
}

func (m *BackendMock) BindRepository(ctx context.Context, s *session.Session, repoID int64) error {
	args := m.Called(ctx, s, repoID)
	return args.Error(0)
}

func (m *BackendMock) UnbindRepository(ctx context.Context, s *session.Session, repoID int64) error {
	args := m.Called(ctx, s, repoID)
	return args.Error(0)
}

func (m *BackendMock) CreateAnalysis(ctx context.Context, s *session.Session, repoID int64, branch string) error {
	args := m.Called(ctx, s, repoID, branch)
	return args.Error(0)
}

func (m *BackendMock) AnalysisHistory(ctx context.Context, s *session.Session, repoID int64) ([]int64, error) {
	args := m.Called(ctx, s, repoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]int64), args.Error(1)
}

func (m *BackendMock) Analysis(ctx context.Context, s *session.Session, id int64) (domain.AnalysisRecord, error) {
	args := m.Called(ctx, s, id)
	return args.Get(0).(domain.AnalysisRecord), args.Error(1)
}

func (m *BackendMock) CommitReview(ctx context.Context, s *session.Session, sha string) (domain.StoredReview, error) {
	args := m.Called(ctx, s, sha)
	return args.Get(0).(domain.StoredReview), args.Error(1)
}

func (m *BackendMock) MergeRequestReview(ctx context.Context, s *session.Session, repoID, iid int64) (domain.StoredReview, error) {
	args := m.Called(ctx, s, repoID, iid)
	return args.Get(0).(domain.StoredReview), args.Error(1)
}

func (m *BackendMock) NotificationSettings(ctx context.Context, s *session.Session) (domain.NotificationSettings, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(domain.NotificationSettings), args.Error(1)
}

func (m *BackendMock) UpdateNotificationSettings(
	ctx context.Context, s *session.Session, settings domain.NotificationSettings,
) (domain.NotificationSettings, error) {
	args := m.Called(ctx, s, settings)
	return args.Get(0).(domain.NotificationSettings), args.Error(1)
}

type RenderCacheMock struct {
	mock.Mock
}

var _ repository.RenderCache = (*RenderCacheMock)(nil)

func (m *RenderCacheMock) Get(ctx context.Context, key string) (domain.RenderedDocument, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(domain.RenderedDocument), args.Error(1)
}

func (m *RenderCacheMock) Put(ctx context.Context, doc domain.RenderedDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

type DiagramProcessorMock struct {
	mock.Mock
}

var _ DiagramProcessor = (*DiagramProcessorMock)(nil)

func (m *DiagramProcessorMock) Process(ctx context.Context, fragment string) (diagram.Result, error) {
	args := m.Called(ctx, fragment)
	return args.Get(0).(diagram.Result), args.Error(1)
}
