package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/YusovID/review-dashboard/internal/gitlab"
	"github.com/YusovID/review-dashboard/internal/session"
)

// maxConcurrentLookups bounds parallel GitLab calls made for one request.
const maxConcurrentLookups = 8

// GitLab is the subset of the GitLab API the services read.
type GitLab interface {
	CurrentUser(ctx context.Context, s *session.Session) (domain.User, error)
	Projects(ctx context.Context, s *session.Session, q gitlab.ProjectQuery) ([]domain.Project, error)
	Project(ctx context.Context, s *session.Session, id int64) (domain.Project, error)
	ProjectByPath(ctx context.Context, s *session.Session, fullPath string) (domain.Project, error)
	Commits(ctx context.Context, s *session.Session, projectID int64) ([]domain.Commit, error)
	Commit(ctx context.Context, s *session.Session, projectID int64, sha string) (domain.Commit, error)
	Branches(ctx context.Context, s *session.Session, projectID int64) ([]domain.Branch, error)
	MergeRequests(ctx context.Context, s *session.Session, projectID int64) ([]domain.MergeRequest, error)
	MergeRequest(ctx context.Context, s *session.Session, projectID, iid int64) (domain.MergeRequest, error)
	PushEvents(ctx context.Context, s *session.Session, projectID int64) ([]domain.Event, error)
	Compare(ctx context.Context, s *session.Session, projectID int64, from, to string) (domain.Comparison, error)
}

// Backend is the review backend API.
type Backend interface {
	Profile(ctx context.Context, s *session.Session) (domain.Profile, error)
	Logout(ctx context.Context, s *session.Session) error
	BoundRepositories(ctx context.Context, s *session.Session) ([]domain.BoundRepository, error)
	BindRepository(ctx context.Context, s *session.Session, repoID int64) error
	UnbindRepository(ctx context.Context, s *session.Session, repoID int64) error
	CreateAnalysis(ctx context.Context, s *session.Session, repoID int64, branch string) error
	AnalysisHistory(ctx context.Context, s *session.Session, repoID int64) ([]int64, error)
	Analysis(ctx context.Context, s *session.Session, id int64) (domain.AnalysisRecord, error)
	CommitReview(ctx context.Context, s *session.Session, sha string) (domain.StoredReview, error)
	MergeRequestReview(ctx context.Context, s *session.Session, repoID, iid int64) (domain.StoredReview, error)
	NotificationSettings(ctx context.Context, s *session.Session) (domain.NotificationSettings, error)
	UpdateNotificationSettings(
		ctx context.Context, s *session.Session, settings domain.NotificationSettings,
	) (domain.NotificationSettings, error)
}

// BaseService holds the collaborators every service talks to.
type BaseService struct {
	gitlab  GitLab
	backend Backend
	log     *slog.Logger
}

func NewBaseService(gl GitLab, be Backend, log *slog.Logger) BaseService {
	return BaseService{
		gitlab:  gl,
		backend: be,
		log:     log,
	}
}

// boundRepository finds the binding record of projectID.
func (s *BaseService) boundRepository(ctx context.Context, sess *session.Session, projectID int64) (domain.BoundRepository, bool, error) {
	const op = "internal.service.boundRepository"

	bound, err := s.backend.BoundRepositories(ctx, sess)
	if err != nil {
		return domain.BoundRepository{}, false, fmt.Errorf("%s: backend.BoundRepositories failed: %w", op, err)
	}

	for _, b := range bound {
		if b.ID == projectID {
			return b, true, nil
		}
	}

	return domain.BoundRepository{}, false, nil
}
