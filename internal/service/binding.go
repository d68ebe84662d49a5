package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/YusovID/review-dashboard/internal/gitlab"
	"github.com/YusovID/review-dashboard/internal/session"
)

// Page sizes of the repository picker.
const (
	ownedProjectsPerPage  = 20
	searchProjectsPerPage = 10
)

type BindingService interface {
	BindRepository(ctx context.Context, sess *session.Session, projectID int64) (*domain.ProjectList, error)
	UnbindRepository(ctx context.Context, sess *session.Session, projectID int64) error
	VerifyAndGetRepositoryID(ctx context.Context, sess *session.Session, name string) (int64, error)
	SearchRepositories(ctx context.Context, sess *session.Session, query string) ([]domain.Project, error)
}

type BindingServiceImpl struct {
	BaseService
	projects *ProjectServiceImpl
}

func NewBindingService(base BaseService, projects *ProjectServiceImpl) *BindingServiceImpl {
	return &BindingServiceImpl{
		BaseService: base,
		projects:    projects,
	}
}

// BindRepository binds projectID and returns the refreshed project list with
// the new repository selected, so the caller can switch to its analysis.
func (s *BindingServiceImpl) BindRepository(
	ctx context.Context, sess *session.Session, projectID int64,
) (*domain.ProjectList, error) {
	const op = "internal.service.BindRepository"

	if !sess.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	if err := s.backend.BindRepository(ctx, sess, projectID); err != nil {
		return nil, fmt.Errorf("%s: backend.BindRepository failed: %w", op, err)
	}

	s.log.Info("repository bound", slog.String("op", op), slog.Int64("project_id", projectID))

	list, err := s.projects.ListProjects(ctx, sess, &projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

func (s *BindingServiceImpl) UnbindRepository(ctx context.Context, sess *session.Session, projectID int64) error {
	const op = "internal.service.UnbindRepository"

	if !sess.Authenticated() {
		return apperrors.ErrUnauthenticated
	}

	if err := s.backend.UnbindRepository(ctx, sess, projectID); err != nil {
		return fmt.Errorf("%s: backend.UnbindRepository failed: %w", op, err)
	}

	s.log.Info("repository unbound", slog.String("op", op), slog.Int64("project_id", projectID))

	return nil
}

// VerifyAndGetRepositoryID resolves a repository typed by the user to its
// GitLab id. It accepts "group/name", a web URL or a clone URL.
func (s *BindingServiceImpl) VerifyAndGetRepositoryID(
	ctx context.Context, sess *session.Session, name string,
) (int64, error) {
	const op = "internal.service.VerifyAndGetRepositoryID"

	if !sess.Authenticated() {
		return 0, apperrors.ErrUnauthenticated
	}

	fullPath := RepositoryPath(name)
	if fullPath == "" {
		return 0, fmt.Errorf("%s: %w: empty repository name", op, apperrors.ErrInvalidRequest)
	}

	project, err := s.gitlab.ProjectByPath(ctx, sess, fullPath)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("%s: %w: repository '%s'", op, apperrors.ErrNotFound, fullPath)
		}

		return 0, fmt.Errorf("%s: gitlab.ProjectByPath failed: %w", op, err)
	}

	return project.ID, nil
}

// RepositoryPath normalises user input to a "group/name" project path.
func RepositoryPath(name string) string {
	p := strings.TrimSpace(name)

	switch {
	case strings.Contains(p, "://"):
		if u, err := url.Parse(p); err == nil {
			p = u.Path
		}
	case strings.HasPrefix(p, "git@"):
		if i := strings.Index(p, ":"); i >= 0 {
			p = p[i+1:]
		}
	}

	// Web URLs of sub-pages carry "/-/" before the page path.
	if i := strings.Index(p, "/-/"); i >= 0 {
		p = p[:i]
	}

	p = strings.Trim(p, "/")
	p = strings.TrimSuffix(p, ".git")

	return strings.Trim(p, "/")
}

// SearchRepositories lists repositories the user can bind. An empty query
// lists owned projects; otherwise GitLab is searched for the last path
// segment and results are kept when their full path contains the query.
// Bound repositories are excluded either way.
func (s *BindingServiceImpl) SearchRepositories(
	ctx context.Context, sess *session.Session, query string,
) ([]domain.Project, error) {
	const op = "internal.service.SearchRepositories"

	if !sess.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	bound, err := s.backend.BoundRepositories(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("%s: backend.BoundRepositories failed: %w", op, err)
	}

	boundIDs := make([]int64, 0, len(bound))
	for _, b := range bound {
		boundIDs = append(boundIDs, b.ID)
	}

	query = strings.TrimSpace(query)

	q := gitlab.ProjectQuery{Owned: true, PerPage: ownedProjectsPerPage}

	if query != "" {
		segment := query[strings.LastIndex(query, "/")+1:]
		if strings.TrimSpace(segment) == "" {
			return []domain.Project{}, nil
		}

		q = gitlab.ProjectQuery{Search: segment, PerPage: searchProjectsPerPage}
	}

	found, err := s.gitlab.Projects(ctx, sess, q)
	if err != nil {
		return nil, fmt.Errorf("%s: gitlab.Projects failed: %w", op, err)
	}

	needle := strings.ToLower(query)
	out := make([]domain.Project, 0, len(found))

	for _, p := range found {
		if slices.Contains(boundIDs, p.ID) {
			continue
		}

		if needle != "" && !strings.Contains(strings.ToLower(p.PathWithNamespace), needle) {
			continue
		}

		out = append(out, p)
	}

	return out, nil
}
