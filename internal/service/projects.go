package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/YusovID/review-dashboard/internal/session"
	"github.com/YusovID/review-dashboard/pkg/logger/sl"
	"golang.org/x/sync/errgroup"
)

type ProjectService interface {
	ListProjects(ctx context.Context, sess *session.Session, selected *int64) (*domain.ProjectList, error)
	ProjectDetails(ctx context.Context, sess *session.Session, projectID int64) (*domain.ProjectDetails, error)
	PushHistory(ctx context.Context, sess *session.Session, projectID int64) ([]domain.PushEvent, error)
}

type ProjectServiceImpl struct {
	BaseService
	tracker *Tracker
}

func NewProjectService(base BaseService, tracker *Tracker) *ProjectServiceImpl {
	return &ProjectServiceImpl{
		BaseService: base,
		tracker:     tracker,
	}
}

// ListProjects joins the bound repositories with their GitLab projects. A
// project whose lookup fails stays in the list with Error set. When selected
// is nil, unknown or unavailable the first available project is selected. The analysis
// view is shown whenever a project is selected.
func (s *ProjectServiceImpl) ListProjects(
	ctx context.Context, sess *session.Session, selected *int64,
) (*domain.ProjectList, error) {
	const op = "internal.service.ListProjects"

	if !sess.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	bound, err := s.backend.BoundRepositories(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("%s: backend.BoundRepositories failed: %w", op, err)
	}

	projects := s.lookupProjects(ctx, sess, bound)

	return newProjectList(projects, selected), nil
}

func (s *ProjectServiceImpl) lookupProjects(
	ctx context.Context, sess *session.Session, bound []domain.BoundRepository,
) []domain.Project {
	const op = "internal.service.lookupProjects"

	projects := make([]domain.Project, len(bound))

	var g errgroup.Group
	g.SetLimit(maxConcurrentLookups)

	for i, b := range bound {
		g.Go(func() error {
			p, err := s.gitlab.Project(ctx, sess, b.ID)
			if err != nil {
				s.log.Warn("project lookup failed",
					slog.String("op", op), slog.Int64("project_id", b.ID), sl.Err(err))

				p = domain.Project{ID: b.ID, Name: b.Name, Error: err.Error()}
			}

			p.AnalysisID = b.AnalysisID
			projects[i] = p

			return nil
		})
	}

	_ = g.Wait()

	return projects
}

func newProjectList(projects []domain.Project, selected *int64) *domain.ProjectList {
	list := &domain.ProjectList{
		Projects: projects,
		View:     domain.ViewBinding,
	}

	if selected != nil {
		for _, p := range projects {
			if p.ID == *selected && p.Available() {
				id := p.ID
				list.SelectedID = &id
				list.View = domain.ViewAnalysis

				return list
			}
		}
	}

	for _, p := range projects {
		if p.Available() {
			id := p.ID
			list.SelectedID = &id
			list.View = domain.ViewAnalysis

			break
		}
	}

	return list
}

// ProjectDetails loads a project with its recent commits, branches and merge
// requests. Any failing fetch fails the whole call. A newer call from the
// same session makes this one return apperrors.ErrSuperseded.
func (s *ProjectServiceImpl) ProjectDetails(
	ctx context.Context, sess *session.Session, projectID int64,
) (*domain.ProjectDetails, error) {
	const op = "internal.service.ProjectDetails"

	if !sess.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	ctx, done := s.tracker.Begin(ctx, "details:"+sess.Token())
	defer done()

	var details domain.ProjectDetails

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		details.Project, err = s.gitlab.Project(gctx, sess, projectID)
		return wrapOp(err, "gitlab.Project")
	})
	g.Go(func() (err error) {
		details.Commits, err = s.gitlab.Commits(gctx, sess, projectID)
		return wrapOp(err, "gitlab.Commits")
	})
	g.Go(func() (err error) {
		details.Branches, err = s.gitlab.Branches(gctx, sess, projectID)
		return wrapOp(err, "gitlab.Branches")
	})
	g.Go(func() (err error) {
		details.MergeRequests, err = s.gitlab.MergeRequests(gctx, sess, projectID)
		return wrapOp(err, "gitlab.MergeRequests")
	})

	if err := g.Wait(); err != nil {
		if Superseded(ctx) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrSuperseded)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if Superseded(ctx) {
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrSuperseded)
	}

	return &details, nil
}

// PushHistory returns the latest push events of a project with the commits
// each push introduced. A push whose commits cannot be loaded keeps Error set.
func (s *ProjectServiceImpl) PushHistory(
	ctx context.Context, sess *session.Session, projectID int64,
) ([]domain.PushEvent, error) {
	const op = "internal.service.PushHistory"

	if !sess.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	events, err := s.gitlab.PushEvents(ctx, sess, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: gitlab.PushEvents failed: %w", op, err)
	}

	pushes := make([]domain.PushEvent, 0, len(events))

	for _, e := range events {
		if e.PushData != nil {
			pushes = append(pushes, domain.PushEvent{Event: e, Commits: []domain.Commit{}})
		}
	}

	var g errgroup.Group
	g.SetLimit(maxConcurrentLookups)

	for i := range pushes {
		data := pushes[i].Event.PushData
		if !knownRevision(data.CommitFrom) || !knownRevision(data.CommitTo) {
			continue
		}

		g.Go(func() error {
			cmp, err := s.gitlab.Compare(ctx, sess, projectID, data.CommitFrom, data.CommitTo)
			if err != nil {
				s.log.Warn("push commits lookup failed",
					slog.String("op", op), slog.Int64("event_id", pushes[i].Event.ID), sl.Err(err))

				pushes[i].Error = err.Error()

				return nil
			}

			if cmp.Commits != nil {
				pushes[i].Commits = cmp.Commits
			}

			return nil
		})
	}

	_ = g.Wait()

	return pushes, nil
}

// knownRevision reports whether sha names a real revision; GitLab uses an
// all-zero sha for the missing side of branch creation and deletion.
func knownRevision(sha string) bool {
	return sha != "" && strings.Trim(sha, "0") != ""
}

func wrapOp(err error, op string) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s failed: %w", op, err)
}
