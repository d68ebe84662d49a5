package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/YusovID/review-dashboard/internal/markdown"
	"github.com/YusovID/review-dashboard/internal/repository"
	"github.com/YusovID/review-dashboard/internal/session"
	"golang.org/x/sync/errgroup"
)

// fallbackBranch is analysed when a project reports no default branch.
const fallbackBranch = "master"

type AnalysisService interface {
	ProjectAnalysis(ctx context.Context, sess *session.Session, projectID int64) (*domain.AnalysisView, error)
	ProjectAnalysisByID(ctx context.Context, sess *session.Session, projectID, analysisID int64) (*domain.AnalysisView, error)
	Analysis(ctx context.Context, sess *session.Session, analysisID int64, links domain.SourceLinks) (*domain.AnalysisView, error)
	CommitAnalysis(ctx context.Context, sess *session.Session, projectID int64, sha string) (*domain.CommitAnalysisView, error)
	MergeRequestAnalysis(ctx context.Context, sess *session.Session, projectID, iid int64) (*domain.CommitAnalysisView, error)
	TriggerAnalysis(ctx context.Context, sess *session.Session, projectID int64, branch string) (string, error)
	AnalysisHistory(ctx context.Context, sess *session.Session, projectID int64) ([]int64, error)
}

type AnalysisServiceImpl struct {
	BaseService
	documents *DocumentRenderer
}

func NewAnalysisService(base BaseService, documents *DocumentRenderer) *AnalysisServiceImpl {
	return &AnalysisServiceImpl{
		BaseService: base,
		documents:   documents,
	}
}

// ProjectAnalysis renders the latest analysis bound to projectID, linking
// file references against the default branch.
func (s *AnalysisServiceImpl) ProjectAnalysis(
	ctx context.Context, sess *session.Session, projectID int64,
) (*domain.AnalysisView, error) {
	const op = "internal.service.ProjectAnalysis"

	if !sess.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	var (
		project domain.Project
		binding domain.BoundRepository
		bound   bool
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		project, err = s.gitlab.Project(gctx, sess, projectID)
		return wrapOp(err, "gitlab.Project")
	})
	g.Go(func() (err error) {
		binding, bound, err = s.boundRepository(gctx, sess, projectID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !bound {
		return nil, fmt.Errorf("%s: %w: repository %d is not bound", op, apperrors.ErrNotFound, projectID)
	}

	if binding.AnalysisID == nil {
		return nil, fmt.Errorf("%s: %w: repository %d has no analysis yet", op, apperrors.ErrNotFound, projectID)
	}

	return s.Analysis(ctx, sess, *binding.AnalysisID, projectLinks(project, project.DefaultBranch))
}

// ProjectAnalysisByID renders an earlier analysis of projectID, linked like
// the latest one.
func (s *AnalysisServiceImpl) ProjectAnalysisByID(
	ctx context.Context, sess *session.Session, projectID, analysisID int64,
) (*domain.AnalysisView, error) {
	const op = "internal.service.ProjectAnalysisByID"

	if !sess.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	project, err := s.gitlab.Project(ctx, sess, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: gitlab.Project failed: %w", op, err)
	}

	return s.Analysis(ctx, sess, analysisID, projectLinks(project, project.DefaultBranch))
}

// Analysis renders one stored repository analysis. File references stay
// plain text when links carries no web URL.
func (s *AnalysisServiceImpl) Analysis(
	ctx context.Context, sess *session.Session, analysisID int64, links domain.SourceLinks,
) (*domain.AnalysisView, error) {
	const op = "internal.service.Analysis"

	if !sess.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	record, err := s.backend.Analysis(ctx, sess, analysisID)
	if err != nil {
		return nil, fmt.Errorf("%s: backend.Analysis failed: %w", op, err)
	}

	key := repository.RenderKey(repository.KindAnalysis, strconv.FormatInt(analysisID, 10), links)

	doc, err := s.documents.Render(ctx, key, record.ResultText, links)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &domain.AnalysisView{
		AnalysisID: record.ID,
		Score:      record.Score,
		CreatedAt:  record.CreatedAt,
		Document:   doc,
	}, nil
}

// CommitAnalysis renders the review of one commit; file references link to
// the reviewed revision.
func (s *AnalysisServiceImpl) CommitAnalysis(
	ctx context.Context, sess *session.Session, projectID int64, sha string,
) (*domain.CommitAnalysisView, error) {
	const op = "internal.service.CommitAnalysis"

	if !sess.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	var (
		project domain.Project
		commit  domain.Commit
		stored  domain.StoredReview
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		project, err = s.gitlab.Project(gctx, sess, projectID)
		return wrapOp(err, "gitlab.Project")
	})
	g.Go(func() (err error) {
		commit, err = s.gitlab.Commit(gctx, sess, projectID, sha)
		return wrapOp(err, "gitlab.Commit")
	})
	g.Go(func() (err error) {
		stored, err = s.backend.CommitReview(gctx, sess, sha)
		return wrapOp(err, "backend.CommitReview")
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	review, err := markdown.ParseReview(stored.Review)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	analysis := domain.CommitAnalysis{
		CommitID:  sha,
		Title:     commit.Title,
		Author:    commit.AuthorName,
		CreatedAt: stored.CreatedAt,
		Review:    review,
	}

	links := projectLinks(project, sha)
	key := repository.RenderKey(repository.KindCommitReview, sha, links)

	doc, err := s.documents.Render(ctx, key, markdown.AssembleReview(review), links)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &domain.CommitAnalysisView{Analysis: analysis, Document: doc}, nil
}

// MergeRequestAnalysis renders the review of a merge request; file references
// link to its source branch. Merge request reviews are re-rendered on every
// call because the backend replaces them as the branch moves.
func (s *AnalysisServiceImpl) MergeRequestAnalysis(
	ctx context.Context, sess *session.Session, projectID, iid int64,
) (*domain.CommitAnalysisView, error) {
	const op = "internal.service.MergeRequestAnalysis"

	if !sess.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	var (
		project domain.Project
		mr      domain.MergeRequest
		stored  domain.StoredReview
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		project, err = s.gitlab.Project(gctx, sess, projectID)
		return wrapOp(err, "gitlab.Project")
	})
	g.Go(func() (err error) {
		mr, err = s.gitlab.MergeRequest(gctx, sess, projectID, iid)
		return wrapOp(err, "gitlab.MergeRequest")
	})
	g.Go(func() (err error) {
		stored, err = s.backend.MergeRequestReview(gctx, sess, projectID, iid)
		return wrapOp(err, "backend.MergeRequestReview")
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	review, err := markdown.ParseReview(stored.Review)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	analysis := domain.CommitAnalysis{
		CommitID:          mr.SHA,
		Title:             mr.Title,
		Author:            mr.Author.Name,
		CreatedAt:         stored.CreatedAt,
		Review:            review,
		IsMergeRequest:    true,
		MergeRequestIID:   mr.IID,
		SourceBranch:      mr.SourceBranch,
		TargetBranch:      mr.TargetBranch,
		MergeRequestState: mr.State,
	}

	doc, err := s.documents.Render(ctx, "", markdown.AssembleReview(review), projectLinks(project, mr.SourceBranch))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &domain.CommitAnalysisView{Analysis: analysis, Document: doc}, nil
}

// TriggerAnalysis queues an analysis of branch. An empty branch falls back
// to the project's default branch, then to "master". It returns the branch
// that was queued.
func (s *AnalysisServiceImpl) TriggerAnalysis(
	ctx context.Context, sess *session.Session, projectID int64, branch string,
) (string, error) {
	const op = "internal.service.TriggerAnalysis"

	if !sess.Authenticated() {
		return "", apperrors.ErrUnauthenticated
	}

	if branch == "" {
		project, err := s.gitlab.Project(ctx, sess, projectID)
		if err != nil {
			return "", fmt.Errorf("%s: gitlab.Project failed: %w", op, err)
		}

		branch = project.DefaultBranch
		if branch == "" {
			branch = fallbackBranch
		}
	}

	if err := s.backend.CreateAnalysis(ctx, sess, projectID, branch); err != nil {
		return "", fmt.Errorf("%s: backend.CreateAnalysis failed: %w", op, err)
	}

	s.log.Info("analysis queued",
		slog.String("op", op), slog.Int64("project_id", projectID), slog.String("branch", branch))

	return branch, nil
}

// AnalysisHistory lists analysis ids of projectID, newest first.
func (s *AnalysisServiceImpl) AnalysisHistory(
	ctx context.Context, sess *session.Session, projectID int64,
) ([]int64, error) {
	const op = "internal.service.AnalysisHistory"

	if !sess.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	ids, err := s.backend.AnalysisHistory(ctx, sess, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: backend.AnalysisHistory failed: %w", op, err)
	}

	if ids == nil {
		ids = []int64{}
	}

	return ids, nil
}

func projectLinks(p domain.Project, ref string) domain.SourceLinks {
	return domain.SourceLinks{WebURL: p.WebURL, Ref: ref}
}
