// Package gitlab reads the GitLab REST API v4 on behalf of a signed-in user,
// limited to the endpoints the dashboard needs. Responses are returned as
// domain types.
package gitlab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/YusovID/review-dashboard/internal/session"
	gl "gitlab.com/gitlab-org/api/client-go"
	"golang.org/x/time/rate"
)

// Page sizes the dashboard asks for.
const (
	CommitsPerPage       = 20
	BranchesPerPage      = 10
	MergeRequestsPerPage = 10
	EventsPerPage        = 10
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}

	for _, o := range opts {
		o(c)
	}

	return c
}

// BaseURL is the GitLab instance root, without the API prefix.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ProjectQuery filters the project listing.
type ProjectQuery struct {
	Owned      bool
	Membership bool
	Search     string
	PerPage    int
}

func (q ProjectQuery) options() *gl.ListProjectsOptions {
	opt := &gl.ListProjectsOptions{ListOptions: gl.ListOptions{PerPage: q.PerPage}}

	if q.Owned {
		opt.Owned = gl.Ptr(true)
	}

	if q.Membership {
		opt.Membership = gl.Ptr(true)
	}

	if q.Search != "" {
		opt.Search = gl.Ptr(q.Search)
	}

	return opt
}

// api builds a client authorised as the session user. Retries are off: the
// caller decides what a failed page load means. The rate limiter is fixed so
// no HEAD request precedes the real one.
func (c *Client) api(s *session.Session) (*gl.Client, error) {
	if !s.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	api, err := gl.NewOAuthClient(s.Token(),
		gl.WithBaseURL(c.baseURL),
		gl.WithHTTPClient(c.http),
		gl.WithoutRetries(),
		gl.WithCustomLimiter(rate.NewLimiter(rate.Inf, 0)),
	)
	if err != nil {
		return nil, fmt.Errorf("create gitlab client: %w", err)
	}

	return api, nil
}

func (c *Client) CurrentUser(ctx context.Context, s *session.Session) (domain.User, error) {
	api, err := c.api(s)
	if err != nil {
		return domain.User{}, err
	}

	user, resp, err := api.Users.CurrentUser(gl.WithContext(ctx))

	return convert[domain.User]("user", user, resp, err)
}

func (c *Client) Projects(ctx context.Context, s *session.Session, q ProjectQuery) ([]domain.Project, error) {
	api, err := c.api(s)
	if err != nil {
		return nil, err
	}

	projects, resp, err := api.Projects.ListProjects(q.options(), gl.WithContext(ctx))

	return convert[[]domain.Project]("projects", projects, resp, err)
}

func (c *Client) Project(ctx context.Context, s *session.Session, id int64) (domain.Project, error) {
	return c.project(ctx, s, int(id))
}

// ProjectByPath looks a project up by its full "group/name" path.
func (c *Client) ProjectByPath(ctx context.Context, s *session.Session, fullPath string) (domain.Project, error) {
	return c.project(ctx, s, fullPath)
}

func (c *Client) project(ctx context.Context, s *session.Session, pid any) (domain.Project, error) {
	api, err := c.api(s)
	if err != nil {
		return domain.Project{}, err
	}

	project, resp, err := api.Projects.GetProject(pid, nil, gl.WithContext(ctx))

	return convert[domain.Project]("project", project, resp, err)
}

func (c *Client) Commits(ctx context.Context, s *session.Session, projectID int64) ([]domain.Commit, error) {
	api, err := c.api(s)
	if err != nil {
		return nil, err
	}

	commits, resp, err := api.Commits.ListCommits(int(projectID), &gl.ListCommitsOptions{
		ListOptions: gl.ListOptions{PerPage: CommitsPerPage},
	}, gl.WithContext(ctx))

	return convert[[]domain.Commit]("commits", commits, resp, err)
}

func (c *Client) Branches(ctx context.Context, s *session.Session, projectID int64) ([]domain.Branch, error) {
	api, err := c.api(s)
	if err != nil {
		return nil, err
	}

	branches, resp, err := api.Branches.ListBranches(int(projectID), &gl.ListBranchesOptions{
		ListOptions: gl.ListOptions{PerPage: BranchesPerPage},
	}, gl.WithContext(ctx))

	return convert[[]domain.Branch]("branches", branches, resp, err)
}

func (c *Client) MergeRequests(ctx context.Context, s *session.Session, projectID int64) ([]domain.MergeRequest, error) {
	api, err := c.api(s)
	if err != nil {
		return nil, err
	}

	mrs, resp, err := api.MergeRequests.ListProjectMergeRequests(int(projectID), &gl.ListProjectMergeRequestsOptions{
		ListOptions: gl.ListOptions{PerPage: MergeRequestsPerPage},
		State:       gl.Ptr("all"),
	}, gl.WithContext(ctx))

	return convert[[]domain.MergeRequest]("merge requests", mrs, resp, err)
}

func (c *Client) MergeRequest(ctx context.Context, s *session.Session, projectID, iid int64) (domain.MergeRequest, error) {
	api, err := c.api(s)
	if err != nil {
		return domain.MergeRequest{}, err
	}

	mr, resp, err := api.MergeRequests.GetMergeRequest(int(projectID), int(iid), nil, gl.WithContext(ctx))

	return convert[domain.MergeRequest]("merge request", mr, resp, err)
}

func (c *Client) Commit(ctx context.Context, s *session.Session, projectID int64, sha string) (domain.Commit, error) {
	api, err := c.api(s)
	if err != nil {
		return domain.Commit{}, err
	}

	commit, resp, err := api.Commits.GetCommit(int(projectID), sha, nil, gl.WithContext(ctx))

	return convert[domain.Commit]("commit", commit, resp, err)
}

// PushEvents returns the latest "pushed" events of a project.
func (c *Client) PushEvents(ctx context.Context, s *session.Session, projectID int64) ([]domain.Event, error) {
	api, err := c.api(s)
	if err != nil {
		return nil, err
	}

	events, resp, err := api.Events.ListProjectVisibleEvents(int(projectID), &gl.ListProjectVisibleEventsOptions{
		ListOptions: gl.ListOptions{PerPage: EventsPerPage},
		Action:      gl.Ptr(gl.PushedEventType),
	}, gl.WithContext(ctx))

	out, err := convert[[]domain.Event]("events", events, resp, err)
	if err != nil {
		return nil, err
	}

	for i := range out {
		if out[i].PushData != nil && *out[i].PushData == (domain.PushData{}) {
			out[i].PushData = nil
		}
	}

	return out, nil
}

// Compare lists the commits between two revisions.
func (c *Client) Compare(ctx context.Context, s *session.Session, projectID int64, from, to string) (domain.Comparison, error) {
	api, err := c.api(s)
	if err != nil {
		return domain.Comparison{}, err
	}

	cmp, resp, err := api.Repositories.Compare(int(projectID), &gl.CompareOptions{
		From: gl.Ptr(from),
		To:   gl.Ptr(to),
	}, gl.WithContext(ctx))

	return convert[domain.Comparison]("compare", cmp, resp, err)
}

// convert maps an API result onto its domain type. Both sides follow the
// GitLab JSON field names, so the result goes through its JSON form.
func convert[T any](what string, v any, resp *gl.Response, err error) (T, error) {
	var out T

	if err != nil {
		return out, responseError(what, resp, err)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("encode gitlab %s: %w", what, err)
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode gitlab %s: %w", what, err)
	}

	return out, nil
}

// responseError turns a non-2xx answer into an apperrors.HTTPError and wraps
// anything else.
func responseError(what string, resp *gl.Response, err error) error {
	var errResp *gl.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return &apperrors.HTTPError{Code: errResp.Response.StatusCode, URL: requestURL(errResp.Response)}
	}

	if resp != nil && resp.Response != nil && resp.StatusCode >= http.StatusMultipleChoices {
		return &apperrors.HTTPError{Code: resp.StatusCode, URL: requestURL(resp.Response)}
	}

	return fmt.Errorf("gitlab %s: %w", what, err)
}

func requestURL(resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return ""
	}

	return resp.Request.URL.String()
}
