// Package backend talks to the review backend: authentication under /_/auth
// and the enveloped business API under /api.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/YusovID/review-dashboard/internal/session"
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
		http: &http.Client{
			Timeout: 10 * time.Second,
			// Logout answers with a redirect to the login page.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}

	for _, o := range opts {
		o(c)
	}

	return c
}

type analysisPayload struct {
	Result      string  `json:"result"`
	Score       float64 `json:"score"`
	AnalyzeTime int64   `json:"analyze_time"`
}

type historyPayload struct {
	AnalysisHistory []int64 `json:"analysis_history"`
}

type reviewPayload struct {
	Review    string `json:"review"`
	CreatedAt int64  `json:"created_at"`
}

func (p reviewPayload) stored() domain.StoredReview {
	return domain.StoredReview{Review: p.Review, CreatedAt: time.Unix(p.CreatedAt, 0).UTC()}
}

type bindRequest struct {
	RepoID int64 `json:"repo_id"`
}

type analysisRequest struct {
	RepoID int64   `json:"repo_id"`
	Branch *string `json:"branch,omitempty"`
}

func (c *Client) Profile(ctx context.Context, s *session.Session) (domain.Profile, error) {
	return call[domain.Profile](ctx, c, s, http.MethodGet, "/_/auth/profile", nil)
}

// Logout revokes the token on the backend.
func (c *Client) Logout(ctx context.Context, s *session.Session) error {
	req, err := c.newRequest(ctx, s, http.MethodPost, "/_/auth/logout", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend logout: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return &apperrors.HTTPError{Code: resp.StatusCode, URL: req.URL.String()}
	}

	return nil
}

func (c *Client) BoundRepositories(ctx context.Context, s *session.Session) ([]domain.BoundRepository, error) {
	return call[[]domain.BoundRepository](ctx, c, s, http.MethodGet, "/api/repositories/", nil)
}

func (c *Client) BindRepository(ctx context.Context, s *session.Session, repoID int64) error {
	_, err := call[Empty](ctx, c, s, http.MethodPost, "/api/repositories/", bindRequest{RepoID: repoID})
	return err
}

func (c *Client) UnbindRepository(ctx context.Context, s *session.Session, repoID int64) error {
	_, err := call[Empty](ctx, c, s, http.MethodDelete, "/api/repositories/"+strconv.FormatInt(repoID, 10), nil)
	return err
}

// CreateAnalysis queues an analysis of branch, or of the default branch when
// branch is empty.
func (c *Client) CreateAnalysis(ctx context.Context, s *session.Session, repoID int64, branch string) error {
	body := analysisRequest{RepoID: repoID}
	if branch != "" {
		body.Branch = &branch
	}

	_, err := call[Empty](ctx, c, s, http.MethodPost, "/api/analysis/", body)

	return err
}

// AnalysisHistory returns analysis ids, newest first.
func (c *Client) AnalysisHistory(ctx context.Context, s *session.Session, repoID int64) ([]int64, error) {
	q := url.Values{}
	q.Set("repo_id", strconv.FormatInt(repoID, 10))

	p, err := call[historyPayload](ctx, c, s, http.MethodGet, "/api/analysis/history?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	return p.AnalysisHistory, nil
}

func (c *Client) Analysis(ctx context.Context, s *session.Session, id int64) (domain.AnalysisRecord, error) {
	p, err := call[analysisPayload](ctx, c, s, http.MethodGet, "/api/analysis/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return domain.AnalysisRecord{}, err
	}

	return domain.AnalysisRecord{
		ID:         id,
		ResultText: p.Result,
		Score:      p.Score,
		CreatedAt:  time.Unix(p.AnalyzeTime, 0).UTC(),
	}, nil
}

func (c *Client) CommitReview(ctx context.Context, s *session.Session, sha string) (domain.StoredReview, error) {
	p, err := call[reviewPayload](ctx, c, s, http.MethodGet, "/api/commits/"+url.PathEscape(sha)+"/review", nil)
	if err != nil {
		return domain.StoredReview{}, err
	}

	return p.stored(), nil
}

func (c *Client) MergeRequestReview(ctx context.Context, s *session.Session, repoID, iid int64) (domain.StoredReview, error) {
	path := fmt.Sprintf("/api/merge_requests/%d/%d/review", repoID, iid)

	p, err := call[reviewPayload](ctx, c, s, http.MethodGet, path, nil)
	if err != nil {
		return domain.StoredReview{}, err
	}

	return p.stored(), nil
}

func (c *Client) NotificationSettings(ctx context.Context, s *session.Session) (domain.NotificationSettings, error) {
	return call[domain.NotificationSettings](ctx, c, s, http.MethodGet, "/api/notifications/settings", nil)
}

// UpdateNotificationSettings persists settings and returns what was stored.
func (c *Client) UpdateNotificationSettings(
	ctx context.Context, s *session.Session, settings domain.NotificationSettings,
) (domain.NotificationSettings, error) {
	return call[domain.NotificationSettings](ctx, c, s, http.MethodPost, "/api/notifications/settings", settings)
}

func (c *Client) newRequest(ctx context.Context, s *session.Session, method, path string, body any) (*http.Request, error) {
	var reader io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}

		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	s.AuthorizeCookie(req)

	return req, nil
}

func call[T any](ctx context.Context, c *Client, s *session.Session, method, path string, body any) (T, error) {
	var zero T

	if !s.Authenticated() {
		return zero, apperrors.ErrUnauthenticated
	}

	req, err := c.newRequest(ctx, s, method, path, body)
	if err != nil {
		return zero, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("read backend response: %w", err)
	}

	var env Envelope[T]

	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Business errors may come with an error status and a valid envelope.
		if decodeErr == nil && env.Status != apperrors.StatusOK {
			_, err := env.Result()
			return zero, err
		}

		return zero, &apperrors.HTTPError{Code: resp.StatusCode, URL: req.URL.String()}
	}

	if decodeErr != nil {
		return zero, fmt.Errorf("decode backend %s: %w", path, errors.Join(apperrors.ErrUpstream, decodeErr))
	}

	return env.Result()
}
