package domain

import (
	"time"
)

// User is the GitLab profile of the signed-in user.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	State     string `json:"state,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	WebURL    string `json:"web_url,omitempty"`
}

// Profile is what the review backend knows about the token owner.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Project is a GitLab project, optionally joined with its binding.
type Project struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	NameWithNamespace string     `json:"name_with_namespace,omitempty"`
	PathWithNamespace string     `json:"path_with_namespace,omitempty"`
	Description       string     `json:"description,omitempty"`
	WebURL            string     `json:"web_url,omitempty"`
	DefaultBranch     string     `json:"default_branch,omitempty"`
	AvatarURL         string     `json:"avatar_url,omitempty"`
	LastActivityAt    *time.Time `json:"last_activity_at,omitempty"`

	AnalysisID *int64 `json:"analysis_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Available reports whether the project detail lookup succeeded.
func (p Project) Available() bool {
	return p.Error == ""
}

// BoundRepository is a binding record kept by the review backend.
type BoundRepository struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	AnalysisID *int64 `json:"analysis_id,omitempty"`
}

// Views the dashboard main area can show.
const (
	ViewBinding  = "binding"
	ViewAnalysis = "analysis"
)

// ProjectList is the sidebar state: bound projects and the current selection.
type ProjectList struct {
	Projects   []Project `json:"projects"`
	SelectedID *int64    `json:"selected_id"`
	View       string    `json:"view"`
}

type Commit struct {
	ID          string    `json:"id"`
	ShortID     string    `json:"short_id"`
	Title       string    `json:"title"`
	Message     string    `json:"message,omitempty"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	WebURL      string    `json:"web_url,omitempty"`
}

type Branch struct {
	Name      string `json:"name"`
	Default   bool   `json:"default"`
	Protected bool   `json:"protected"`
	Merged    bool   `json:"merged"`
	WebURL    string `json:"web_url,omitempty"`
}

type Author struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type MergeRequest struct {
	ID           int64     `json:"id"`
	IID          int64     `json:"iid"`
	ProjectID    int64     `json:"project_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	State        string    `json:"state"`
	SourceBranch string    `json:"source_branch"`
	TargetBranch string    `json:"target_branch"`
	SHA          string    `json:"sha,omitempty"`
	Author       Author    `json:"author"`
	CreatedAt    time.Time `json:"created_at"`
	WebURL       string    `json:"web_url,omitempty"`
}

// PushData is the push payload of a GitLab "pushed" event.
type PushData struct {
	CommitCount int    `json:"commit_count"`
	Action      string `json:"action"`
	RefType     string `json:"ref_type"`
	CommitFrom  string `json:"commit_from"`
	CommitTo    string `json:"commit_to"`
	Ref         string `json:"ref"`
	CommitTitle string `json:"commit_title"`
}

type Event struct {
	ID         int64     `json:"id"`
	ProjectID  int64     `json:"project_id"`
	ActionName string    `json:"action_name"`
	CreatedAt  time.Time `json:"created_at"`
	Author     Author    `json:"author"`
	PushData   *PushData `json:"push_data,omitempty"`
}

// Comparison is the result of GitLab's repository compare endpoint.
type Comparison struct {
	Commits []Commit `json:"commits"`
}

// PushEvent is one entry of the commit history sidebar.
type PushEvent struct {
	Event   Event    `json:"event"`
	Commits []Commit `json:"commits"`
	Error   string   `json:"error,omitempty"`
}

// ProjectDetails bundles everything the project view loads at once.
type ProjectDetails struct {
	Project       Project        `json:"project"`
	Commits       []Commit       `json:"commits"`
	Branches      []Branch       `json:"branches"`
	MergeRequests []MergeRequest `json:"merge_requests"`
}

// AnalysisRecord is a stored natural-language analysis of a repository.
type AnalysisRecord struct {
	ID         int64     `json:"id"`
	ResultText string    `json:"result"`
	Score      float64   `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
}

// StoredReview is a commit or merge request review as the backend keeps it:
// the review itself is a serialized Review.
type StoredReview struct {
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
}

// CommitAnalysis is a parsed review of a commit or merge request.
type CommitAnalysis struct {
	CommitID          string    `json:"commit_id"`
	Title             string    `json:"title"`
	Author            string    `json:"author"`
	CreatedAt         time.Time `json:"created_at"`
	Review            Review    `json:"review"`
	IsMergeRequest    bool      `json:"is_merge_request"`
	MergeRequestIID   int64     `json:"merge_request_iid,omitempty"`
	SourceBranch      string    `json:"source_branch,omitempty"`
	TargetBranch      string    `json:"target_branch,omitempty"`
	MergeRequestState string    `json:"merge_request_state,omitempty"`
}

// LineRange is an inclusive line span. End is zero when absent.
type LineRange struct {
	Start int `json:"start"`
	End   int `json:"end,omitempty"`
}

// FileReference points at a file, optionally at a line range.
type FileReference struct {
	FilePath  string     `json:"file_path"`
	LineRange *LineRange `json:"line_range,omitempty"`
}

// SourceLinks is the context needed to turn a FileReference into a URL.
type SourceLinks struct {
	WebURL string
	Ref    string
}

// RenderedDocument is a Markdown document and its HTML rendition.
type RenderedDocument struct {
	Key              string    `json:"key" db:"key"`
	Markdown         string    `json:"markdown" db:"markdown"`
	HTML             string    `json:"html" db:"html"`
	DiagramsRendered int       `json:"diagrams_rendered" db:"diagrams_rendered"`
	DiagramsFailed   int       `json:"diagrams_failed" db:"diagrams_failed"`
	RenderedAt       time.Time `json:"rendered_at" db:"rendered_at"`
}

// AnalysisView is a rendered repository analysis.
type AnalysisView struct {
	AnalysisID int64            `json:"analysis_id"`
	Score      float64          `json:"score"`
	CreatedAt  time.Time        `json:"created_at"`
	Document   RenderedDocument `json:"document"`
}

// CommitAnalysisView is a rendered commit or merge request review.
type CommitAnalysisView struct {
	Analysis CommitAnalysis   `json:"analysis"`
	Document RenderedDocument `json:"document"`
}

type EmailConfig struct {
	Enabled bool `json:"enabled"`
}

type WebhookConfig struct {
	Enabled bool    `json:"enabled"`
	URL     *string `json:"url"`
	Secret  *string `json:"secret"`
}

// NotificationSettings are the user's notification preferences.
type NotificationSettings struct {
	NotifyLevel int           `json:"notify_level"`
	Email       EmailConfig   `json:"email"`
	Webhook     WebhookConfig `json:"webhook"`
}
