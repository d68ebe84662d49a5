package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/YusovID/review-dashboard/internal/session"
	"github.com/YusovID/review-dashboard/internal/validation"
	"github.com/YusovID/review-dashboard/pkg/api"
)

func (s *Server) GetMe(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetMe"

	user, err := s.services.Auth.CurrentUser(r.Context(), session.FromRequest(w, r))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, api.CurrentUserResponse{User: *user})
}

func (s *Server) PostLogout(w http.ResponseWriter, r *http.Request) {
	s.services.Auth.Logout(r.Context(), session.FromRequest(w, r))

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ListProjects(w http.ResponseWriter, r *http.Request, params api.ListProjectsParams) {
	const op = "internal.transport.http.ListProjects"

	list, err := s.services.Projects.ListProjects(r.Context(), session.FromRequest(w, r), params.Selected)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, list)
}

func (s *Server) GetProjectDetails(w http.ResponseWriter, r *http.Request, projectID api.ProjectID) {
	const op = "internal.transport.http.GetProjectDetails"

	if err := positiveID("projectID", projectID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	details, err := s.services.Projects.ProjectDetails(r.Context(), session.FromRequest(w, r), projectID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, details)
}

func (s *Server) GetPushHistory(w http.ResponseWriter, r *http.Request, projectID api.ProjectID) {
	const op = "internal.transport.http.GetPushHistory"

	if err := positiveID("projectID", projectID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	pushes, err := s.services.Projects.PushHistory(r.Context(), session.FromRequest(w, r), projectID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, api.PushHistoryResponse{Pushes: pushes})
}

func (s *Server) GetProjectAnalysis(w http.ResponseWriter, r *http.Request, projectID api.ProjectID) {
	const op = "internal.transport.http.GetProjectAnalysis"

	if err := positiveID("projectID", projectID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	view, err := s.services.Analysis.ProjectAnalysis(r.Context(), session.FromRequest(w, r), projectID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, view)
}

func (s *Server) TriggerAnalysis(w http.ResponseWriter, r *http.Request, projectID api.ProjectID) {
	const op = "internal.transport.http.TriggerAnalysis"

	if err := positiveID("projectID", projectID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	// The body is optional; without one the default branch is analysed.
	var req api.TriggerAnalysisJSONRequestBody
	if err := s.decodeAndValidate(r, &req); err != nil && !errors.Is(err, io.EOF) {
		s.handleServiceError(w, r, op, err)
		return
	}

	branch, err := s.services.Analysis.TriggerAnalysis(
		r.Context(), session.FromRequest(w, r), projectID, strings.TrimSpace(req.Branch),
	)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusAccepted, api.TriggerAnalysisResponse{Branch: branch})
}

func (s *Server) GetAnalysisHistory(w http.ResponseWriter, r *http.Request, projectID api.ProjectID) {
	const op = "internal.transport.http.GetAnalysisHistory"

	if err := positiveID("projectID", projectID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	ids, err := s.services.Analysis.AnalysisHistory(r.Context(), session.FromRequest(w, r), projectID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, api.AnalysisHistoryResponse{AnalysisHistory: ids})
}

func (s *Server) GetAnalysisByID(w http.ResponseWriter, r *http.Request, projectID api.ProjectID, analysisID int64) {
	const op = "internal.transport.http.GetAnalysisByID"

	if err := errors.Join(positiveID("projectID", projectID), positiveID("analysisID", analysisID)); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	view, err := s.services.Analysis.ProjectAnalysisByID(r.Context(), session.FromRequest(w, r), projectID, analysisID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, view)
}

func (s *Server) GetCommitAnalysis(w http.ResponseWriter, r *http.Request, projectID api.ProjectID, sha string) {
	const op = "internal.transport.http.GetCommitAnalysis"

	if err := positiveID("projectID", projectID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := validation.ValidateVar("sha", sha, "sha"); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	view, err := s.services.Analysis.CommitAnalysis(r.Context(), session.FromRequest(w, r), projectID, sha)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, view)
}

func (s *Server) GetMergeRequestAnalysis(w http.ResponseWriter, r *http.Request, projectID api.ProjectID, iid int64) {
	const op = "internal.transport.http.GetMergeRequestAnalysis"

	if err := errors.Join(positiveID("projectID", projectID), positiveID("iid", iid)); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	view, err := s.services.Analysis.MergeRequestAnalysis(r.Context(), session.FromRequest(w, r), projectID, iid)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, view)
}

func (s *Server) SearchRepositories(w http.ResponseWriter, r *http.Request, params api.SearchRepositoriesParams) {
	const op = "internal.transport.http.SearchRepositories"

	var query string
	if params.Q != nil {
		query = *params.Q
	}

	projects, err := s.services.Binding.SearchRepositories(r.Context(), session.FromRequest(w, r), query)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, api.RepositorySearchResponse{Projects: projects})
}

func (s *Server) BindRepository(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.BindRepository"

	var req api.BindRepositoryJSONRequestBody
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	list, err := s.services.Binding.BindRepository(r.Context(), session.FromRequest(w, r), req.ProjectId)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, list)
}

func (s *Server) VerifyRepository(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.VerifyRepository"

	var req api.VerifyRepositoryJSONRequestBody
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	id, err := s.services.Binding.VerifyAndGetRepositoryID(r.Context(), session.FromRequest(w, r), req.Name)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, api.VerifyRepositoryResponse{ProjectId: id})
}

func (s *Server) UnbindRepository(w http.ResponseWriter, r *http.Request, projectID api.ProjectID) {
	const op = "internal.transport.http.UnbindRepository"

	if err := positiveID("projectID", projectID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := s.services.Binding.UnbindRepository(r.Context(), session.FromRequest(w, r), projectID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetNotificationSettings(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetNotificationSettings"

	settings, err := s.services.Notifications.Settings(r.Context(), session.FromRequest(w, r))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, settings)
}

func (s *Server) PutNotificationSettings(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PutNotificationSettings"

	var req api.PutNotificationSettingsJSONRequestBody
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	settings, err := s.services.Notifications.UpdateSettings(r.Context(), session.FromRequest(w, r), notificationSettings(req))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, settings)
}

// PatchNotificationSettings accepts settings while the user is still editing;
// the write happens once edits pause.
func (s *Server) PatchNotificationSettings(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PatchNotificationSettings"

	var req api.PatchNotificationSettingsJSONRequestBody
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := s.services.Notifications.ScheduleUpdate(r.Context(), session.FromRequest(w, r), notificationSettings(req)); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
