package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrInvalidToken    = errors.New("invalid gitlab token")
	ErrAlreadyBound    = errors.New("repository already bound")
	ErrPending         = errors.New("result is still being prepared")
	ErrFailed          = errors.New("upstream job failed")
	ErrForbidden       = errors.New("permission denied")
	ErrParseAnalysis   = errors.New("failed to parse analysis data")
	ErrSuperseded      = errors.New("request superseded by a newer one")
	ErrUpstream        = errors.New("upstream request failed")
)

// Messages shown to dashboard users verbatim.
const (
	AlreadyBoundMessage  = "该仓库已绑定，请勿重复绑定"
	ParseAnalysisMessage = "解析分析数据失败"
)

// Status is the application status code carried in backend envelopes.
type Status int

const (
	StatusOK Status = 0

	StatusAuth             Status = 1
	StatusInvalidOAuthCode Status = 101
	StatusInvalidToken     Status = 102
	StatusPermissionDenied Status = 103

	StatusRepo             Status = 2
	StatusRepoNotExist     Status = 201
	StatusRepoAlreadyBound Status = 202

	StatusAnalysis         Status = 3
	StatusAnalysisPending  Status = 301
	StatusAnalysisFailed   Status = 302
	StatusAnalysisNotExist Status = 303

	StatusCommitReview         Status = 4
	StatusCommitReviewPending  Status = 401
	StatusCommitReviewFailed   Status = 402
	StatusCommitReviewNotExist Status = 403

	StatusNotification                Status = 5
	StatusInvalidNotificationSettings Status = 501

	StatusMRReview         Status = 6
	StatusMRReviewPending  Status = 601
	StatusMRReviewFailed   Status = 602
	StatusMRReviewNotExist Status = 603
)

// BusinessError is a non-zero envelope status returned by the backend.
type BusinessError struct {
	Status Status
	Info   string
}

func (e *BusinessError) Error() string {
	if e.Info == "" {
		return fmt.Sprintf("backend status %d", e.Status)
	}

	return fmt.Sprintf("backend status %d: %s", e.Status, e.Info)
}

// Is maps known status codes onto the package sentinels.
func (e *BusinessError) Is(target error) bool {
	switch target {
	case ErrInvalidToken, ErrUnauthenticated:
		return e.Status == StatusInvalidToken || e.Status == StatusInvalidOAuthCode
	case ErrNotFound:
		return e.Status == StatusRepoNotExist ||
			e.Status == StatusAnalysisNotExist ||
			e.Status == StatusCommitReviewNotExist ||
			e.Status == StatusMRReviewNotExist
	case ErrAlreadyBound:
		return e.Status == StatusRepoAlreadyBound
	case ErrPending:
		return e.Status == StatusAnalysisPending ||
			e.Status == StatusCommitReviewPending ||
			e.Status == StatusMRReviewPending
	case ErrFailed:
		return e.Status == StatusAnalysisFailed ||
			e.Status == StatusCommitReviewFailed ||
			e.Status == StatusMRReviewFailed
	case ErrForbidden:
		return e.Status == StatusPermissionDenied
	case ErrInvalidRequest:
		return e.Status == StatusInvalidNotificationSettings
	}

	return false
}

// HTTPError is a non-2xx answer without a usable envelope.
type HTTPError struct {
	Code int
	URL  string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error %d from %s", e.Code, e.URL)
}

func (e *HTTPError) Is(target error) bool {
	switch target {
	case ErrUpstream:
		return true
	case ErrInvalidToken, ErrUnauthenticated:
		return e.Code == 401
	case ErrNotFound:
		return e.Code == 404
	case ErrForbidden:
		return e.Code == 403
	}

	return false
}
