package service

import (
	"io"
	"log/slog"

	"github.com/YusovID/review-dashboard/internal/session"
)

// mocks bundles the collaborators of a service under test.
type mocks struct {
	gitlab  *GitLabMock
	backend *BackendMock
}

func newMocks() *mocks {
	return &mocks{
		gitlab:  new(GitLabMock),
		backend: new(BackendMock),
	}
}

func (m *mocks) base() BaseService {
	return NewBaseService(m.gitlab, m.backend, discardLogger())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSession() *session.Session {
	return session.New("tok")
}

func int64Ptr(v int64) *int64 {
	return &v
}

func sessionWithoutToken() *session.Session {
	return session.New("")
}
