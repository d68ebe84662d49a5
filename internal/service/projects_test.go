package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectServiceImpl_ListProjects(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		selected     *int64
		setupMock    func(m *mocks)
		wantIDs      []int64
		wantErrors   map[int64]bool
		wantSelected *int64
		wantView     string
		wantErr      bool
	}{
		{
			name: "No bound repositories shows binding view",
			setupMock: func(m *mocks) {
				m.backend.On("BoundRepositories", mock.Anything, mock.Anything).Return([]domain.BoundRepository{}, nil)
			},
			wantIDs:  []int64{},
			wantView: domain.ViewBinding,
		},
		{
			name: "First available project is selected by default",
			setupMock: func(m *mocks) {
				m.backend.On("BoundRepositories", mock.Anything, mock.Anything).Return([]domain.BoundRepository{
					{ID: 1, Name: "gone"},
					{ID: 2, Name: "api", AnalysisID: int64Ptr(20)},
				}, nil)
				m.gitlab.On("Project", mock.Anything, mock.Anything, int64(1)).
					Return(domain.Project{}, &apperrors.HTTPError{Code: http.StatusNotFound})
				m.gitlab.On("Project", mock.Anything, mock.Anything, int64(2)).
					Return(domain.Project{ID: 2, Name: "api"}, nil)
			},
			wantIDs:      []int64{1, 2},
			wantErrors:   map[int64]bool{1: true},
			wantSelected: int64Ptr(2),
			wantView:     domain.ViewAnalysis,
		},
		{
			name:     "Explicit selection wins",
			selected: int64Ptr(3),
			setupMock: func(m *mocks) {
				m.backend.On("BoundRepositories", mock.Anything, mock.Anything).Return([]domain.BoundRepository{
					{ID: 2}, {ID: 3},
				}, nil)
				m.gitlab.On("Project", mock.Anything, mock.Anything, int64(2)).Return(domain.Project{ID: 2}, nil)
				m.gitlab.On("Project", mock.Anything, mock.Anything, int64(3)).Return(domain.Project{ID: 3}, nil)
			},
			wantIDs:      []int64{2, 3},
			wantSelected: int64Ptr(3),
			wantView:     domain.ViewAnalysis,
		},
		{
			name:     "Unavailable explicit selection falls back to first available",
			selected: int64Ptr(1),
			setupMock: func(m *mocks) {
				m.backend.On("BoundRepositories", mock.Anything, mock.Anything).Return([]domain.BoundRepository{
					{ID: 1, Name: "gone"}, {ID: 2, Name: "api"},
				}, nil)
				m.gitlab.On("Project", mock.Anything, mock.Anything, int64(1)).
					Return(domain.Project{}, &apperrors.HTTPError{Code: http.StatusNotFound})
				m.gitlab.On("Project", mock.Anything, mock.Anything, int64(2)).Return(domain.Project{ID: 2}, nil)
			},
			wantIDs:      []int64{1, 2},
			wantErrors:   map[int64]bool{1: true},
			wantSelected: int64Ptr(2),
			wantView:     domain.ViewAnalysis,
		},
		{
			name:     "Only unavailable projects leave nothing selected",
			selected: int64Ptr(1),
			setupMock: func(m *mocks) {
				m.backend.On("BoundRepositories", mock.Anything, mock.Anything).Return([]domain.BoundRepository{
					{ID: 1, Name: "gone"},
				}, nil)
				m.gitlab.On("Project", mock.Anything, mock.Anything, int64(1)).
					Return(domain.Project{}, &apperrors.HTTPError{Code: http.StatusNotFound})
			},
			wantIDs:    []int64{1},
			wantErrors: map[int64]bool{1: true},
			wantView:   domain.ViewBinding,
		},
		{
			name: "Backend failure fails the list",
			setupMock: func(m *mocks) {
				m.backend.On("BoundRepositories", mock.Anything, mock.Anything).Return(nil, errors.New("backend down"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newMocks()
			tc.setupMock(m)

			svc := NewProjectService(m.base(), NewTracker())

			list, err := svc.ListProjects(ctx, testSession(), tc.selected)
			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, list)

				return
			}

			require.NoError(t, err)

			ids := make([]int64, 0, len(list.Projects))
			for _, p := range list.Projects {
				ids = append(ids, p.ID)
				assert.Equal(t, tc.wantErrors[p.ID], !p.Available(), "project %d", p.ID)
			}

			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, tc.wantSelected, list.SelectedID)
			assert.Equal(t, tc.wantView, list.View)

			m.backend.AssertExpectations(t)
			m.gitlab.AssertExpectations(t)
		})
	}
}

func TestProjectServiceImpl_ListProjects_JoinsAnalysisID(t *testing.T) {
	m := newMocks()
	m.backend.On("BoundRepositories", mock.Anything, mock.Anything).Return([]domain.BoundRepository{
		{ID: 2, AnalysisID: int64Ptr(20)},
	}, nil)
	m.gitlab.On("Project", mock.Anything, mock.Anything, int64(2)).Return(domain.Project{ID: 2, Name: "api"}, nil)

	list, err := NewProjectService(m.base(), NewTracker()).ListProjects(context.Background(), testSession(), nil)
	require.NoError(t, err)
	require.Len(t, list.Projects, 1)
	require.NotNil(t, list.Projects[0].AnalysisID)
	assert.Equal(t, int64(20), *list.Projects[0].AnalysisID)
}

func TestProjectServiceImpl_ProjectDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		m := newMocks()
		m.gitlab.On("Project", mock.Anything, mock.Anything, int64(5)).Return(domain.Project{ID: 5, Name: "api"}, nil)
		m.gitlab.On("Commits", mock.Anything, mock.Anything, int64(5)).Return([]domain.Commit{{ID: "a"}}, nil)
		m.gitlab.On("Branches", mock.Anything, mock.Anything, int64(5)).Return([]domain.Branch{{Name: "main"}}, nil)
		m.gitlab.On("MergeRequests", mock.Anything, mock.Anything, int64(5)).Return([]domain.MergeRequest{{IID: 1}}, nil)

		details, err := NewProjectService(m.base(), NewTracker()).ProjectDetails(ctx, testSession(), 5)
		require.NoError(t, err)

		assert.Equal(t, "api", details.Project.Name)
		assert.Len(t, details.Commits, 1)
		assert.Len(t, details.Branches, 1)
		assert.Len(t, details.MergeRequests, 1)
	})

	t.Run("One failing fetch fails the whole call", func(t *testing.T) {
		m := newMocks()
		m.gitlab.On("Project", mock.Anything, mock.Anything, int64(5)).Return(domain.Project{ID: 5}, nil).Maybe()
		m.gitlab.On("Commits", mock.Anything, mock.Anything, int64(5)).Return(nil, errors.New("boom")).Maybe()
		m.gitlab.On("Branches", mock.Anything, mock.Anything, int64(5)).Return([]domain.Branch{}, nil).Maybe()
		m.gitlab.On("MergeRequests", mock.Anything, mock.Anything, int64(5)).Return([]domain.MergeRequest{}, nil).Maybe()

		details, err := NewProjectService(m.base(), NewTracker()).ProjectDetails(ctx, testSession(), 5)
		require.ErrorContains(t, err, "boom")
		assert.Nil(t, details)
	})
}

func TestProjectServiceImpl_ProjectDetails_Superseded(t *testing.T) {
	m := newMocks()

	started := make(chan struct{})

	m.gitlab.On("Project", mock.Anything, mock.Anything, int64(1)).
		Run(func(args mock.Arguments) {
			close(started)
			<-args.Get(0).(context.Context).Done()
		}).
		Return(domain.Project{}, context.Canceled)
	m.gitlab.On("Commits", mock.Anything, mock.Anything, int64(1)).Return([]domain.Commit{}, nil).Maybe()
	m.gitlab.On("Branches", mock.Anything, mock.Anything, int64(1)).Return([]domain.Branch{}, nil).Maybe()
	m.gitlab.On("MergeRequests", mock.Anything, mock.Anything, int64(1)).Return([]domain.MergeRequest{}, nil).Maybe()

	m.gitlab.On("Project", mock.Anything, mock.Anything, int64(2)).Return(domain.Project{ID: 2}, nil)
	m.gitlab.On("Commits", mock.Anything, mock.Anything, int64(2)).Return([]domain.Commit{}, nil)
	m.gitlab.On("Branches", mock.Anything, mock.Anything, int64(2)).Return([]domain.Branch{}, nil)
	m.gitlab.On("MergeRequests", mock.Anything, mock.Anything, int64(2)).Return([]domain.MergeRequest{}, nil)

	svc := NewProjectService(m.base(), NewTracker())

	oldErr := make(chan error, 1)

	go func() {
		_, err := svc.ProjectDetails(context.Background(), testSession(), 1)
		oldErr <- err
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("first request never started")
	}

	details, err := svc.ProjectDetails(context.Background(), testSession(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), details.Project.ID)

	select {
	case err := <-oldErr:
		require.ErrorIs(t, err, apperrors.ErrSuperseded)
	case <-time.After(time.Second):
		t.Fatal("first request was not cancelled")
	}
}

func TestProjectServiceImpl_PushHistory(t *testing.T) {
	m := newMocks()

	events := []domain.Event{
		{ID: 1, PushData: &domain.PushData{CommitFrom: "a1", CommitTo: "b1"}},
		{ID: 2},
		{ID: 3, PushData: &domain.PushData{CommitFrom: "0000000000000000000000000000000000000000", CommitTo: "c1"}},
		{ID: 4, PushData: &domain.PushData{CommitFrom: "a4", CommitTo: "b4"}},
	}

	m.gitlab.On("PushEvents", mock.Anything, mock.Anything, int64(5)).Return(events, nil)
	m.gitlab.On("Compare", mock.Anything, mock.Anything, int64(5), "a1", "b1").
		Return(domain.Comparison{Commits: []domain.Commit{{ID: "b1"}}}, nil)
	m.gitlab.On("Compare", mock.Anything, mock.Anything, int64(5), "a4", "b4").
		Return(domain.Comparison{}, errors.New("compare failed"))

	pushes, err := NewProjectService(m.base(), NewTracker()).PushHistory(context.Background(), testSession(), 5)
	require.NoError(t, err)
	require.Len(t, pushes, 3)

	assert.Equal(t, int64(1), pushes[0].Event.ID)
	assert.Len(t, pushes[0].Commits, 1)
	assert.Empty(t, pushes[0].Error)

	assert.Equal(t, int64(3), pushes[1].Event.ID)
	assert.Empty(t, pushes[1].Commits)
	assert.Empty(t, pushes[1].Error)

	assert.Equal(t, int64(4), pushes[2].Event.ID)
	assert.Contains(t, pushes[2].Error, "compare failed")

	m.gitlab.AssertExpectations(t)
}
