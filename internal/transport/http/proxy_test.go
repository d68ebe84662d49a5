package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/YusovID/review-dashboard/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_BackendProxy(t *testing.T) {
	var (
		gotPath   string
		gotQuery  string
		gotCookie string
	)

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery

		if c, err := r.Cookie(session.CookieName); err == nil {
			gotCookie = c.Value
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status":0,"info":"","data":[]}`)
	}))
	defer backend.Close()

	target, err := url.Parse(backend.URL)
	require.NoError(t, err)

	handler := newTestServer(newServiceMocks(), target)

	testCases := []struct {
		name     string
		target   string
		wantPath string
		wantCORS bool
	}{
		{name: "API call", target: "/api/analysis/history?repo_id=5", wantPath: "/api/analysis/history", wantCORS: true},
		{name: "Auth call", target: "/_/auth/profile", wantPath: "/_/auth/profile"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotPath, gotQuery, gotCookie = "", "", ""

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
			req.Header.Set("Origin", "https://review.example.com")

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"status":0,"info":"","data":[]}`, rr.Body.String())
			assert.Equal(t, tc.wantPath, gotPath)
			assert.Equal(t, "tok", gotCookie)

			if tc.wantCORS {
				assert.Equal(t, "repo_id=5", gotQuery)
				assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestServer_BackendProxy_Preflight(t *testing.T) {
	called := false

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer backend.Close()

	target, err := url.Parse(backend.URL)
	require.NoError(t, err)

	handler := newTestServer(newServiceMocks(), target)

	testCases := []struct {
		name        string
		method      string
		headers     string
		wantMethods string
		wantHeaders string
		wantOrigin  string
	}{
		{
			name:        "Allowed method and headers",
			method:      http.MethodPut,
			headers:     "content-type, authorization",
			wantMethods: http.MethodPut,
			wantHeaders: "Content-Type, Authorization",
			wantOrigin:  "*",
		},
		{
			name:    "Method outside the allowed list",
			method:  http.MethodPatch,
			headers: "content-type",
		},
		{
			name:    "Header outside the allowed list",
			method:  http.MethodPost,
			headers: "x-custom",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			called = false

			req := httptest.NewRequest(http.MethodOptions, "/api/repositories/", nil)
			req.Header.Set("Origin", "https://review.example.com")
			req.Header.Set("Access-Control-Request-Method", tc.method)
			req.Header.Set("Access-Control-Request-Headers", tc.headers)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tc.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tc.wantMethods, rr.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, tc.wantHeaders, rr.Header().Get("Access-Control-Allow-Headers"))
			assert.False(t, called)
		})
	}
}

func TestServer_BackendProxy_Unavailable(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	target, err := url.Parse(backend.URL)
	require.NoError(t, err)
	backend.Close()

	rr := httptest.NewRecorder()
	newTestServer(newServiceMocks(), target).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/repositories/", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.JSONEq(t, `{"error":{"code":"UPSTREAM_ERROR","message":"backend unavailable"}}`, rr.Body.String())
}

func TestServer_NoProxyWithoutBackend(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestServer(newServiceMocks(), nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/repositories/", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
