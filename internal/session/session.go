// Package session carries the GitLab token of one dashboard request.
// Every outbound API call receives a *Session explicitly instead of reading
// the cookie on its own.
package session

import (
	"net/http"
	"time"
)

// CookieName is the cookie holding the GitLab access token.
const CookieName = "token"

// Session wraps the token of the current user. A nil *Session behaves as an
// anonymous session.
type Session struct {
	token string
	w     http.ResponseWriter
}

// New returns a session for token. Clear on such a session only forgets the
// token; there is no cookie to expire.
func New(token string) *Session {
	return &Session{token: token}
}

// FromRequest reads the token cookie of r. Clear expires the cookie through w.
func FromRequest(w http.ResponseWriter, r *http.Request) *Session {
	s := &Session{w: w}
	s.Refresh(r)

	return s
}

// Token returns the raw token, empty when anonymous.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}

	return s.token
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Refresh re-reads the token cookie from r.
func (s *Session) Refresh(r *http.Request) {
	s.token = ""

	if c, err := r.Cookie(CookieName); err == nil {
		s.token = c.Value
	}
}

// Clear forgets the token and, when bound to a response, expires the cookie.
func (s *Session) Clear() {
	if s == nil {
		return
	}

	s.token = ""

	if s.w != nil {
		http.SetCookie(s.w, &http.Cookie{
			Name:     CookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0).UTC(),
			MaxAge:   -1,
			SameSite: http.SameSiteStrictMode,
		})
	}
}

// AuthorizeCookie forwards the token cookie, as the review backend expects.
func (s *Session) AuthorizeCookie(req *http.Request) {
	if s.Authenticated() {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: s.token})
	}
}
