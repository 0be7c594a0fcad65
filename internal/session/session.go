// Package session owns the mutable per-portal state that used to live in
// ambient globals: the bearer token and the UI locale. The view layer is
// the only writer (login, logout, locale switch); the API client only
// reads the token. Passing the session explicitly keeps ownership clear.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/2k1998/bwc-portal/internal/core"
)

// Session holds the authenticated state for the running portal.
type Session struct {
	mu     sync.RWMutex
	token  string
	locale string
	user   *core.User
}

// New creates a session with the given default locale and optional
// pre-provisioned token.
func New(locale, token string) *Session {
	return &Session{locale: locale, token: token}
}

// Token returns the current bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken installs a new bearer token after login.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear drops the token and the cached user on logout.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}

// Locale returns the active UI locale.
func (s *Session) Locale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// SetLocale switches the UI locale.
func (s *Session) SetLocale(locale string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = locale
}

// User returns the authenticated user, nil when unknown.
func (s *Session) User() *core.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetUser caches the authenticated user record.
func (s *Session) SetUser(u *core.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// TokenExpiry inspects the bearer token's exp claim without verifying the
// signature; verification is the backend's job, the portal only needs the
// expiry to warn the user. Returns false when there is no token or no
// usable exp claim.
func (s *Session) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// ExpiresWithin reports whether the token expires before now+window. A
// token without a readable expiry never triggers the warning.
func (s *Session) ExpiresWithin(now time.Time, window time.Duration) bool {
	exp, ok := s.TokenExpiry()
	if !ok {
		return false
	}
	return exp.Before(now.Add(window))
}
