package auth

import (
	"sync"
	"time"

	"inventory-manager/internal/domain"

	"github.com/golang-jwt/jwt/v4"
)

// Snapshot is the persisted form of a session
type Snapshot struct {
	User         domain.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// Session holds the signed-in user and token pair. It is passed explicitly to
// the components that need credentials; there is no package-level session.
type Session struct {
	mu           sync.RWMutex
	user         *domain.User
	accessToken  string
	refreshToken string
}

func NewSession() *Session {
	return &Session{}
}

// Set replaces the user and both tokens
func (s *Session) Set(user domain.User, accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.accessToken = accessToken
	s.refreshToken = refreshToken
}

// SetTokens rotates the token pair, keeping the user
func (s *Session) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
}

// SetUser replaces the cached user record after a profile change
func (s *Session) SetUser(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// User returns the signed-in user, if any
func (s *Session) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// Authenticated is true when both an access token and a user are present
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken != "" && s.user != nil
}

// Clear forgets the user and tokens
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.accessToken = ""
	s.refreshToken = ""
}

// Snapshot returns the persistable state; ok is false for an empty session.
func (s *Session) Snapshot() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil || s.accessToken == "" {
		return Snapshot{}, false
	}
	return Snapshot{User: *s.user, AccessToken: s.accessToken, RefreshToken: s.refreshToken}, true
}

// Restore loads a previously persisted snapshot
func (s *Session) Restore(snap Snapshot) {
	s.Set(snap.User, snap.AccessToken, snap.RefreshToken)
}

// NeedsRefresh reports whether the access token expires within skew of now.
// Tokens without a readable exp claim are treated as fresh.
func (s *Session) NeedsRefresh(now time.Time, skew time.Duration) bool {
	token := s.AccessToken()
	if token == "" || s.RefreshToken() == "" {
		return false
	}
	expiresAt, ok := TokenExpiry(token)
	if !ok {
		return false
	}
	return !now.Add(skew).Before(expiresAt)
}

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// The signing key lives on the server; the client only needs the timestamp.
func TokenExpiry(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
