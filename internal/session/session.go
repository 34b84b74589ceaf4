// Package session owns the client's authentication state.
//
// The source of truth is a pair of persisted token files; the in-memory
// Status is derived from them once at startup and then only changed by
// explicit Login/Logout calls. Navigation never mutates it.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chriskampolis/tably/pkg/logger"
)

// Status is the derived authentication state the rest of the client reads.
// Loading stays true until the initial token check has run, so callers can
// tell "still checking" apart from "checked, not authenticated".
type Status struct {
	Authenticated bool
	Loading       bool
}

// Refresher exchanges a refresh token for a new access token. Wired to the
// API client's token-refresh call; nil disables the refresh path.
type Refresher func(ctx context.Context, refreshToken string) (string, error)

// Store is the process-wide session. Construct one with New and pass it
// down explicitly; there is no hidden global.
type Store struct {
	mu      sync.Mutex
	creds   *credentialStore
	refresh Refresher
	status  Status
	now     func() time.Time
}

// New returns a Store whose tokens live under dir. The store starts in the
// loading state; call Initialize before trusting Status.
func New(dir string, refresh Refresher) *Store {
	return &Store{
		creds:   newCredentialStore(dir),
		refresh: refresh,
		status:  Status{Loading: true},
		now:     time.Now,
	}
}

// Initialize derives the authentication state from the persisted tokens.
//
// Absent token → unauthenticated. Undecodable token → treated exactly like
// absent: purged, unauthenticated, no error surfaced. Expired token → one
// refresh attempt when a refresh token is on disk, otherwise purge. The
// loading flag is cleared on every path out of here.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		s.status.Loading = false
	}()

	token := s.creds.get(accessTokenFile)
	if token == "" {
		s.status.Authenticated = false
		return nil
	}

	expired, err := s.expired(token)
	if err != nil {
		logger.Warn("session: discarding undecodable access token", "error", err)
		s.status.Authenticated = false
		return s.creds.clear()
	}

	if !expired {
		s.status.Authenticated = true
		return nil
	}

	return s.tryRefresh(ctx)
}

// tryRefresh exchanges the stored refresh token for a new access token.
// Any failure degrades to logged-out. Caller holds the lock.
func (s *Store) tryRefresh(ctx context.Context) error {
	refreshToken := s.creds.get(refreshTokenFile)
	if refreshToken == "" || s.refresh == nil {
		s.status.Authenticated = false
		return s.creds.clear()
	}

	access, err := s.refresh(ctx, refreshToken)
	if err != nil {
		logger.Warn("session: token refresh failed", "error", err)
		s.status.Authenticated = false
		return s.creds.clear()
	}

	if err := s.creds.put(accessTokenFile, access); err != nil {
		s.status.Authenticated = false
		return err
	}
	s.status.Authenticated = true
	return nil
}

// Login persists the token pair and marks the session authenticated.
func (s *Store) Login(accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.creds.put(accessTokenFile, accessToken); err != nil {
		return err
	}
	if refreshToken != "" {
		if err := s.creds.put(refreshTokenFile, refreshToken); err != nil {
			return err
		}
	} else if err := s.creds.delete(refreshTokenFile); err != nil {
		// A stale refresh token must not outlive the session it belonged to.
		return err
	}

	s.status = Status{Authenticated: true}
	return nil
}

// Logout erases both persisted tokens and marks the session unauthenticated.
// No network call is involved.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = Status{Authenticated: false}
	return s.creds.clear()
}

// Status returns the current derived state.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Token returns the persisted access token, or "" when logged out.
// It implements the API client's TokenSource.
func (s *Store) Token() string {
	return s.creds.get(accessTokenFile)
}

// expired decodes the token without verifying its signature — the client
// never holds the backend's signing secret — and checks the exp claim
// against the clock. A token without an exp claim never expires.
func (s *Store) expired(token string) (bool, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false, fmt.Errorf("session: parse token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return false, fmt.Errorf("session: read exp claim: %w", err)
	}
	if exp == nil {
		return false, nil
	}

	return !exp.After(s.now()), nil
}
