// Package session holds the single source of truth for "is someone signed
// in, and as whom". The Store keeps three facts aligned at all times: the
// in-memory session, the persisted record in local storage, and the API
// client's default bearer header. Only the Store mutates any of them.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/engajamento/engaja/internal/client/models"
	"github.com/engajamento/engaja/internal/client/storage"
	"github.com/engajamento/engaja/internal/logging"
)

// Storage keys of the persisted session record. Written, read, and removed
// together.
const (
	recordToken = "session.token"
	recordUser  = "session.user"
)

// API is the surface the Store needs from the HTTP client adapter.
type API interface {
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context) (*models.User, error)
	SetToken(token string)
	ClearToken()
	OnAuthFailure(fn func(token string))
}

// Store owns the session lifecycle: restore at startup, login/logout, and
// forced invalidation when the backend rejects the token.
//
// Bubbletea commands run on their own goroutines, so state is guarded by a
// mutex rather than relying on a single UI thread.
type Store struct {
	api     API
	records storage.Records
	log     logging.Logger

	mu    sync.RWMutex
	token string
	user  *models.User

	readyOnce sync.Once
	ready     chan struct{}
}

// New wires a Store to its API client and persistent records. It registers
// the Store as the API's auth-failure observer: the HTTP layer notifies the
// Store, never the reverse.
func New(a API, records storage.Records, log logging.Logger) *Store {
	s := &Store{
		api:     a,
		records: records,
		log:     log,
		ready:   make(chan struct{}),
	}
	a.OnAuthFailure(s.invalidate)
	return s
}

// Restore loads the persisted session, if any. It runs once at process
// start and never fails: a missing, partial, or malformed record simply
// leaves the session empty. Readiness is signaled exactly once regardless
// of outcome; the session gate blocks on Ready.
func (s *Store) Restore(ctx context.Context) {
	defer s.readyOnce.Do(func() { close(s.ready) })

	tok, err := s.records.Get(ctx, recordToken)
	if err != nil {
		s.log.Warn(ctx, "session restore: token read failed", "err", err)
		return
	}
	raw, err := s.records.Get(ctx, recordUser)
	if err != nil {
		s.log.Warn(ctx, "session restore: user read failed", "err", err)
		return
	}
	// Both fields form one logical unit: either both populate the session
	// or neither does.
	if len(tok) == 0 || len(raw) == 0 {
		return
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Warn(ctx, "session restore: stored user malformed", "err", err)
		return
	}

	s.api.SetToken(string(tok))
	s.mu.Lock()
	s.token = string(tok)
	s.user = &u
	s.mu.Unlock()

	s.log.Info(ctx, "session restored", "user_id", u.ID)
}

// Ready is closed once Restore has completed, successfully or not.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Login performs the two-phase credential exchange: token first, then the
// profile fetch, which requires the bearer header to already be installed.
// The two steps are strictly sequential. On success the persisted record
// and the in-memory session are updated together; on any failure every fact
// is rolled back to "signed out" and the underlying error is returned
// untouched for the login screen to inspect.
func (s *Store) Login(ctx context.Context, email, password string) error {
	tok, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	// Token acquired, profile pending: the header must be live before Me.
	s.api.SetToken(tok)

	u, err := s.api.Me(ctx)
	if err != nil {
		s.api.ClearToken()
		return err
	}

	raw, err := json.Marshal(u)
	if err != nil {
		s.api.ClearToken()
		return err
	}
	if err := s.records.SetAll(ctx, map[string][]byte{
		recordToken: []byte(tok),
		recordUser:  raw,
	}); err != nil {
		s.api.ClearToken()
		return err
	}

	s.mu.Lock()
	s.token = tok
	s.user = u
	s.mu.Unlock()

	s.log.Info(ctx, "login succeeded", "user_id", u.ID)
	return nil
}

// Logout clears the persisted record (best effort), the in-memory session,
// and the API header. It is idempotent and always succeeds from the
// caller's point of view: a storage failure must never trap the user in a
// broken signed-in UI.
func (s *Store) Logout(ctx context.Context) {
	if err := s.records.DeleteAll(ctx, recordToken, recordUser); err != nil {
		s.log.Warn(ctx, "logout: record delete failed", "err", err)
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	s.api.ClearToken()
}

// invalidate is the forced-logout path, called by the API client when a
// response lands in the session-invalidating status set. It is keyed by the
// token that failed: concurrent rejections of the same token clear the
// session once, and a token from a previous session cannot kill the current
// one.
func (s *Store) invalidate(failed string) {
	s.mu.Lock()
	if s.token == "" || s.token != failed {
		s.mu.Unlock()
		return
	}
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	s.api.ClearToken()

	// Best effort; context.Background because the triggering request's
	// context may already be done.
	if err := s.records.DeleteAll(context.Background(), recordToken, recordUser); err != nil {
		s.log.Warn(context.Background(), "forced logout: record delete failed", "err", err)
	}
	s.log.Info(context.Background(), "session invalidated by server")
}

// UpdateUser replaces the stored profile without touching the token, used
// after a successful profile edit. With no active session it is a silent
// no-op.
func (s *Store) UpdateUser(ctx context.Context, u *models.User) error {
	s.mu.RLock()
	active := s.token != ""
	s.mu.RUnlock()
	if !active || u == nil {
		return nil
	}

	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.records.SetAll(ctx, map[string][]byte{recordUser: raw}); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	return nil
}

// Authenticated reports whether a session is active.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the current bearer token ("" when signed out).
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the authenticated profile, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAdmin reports whether the signed-in user has the administrator profile.
// With no user loaded it is false, not an error.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.IsAdmin()
}
