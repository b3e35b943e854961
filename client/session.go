package client

import (
	"sync"

	"github.com/pushkarbw/sample-e-com-sub003/models"
)

// Session is the shared auth state of one client: the current user (or
// nil) plus a loading flag that is true while startup rehydration is in
// flight. It is explicitly constructed and passed around, never a
// package-level singleton. Concurrent writers follow last-completed-write-
// wins; a logout racing a startup revalidation simply leaves whichever
// state was written last.
type Session struct {
	mu      sync.RWMutex
	store   CredentialStore
	token   string
	user    *models.User
	loading bool
}

// NewSession builds a Session persisting through the given store.
func NewSession(store CredentialStore) *Session {
	return &Session{store: store}
}

// User returns the current user, or nil when logged out.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token returns the current bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Loading reports whether startup rehydration is still in flight.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Authenticated reports whether a user is currently set.
func (s *Session) Authenticated() bool {
	return s.User() != nil
}

func (s *Session) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// set updates in-memory state and persisted storage together.
func (s *Session) set(token string, user *models.User) {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	_ = s.store.Save(&StoredCredentials{Token: token, User: user})
}

// setMemoryOnly updates in-memory state without touching storage; used
// during optimistic rehydration before the token is revalidated.
func (s *Session) setMemoryOnly(token string, user *models.User) {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
}

// clear drops the session and all persisted credentials. It is the single
// fall-back used by explicit logout, failed revalidation, and any API
// response carrying an authorization failure.
func (s *Session) clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	_ = s.store.Clear()
}
