// Package session holds the in-memory identity of the current signed-in
// user. The store is explicitly constructed and passed by reference into the
// places that need it (never a hidden singleton); the web layer creates one
// per request from the persisted session record.
package session

import (
	"sync"

	"github.com/ponto-de-aula/ponto-de-aula/internal/rbac"
)

// Store is the single current-user slot. The user record is an immutable
// value replaced wholesale by Set and Clear, so readers never observe a
// torn record; last write wins. Store implements rbac.UserProvider.
type Store struct {
	mu    sync.RWMutex
	user  *rbac.AuthUser
	token string
	subs  map[int]func(*rbac.AuthUser)
	next  int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{subs: make(map[int]func(*rbac.AuthUser))}
}

// NewStoreWith creates a store pre-populated with an authenticated user,
// as restored from the persisted session record.
func NewStoreWith(user rbac.AuthUser, token string) *Store {
	s := NewStore()
	s.Set(user, token)

	return s
}

// CurrentUser returns the current user, or nil when signed out.
func (s *Store) CurrentUser() *rbac.AuthUser {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user
}

// Token returns the backend bearer token for the current session.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Authenticated reports whether a user and token are present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user != nil && s.token != ""
}

// Set replaces the current user and token. Called on successful login.
func (s *Store) Set(user rbac.AuthUser, token string) {
	s.mu.Lock()
	u := user // store a private copy, callers keep their value
	s.user = &u
	s.token = token
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(&u)
	}
}

// Clear drops the current user and token. Called on logout and when the
// network layer reports an unauthorized response.
func (s *Store) Clear() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
}

// Subscribe registers fn to run after every Set and Clear, receiving the new
// user (nil on clear). The returned function cancels the subscription.
func (s *Store) Subscribe(fn func(*rbac.AuthUser)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// snapshotSubs copies the subscriber list; callbacks run outside the lock.
func (s *Store) snapshotSubs() []func(*rbac.AuthUser) {
	out := make([]func(*rbac.AuthUser), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}

	return out
}
