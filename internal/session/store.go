package session

import (
	"context"
	"log"
	"sync"

	"pickfoo-owner/internal/domain"
	"pickfoo-owner/internal/localstore"
)

// AuthAPI is the slice of the backend client the session store needs.
type AuthAPI interface {
	Me(ctx context.Context) (*domain.User, error)
	Logout(ctx context.Context) error
}

// snapshotVersion guards the persisted auth snapshot. Bump it whenever the
// snapshot shape changes; readers treat a mismatch as "signed out".
const snapshotVersion = 1

type snapshot struct {
	Version         int          `json:"version"`
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// Store is the single source of truth for who is signed in. It is owned by
// the application root and passed by reference to every consumer; consumers
// read through the accessors and never mutate it directly.
type Store struct {
	api   AuthAPI
	local *localstore.Store

	mu            sync.Mutex
	user          *domain.User
	authenticated bool
	initialized   bool
	initOnce      sync.Once
}

// NewStore restores the persisted snapshot, if any, so the interface can
// paint an optimistic state before Initialize resolves. The initialized flag
// is never persisted: it always starts false on a fresh process.
func NewStore(api AuthAPI, local *localstore.Store) *Store {
	s := &Store{api: api, local: local}
	s.restore()
	return s
}

func (s *Store) restore() {
	if s.local == nil {
		return
	}
	var snap snapshot
	ok, err := s.local.GetJSON(localstore.KeyAuthSnapshot, &snap)
	if err != nil {
		log.Printf("[session] discarding unreadable auth snapshot: %v", err)
		return
	}
	if !ok || snap.Version != snapshotVersion {
		return
	}
	// The snapshot is untrusted input: the authenticated flag must agree
	// with the identity or the whole thing is ignored.
	if snap.IsAuthenticated != (snap.User != nil) {
		return
	}
	s.user = snap.User
	s.authenticated = snap.IsAuthenticated
}

func (s *Store) persist() {
	if s.local == nil {
		return
	}
	snap := snapshot{
		Version:         snapshotVersion,
		User:            s.user,
		IsAuthenticated: s.authenticated,
	}
	if err := s.local.SetJSON(localstore.KeyAuthSnapshot, snap); err != nil {
		log.Printf("[session] failed to persist auth snapshot: %v", err)
	}
}

// Initialize resolves the current identity exactly once per process
// lifetime. Whatever the outcome, the initialized flag is set as the final
// step; downstream guards block until it is true.
func (s *Store) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		user, err := s.api.Me(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil || user == nil {
			s.user = nil
			s.authenticated = false
		} else {
			s.user = user
			s.authenticated = true
		}
		s.persist()
		s.initialized = true
	})
}

// SetAuth assigns the identity directly after a login/register/verify flow.
// It never contacts the network.
func (s *Store) SetAuth(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.authenticated = user != nil
	s.persist()
}

// Logout asks the server to invalidate the session, then clears local state
// whether or not that call succeeded. A dead network must not leave the user
// looking signed in.
func (s *Store) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		log.Printf("[session] logout request failed (clearing local state anyway): %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.authenticated = false
	s.persist()
}

// Current returns the signed-in identity, or nil.
func (s *Store) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *Store) IsInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}
