package services

import (
	"sync"

	"jobboard-api/internal/models"
)

// Identity is the principal pushed to session subscribers. A nil *Identity on
// the channel means signed out.
type Identity struct {
	UserID string
	Name   string
	Email  string
	Role   models.UserRole
}

// SessionStore broadcasts identity changes to subscribers the way the auth
// provider pushes them: consumers register a callback channel and are notified
// immediately on every sign-in and sign-out. There is no polling and no retry;
// a change propagates the moment it is published.
type SessionStore struct {
	mu      sync.Mutex
	nextID  int
	subs    map[int]chan *Identity
	current *Identity
}

// NewSessionStore creates an empty (signed-out) session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{subs: make(map[int]chan *Identity)}
}

// Subscribe registers a consumer and returns its notification channel together
// with an unsubscribe func the consumer must call on disposal. The current
// identity is delivered immediately, so a late subscriber still observes the
// session state. Each channel holds only the latest value.
func (s *SessionStore) Subscribe() (<-chan *Identity, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan *Identity, 1)
	ch <- s.current
	s.subs[id] = ch

	unsubscribe := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, unsubscribe
}

// Publish records the new identity and notifies every subscriber. A stale,
// unconsumed value is replaced rather than queued.
func (s *SessionStore) Publish(identity *Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = identity
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- identity
	}
}

// Current returns the identity as of the last publish, or nil when signed out.
func (s *SessionStore) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
