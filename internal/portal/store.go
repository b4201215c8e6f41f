// Package portal tracks which dashboard each session is looking at. A Store
// is a small typed state holder with subscribe/notify semantics; the Registry
// hands out one Store per session.
package portal

import (
	"context"
	"sync"
)

const subscriberBuffer = 4

// Store holds the current role of one session. It starts at RoleUser and is
// safe for concurrent use. Subscribers whose buffer is full miss updates
// rather than stall the writer.
type Store struct {
	mu     sync.Mutex
	role   Role
	subs   map[chan Role]struct{}
	closed bool
}

func NewStore() *Store {
	return &Store{
		role: RoleUser,
		subs: make(map[chan Role]struct{}),
	}
}

func (s *Store) Role() Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// Set switches to role and notifies subscribers when it changed.
func (s *Store) Set(role Role) Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.role != role {
		s.role = role
		s.notify()
	}
	return s.role
}

// Toggle swaps the role and returns the new one.
func (s *Store) Toggle() Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = s.role.Other()
	s.notify()
	return s.role
}

// Subscribe returns a channel receiving every role change until ctx is done
// or the store is closed, after which the channel is closed.
func (s *Store) Subscribe(ctx context.Context) <-chan Role {
	ch := make(chan Role, subscriberBuffer)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(ch)
		return ch
	}
	s.subs[ch] = struct{}{}

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			s.unsubscribe(ch)
		}()
	}
	return ch
}

// Close ends every subscription.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for ch := range s.subs {
		close(ch)
	}
	clear(s.subs)
}

func (s *Store) unsubscribe(ch chan Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[ch]; !ok {
		return
	}
	delete(s.subs, ch)
	close(ch)
}

// notify must be called with mu held.
func (s *Store) notify() {
	for ch := range s.subs {
		select {
		case ch <- s.role:
		default:
		}
	}
}
