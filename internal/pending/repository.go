// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pending stores two-factor sessions awaiting code verification.
package pending

import (
	"sync"
	"time"
)

// DefaultTTL is the validity window of a pending session, measured from
// creation or the most recent refresh, whichever is later.
const DefaultTTL = 5 * time.Minute

// =============================================================================
// SESSION
// =============================================================================

// Session is a pending two-factor session. CreatedAt moves forward on
// refresh; age is always measured against the current value.
type Session struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// Age returns how old the session is relative to now.
func (s Session) Age(now time.Time) time.Duration {
	return now.Sub(s.CreatedAt)
}

// Expired reports whether the session has outlived ttl as of now.
func (s Session) Expired(now time.Time, ttl time.Duration) bool {
	return s.Age(now) > ttl
}

// =============================================================================
// REPOSITORY
// =============================================================================

// Repository abstracts pending session storage with get/put/delete
// semantics so the backend never touches the map directly.
type Repository interface {
	// Get returns the session for id, if present.
	Get(id string) (Session, bool)

	// Put stores or replaces a session.
	Put(s Session)

	// Delete removes a session. Deleting an absent id is a no-op.
	Delete(id string)

	// Refresh moves the session's CreatedAt to at, extending its validity
	// window. Returns false if the session does not exist.
	Refresh(id string, at time.Time) bool

	// Len returns the number of live sessions.
	Len() int
}

// =============================================================================
// MEMORY REPOSITORY
// =============================================================================

// MemoryRepository is a mutex-guarded in-process Repository. Contents do
// not survive a restart.
type MemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]Session
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessions: make(map[string]Session),
	}
}

// Get returns the session for id, if present.
func (r *MemoryRepository) Get(id string) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Put stores or replaces a session.
func (r *MemoryRepository) Put(s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

// Delete removes a session.
func (r *MemoryRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Refresh moves the session's CreatedAt to at.
func (r *MemoryRepository) Refresh(id string, at time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return false
	}
	s.CreatedAt = at
	r.sessions[id] = s
	return true
}

// Len returns the number of live sessions.
func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
