// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package pending

import (
	"sync"
	"testing"
	"time"
)

// =============================================================================
// SESSION TESTS
// =============================================================================

func TestSession_Expired(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := Session{ID: "s1", Email: "user@example.com", CreatedAt: base}

	if s.Expired(base.Add(DefaultTTL), DefaultTTL) {
		t.Error("session exactly at TTL should not be expired")
	}
	if !s.Expired(base.Add(DefaultTTL+time.Second), DefaultTTL) {
		t.Error("session past TTL should be expired")
	}
	if s.Expired(base.Add(time.Minute), DefaultTTL) {
		t.Error("young session should not be expired")
	}
}

// =============================================================================
// MEMORY REPOSITORY TESTS
// =============================================================================

func TestMemoryRepository_CRUD(t *testing.T) {
	r := NewMemoryRepository()
	now := time.Now()

	if _, ok := r.Get("missing"); ok {
		t.Error("Get on empty repository should miss")
	}

	r.Put(Session{ID: "s1", Email: "user@example.com", CreatedAt: now})
	s, ok := r.Get("s1")
	if !ok {
		t.Fatal("Get after Put should hit")
	}
	if s.Email != "user@example.com" {
		t.Errorf("Email = %q", s.Email)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}

	r.Delete("s1")
	if _, ok := r.Get("s1"); ok {
		t.Error("Get after Delete should miss")
	}

	// Deleting an absent id is a no-op
	r.Delete("s1")
}

func TestMemoryRepository_Refresh(t *testing.T) {
	r := NewMemoryRepository()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r.Put(Session{ID: "s1", Email: "user@example.com", CreatedAt: created})

	later := created.Add(4 * time.Minute)
	if !r.Refresh("s1", later) {
		t.Fatal("Refresh on live session should succeed")
	}

	s, _ := r.Get("s1")
	if !s.CreatedAt.Equal(later) {
		t.Errorf("CreatedAt = %v, want %v", s.CreatedAt, later)
	}

	// The refreshed session gets a fresh validity window
	if s.Expired(later.Add(DefaultTTL-time.Second), DefaultTTL) {
		t.Error("refreshed session should not be expired inside the new window")
	}

	if r.Refresh("missing", later) {
		t.Error("Refresh on absent session should fail")
	}
}

func TestMemoryRepository_ConcurrentAccess(t *testing.T) {
	r := NewMemoryRepository()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)

		go func(id int) {
			defer wg.Done()
			r.Put(Session{ID: "s", Email: "user@example.com", CreatedAt: now})
		}(i)

		go func(id int) {
			defer wg.Done()
			_, _ = r.Get("s")
		}(i)

		go func(id int) {
			defer wg.Done()
			_ = r.Refresh("s", now)
		}(i)
	}
	wg.Wait()
}
