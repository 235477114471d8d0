// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session tracks which users currently have an unlocked vault.
//
// A user is Unlocked from a successful login until logout, an explicit lock,
// a backend-unreachable event or idle expiry. Every decrypting code path asks
// the [Gate] first; while a user is Locked nothing of theirs is decrypted.
package session

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
)

type state struct {
	unlockedAt time.Time
	lastSeen   time.Time
	tasks      map[uint64]*time.Timer
}

// Gate holds per-user unlock state. It is safe for concurrent use.
type Gate struct {
	mu          sync.RWMutex
	states      map[string]*state
	idleTimeout time.Duration
	now         func() time.Time
	nextTaskID  uint64
	closed      bool

	logger *logger.Logger
}

// NewGate returns a Gate that treats a user as Locked after idleTimeout
// without [Gate.Touch]. A non-positive idleTimeout disables idle expiry.
func NewGate(idleTimeout time.Duration, log *logger.Logger) *Gate {
	return &Gate{
		states:      make(map[string]*state),
		idleTimeout: idleTimeout,
		now:         time.Now,
		logger:      log,
	}
}

// Unlock marks userID as Unlocked, replacing any previous state.
func (g *Gate) Unlock(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}
	if old, ok := g.states[userID]; ok {
		old.stop()
	}
	now := g.now()
	g.states[userID] = &state{unlockedAt: now, lastSeen: now}
	g.logger.Debug().Str("user_id", userID).Msg("vault unlocked")
}

// Lock marks userID as Locked and cancels its scheduled tasks.
func (g *Gate) Lock(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if s, ok := g.states[userID]; ok {
		s.stop()
		delete(g.states, userID)
		g.logger.Debug().Str("user_id", userID).Msg("vault locked")
	}
}

// LockAll locks every user. reason is logged.
func (g *Gate) LockAll(reason string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.states)
	for _, s := range g.states {
		s.stop()
	}
	g.states = make(map[string]*state)
	g.logger.Warn().Str("reason", reason).Int("sessions", n).Msg("all vaults locked")
}

// Touch records activity for an Unlocked user. It does not revive an
// expired state.
func (g *Gate) Touch(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if s, ok := g.states[userID]; ok && !g.expired(s) {
		s.lastSeen = g.now()
	}
}

// IsUnlocked reports whether userID is currently Unlocked.
func (g *Gate) IsUnlocked(userID string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.states[userID]
	return ok && !g.expired(s)
}

// Require returns [ErrSessionExpired] unless userID is Unlocked.
func (g *Gate) Require(userID string) error {
	if !g.IsUnlocked(userID) {
		return ErrSessionExpired
	}
	return nil
}

// Sweep removes expired states, cancelling their tasks, and returns how many
// were removed.
func (g *Gate) Sweep() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for userID, s := range g.states {
		if g.expired(s) {
			s.stop()
			delete(g.states, userID)
			removed++
		}
	}
	return removed
}

// Schedule runs fn after delay unless userID is locked, swept or the gate
// is closed first. The returned cancel func is idempotent. Scheduling for a
// user that is not Unlocked returns a no-op cancel and never runs fn.
func (g *Gate) Schedule(userID string, delay time.Duration, fn func()) (cancel func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.states[userID]
	if !ok || g.closed || g.expired(s) {
		return func() {}
	}

	g.nextTaskID++
	id := g.nextTaskID
	if s.tasks == nil {
		s.tasks = make(map[uint64]*time.Timer)
	}
	s.tasks[id] = time.AfterFunc(delay, func() {
		g.mu.Lock()
		cur, ok := g.states[userID]
		live := ok && cur == s && s.tasks[id] != nil
		if live {
			delete(s.tasks, id)
		}
		g.mu.Unlock()

		if live {
			fn()
		}
	})

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if t, ok := s.tasks[id]; ok {
			t.Stop()
			delete(s.tasks, id)
		}
	}
}

// Close locks every user and refuses further unlocks.
func (g *Gate) Close() {
	g.LockAll("shutdown")

	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
}

// expired must be called with g.mu held.
func (g *Gate) expired(s *state) bool {
	return g.idleTimeout > 0 && g.now().Sub(s.lastSeen) > g.idleTimeout
}

func (s *state) stop() {
	for id, t := range s.tasks {
		t.Stop()
		delete(s.tasks, id)
	}
}
