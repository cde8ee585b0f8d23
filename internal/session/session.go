// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks the identity and activity of one search session.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Manager holds the current session identity. Safe for concurrent use.
type Manager struct {
	mu           sync.Mutex
	id           string
	startTime    time.Time
	lastActivity time.Time
}

// NewManager starts a new session with a fresh UUID.
func NewManager() *Manager {
	now := time.Now()
	return &Manager{
		id:           uuid.NewString(),
		startTime:    now,
		lastActivity: now,
	}
}

// ID returns the current session identifier.
func (m *Manager) ID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id
}

// StartTime returns when the current session began.
func (m *Manager) StartTime() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startTime
}

// Touch records activity, advancing the idle clock.
func (m *Manager) Touch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastActivity = time.Now()
}

// IdleTime returns how long the session has been inactive.
func (m *Manager) IdleTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return time.Since(m.lastActivity)
}

// Reset abandons the current session and starts a new one. The agent
// treats the new ID as a blank conversational context.
func (m *Manager) Reset() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	m.id = uuid.NewString()
	m.startTime = now
	m.lastActivity = now
	return m.id
}
