// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks the identity and activity of one search session.
package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewManager(t *testing.T) {
	m := NewManager()

	if _, err := uuid.Parse(m.ID()); err != nil {
		t.Errorf("ID %q is not a UUID: %v", m.ID(), err)
	}
	if m.StartTime().IsZero() {
		t.Error("StartTime is zero")
	}
	if m.IdleTime() > time.Second {
		t.Errorf("fresh session idle for %v", m.IdleTime())
	}
}

func TestReset_ChangesID(t *testing.T) {
	m := NewManager()
	old := m.ID()

	newID := m.Reset()
	if newID == old {
		t.Error("Reset returned the same session ID")
	}
	if m.ID() != newID {
		t.Errorf("ID() = %q after Reset, want %q", m.ID(), newID)
	}
	if _, err := uuid.Parse(newID); err != nil {
		t.Errorf("reset ID %q is not a UUID: %v", newID, err)
	}
}

func TestTouch_AdvancesIdleClock(t *testing.T) {
	m := NewManager()
	time.Sleep(20 * time.Millisecond)

	before := m.IdleTime()
	m.Touch()
	after := m.IdleTime()

	if after >= before {
		t.Errorf("IdleTime did not shrink after Touch: before=%v after=%v", before, after)
	}
}
