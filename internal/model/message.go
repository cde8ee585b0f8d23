// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/jeranaias/carscout-tui/internal/interpret"
)

// =============================================================================
// KIND TYPE
// =============================================================================

// Kind tags what a conversation message is.
type Kind string

const (
	KindUser      Kind = "user"
	KindAssistant Kind = "assistant"
	KindError     Kind = "error"
	KindLoading   Kind = "loading"
)

// DisplayName returns a human-readable name for the message kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindUser:
		return "You"
	case KindAssistant:
		return "CarScout"
	case KindError:
		return "Error"
	case KindLoading:
		return "Searching"
	default:
		return string(k)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a conversation.
//
// Assistant messages wrap the fields of a normalized agent response: the
// display text plus the optional listing details and source list recovered
// from it. The other kinds carry text only.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Timestamp time.Time `json:"timestamp"`

	// Content is the display text (user input, assistant reply markdown,
	// or a user-facing error message).
	Content string `json:"content"`

	// Interpretation results (assistant messages only)
	Details *interpret.ListingDetails `json:"details,omitempty"`
	Sources []interpret.Source        `json:"sources,omitempty"`
}

// NewMessage creates a new message with a generated ID.
func NewMessage(kind Kind, content string) *Message {
	return &Message{
		ID:        generateID(),
		Kind:      kind,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) *Message {
	return NewMessage(KindUser, content)
}

// NewLoadingMessage creates the placeholder shown while a search runs.
func NewLoadingMessage() *Message {
	return NewMessage(KindLoading, "Searching for cars...")
}

// NewErrorMessage creates a user-facing error message. Upstream failures
// all surface this way; no field-level parse failure ever does.
func NewErrorMessage(content string) *Message {
	return NewMessage(KindError, content)
}

// NewAssistantMessage creates an assistant message from a normalized
// agent response.
func NewAssistantMessage(resp interpret.NormalizedResponse) *Message {
	m := NewMessage(KindAssistant, resp.Text)
	m.Details = resp.Details
	m.Sources = resp.Sources
	return m
}

// Response reconstructs the normalized response an assistant message wraps.
func (m *Message) Response() interpret.NormalizedResponse {
	return interpret.NormalizedResponse{
		Text:    m.Content,
		Details: m.Details,
		Sources: m.Sources,
	}
}

// generateID creates a random 16-character hex ID.
func generateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// Extremely unlikely; fall back to a timestamp-derived ID.
		return hex.EncodeToString([]byte(time.Now().Format("150405.000")))[:16]
	}
	return hex.EncodeToString(b)
}
