// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"time"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds an ordered list of messages for one chat session.
//
// The conversation is presentation state: the interpretation core never
// stores history, and a reset discards every message along with any
// listing details they carried.
type Conversation struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Messages  []*Message `json:"messages"`
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	now := time.Now()
	return &Conversation{
		ID:        generateID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Add appends a message and returns it for convenience.
func (c *Conversation) Add(m *Message) *Message {
	c.Messages = append(c.Messages, m)
	c.UpdatedAt = time.Now()
	return m
}

// Replace swaps the message with the given ID for a new one, preserving
// position. Used to turn a loading placeholder into the real reply or an
// error. Returns false if no message has that ID.
func (c *Conversation) Replace(id string, m *Message) bool {
	for i, existing := range c.Messages {
		if existing.ID == id {
			c.Messages[i] = m
			c.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// Clear removes all messages.
func (c *Conversation) Clear() {
	c.Messages = nil
	c.UpdatedAt = time.Now()
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.Messages)
}

// LastAssistant returns the most recent assistant message, or nil.
func (c *Conversation) LastAssistant() *Message {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Kind == KindAssistant {
			return c.Messages[i]
		}
	}
	return nil
}

// FirstUserContent returns the first user message's text, used for
// conversation previews when listing saved conversations.
func (c *Conversation) FirstUserContent() string {
	for _, m := range c.Messages {
		if m.Kind == KindUser {
			return m.Content
		}
	}
	return ""
}
