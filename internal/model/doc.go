// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// A conversation is an ordered list of tagged messages: user input,
// assistant replies (which wrap a normalized agent response), user-facing
// errors, and the transient loading placeholder shown while a search is
// in flight. Conversation history lives entirely in this presentation
// layer; the interpretation core is stateless.
package model
