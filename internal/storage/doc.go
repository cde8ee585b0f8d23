// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides conversation persistence for carscout.
//
// Conversations are saved as indented JSON, one file per conversation,
// under ~/.carscout/conversations/. Writes are atomic so a crash mid-save
// never corrupts an existing conversation. Interpreted listing details
// and source attributions are persisted alongside each assistant message
// so a reloaded conversation renders exactly as it did live.
package storage
