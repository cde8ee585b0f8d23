// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the carscout TUI.
//
// All colors use Lip Gloss AdaptiveColor so the interface reads well on
// both light and dark terminals. The Theme struct aggregates every styled
// element in one place; components take a *Theme rather than building
// their own styles so the whole interface restyles together.
package styles
