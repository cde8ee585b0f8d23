// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history records past car searches in a local SQLite database.
package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jeranaias/carscout-tui/internal/interpret"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// =============================================================================
// RECORD / RECENT
// =============================================================================

func TestStore_RecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	resp := interpret.NormalizedResponse{
		Text: "Found a match.",
		Details: &interpret.ListingDetails{
			Make:  "Toyota",
			Model: "Corolla",
			Year:  "2019",
			Price: "€18,500",
			URL:   "https://www.carzone.ie/ad/123",
		},
		Sources: []interpret.Source{
			{Name: "CarZone", URL: "https://www.carzone.ie"},
		},
	}
	if err := s.Record(ctx, "toyota corolla under 20k", resp); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := s.Record(ctx, "vw golf dublin", interpret.NormalizedResponse{Text: "Nothing found."}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Recent returned %d entries, want 2", len(entries))
	}

	// Newest first.
	if entries[0].Query != "vw golf dublin" {
		t.Errorf("entries[0].Query = %q, want newest first", entries[0].Query)
	}
	if entries[0].Make != "" || entries[0].SourceCount != 0 {
		t.Errorf("no-details entry carried listing fields: %+v", entries[0])
	}

	got := entries[1]
	if got.Make != "Toyota" || got.Model != "Corolla" || got.Year != "2019" {
		t.Errorf("listing fields = %+v", got)
	}
	if got.Price != "€18,500" || got.URL != "https://www.carzone.ie/ad/123" {
		t.Errorf("price/url = %q / %q", got.Price, got.URL)
	}
	if got.SourceCount != 1 {
		t.Errorf("SourceCount = %d, want 1", got.SourceCount)
	}
	if got.Timestamp.IsZero() {
		t.Error("Timestamp is zero")
	}
}

func TestStore_RecentLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := s.Record(ctx, "query", interpret.NormalizedResponse{}); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := s.Recent(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("Recent(3) returned %d entries", len(entries))
	}
}

// =============================================================================
// COUNT / CLEAR
// =============================================================================

func TestStore_CountAndClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Record(ctx, "first", interpret.NormalizedResponse{}); err != nil {
		t.Fatal(err)
	}
	n, err := s.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	n, err = s.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Count after Clear = %d, want 0", n)
	}
}

// =============================================================================
// NIL STORE
// =============================================================================

func TestStore_NilIsInert(t *testing.T) {
	var s *Store
	ctx := context.Background()

	if err := s.Record(ctx, "q", interpret.NormalizedResponse{}); err != nil {
		t.Errorf("nil Record returned %v", err)
	}
	entries, err := s.Recent(ctx, 5)
	if err != nil || entries != nil {
		t.Errorf("nil Recent = %v, %v", entries, err)
	}
	n, err := s.Count(ctx)
	if err != nil || n != 0 {
		t.Errorf("nil Count = %d, %v", n, err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("nil Close returned %v", err)
	}
}
