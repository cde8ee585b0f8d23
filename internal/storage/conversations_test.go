// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides conversation persistence for carscout.
package storage

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/carscout-tui/internal/interpret"
	"github.com/jeranaias/carscout-tui/internal/model"
)

func testStore(t *testing.T) *ConversationStore {
	t.Helper()
	s, err := NewConversationStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewConversationStoreWithDir failed: %v", err)
	}
	return s
}

func sampleConversation() *StoredConversation {
	return &StoredConversation{
		Messages: []StoredMessage{
			{ID: "m1", Role: "user", Content: "toyota corolla under 20k", Timestamp: time.Now()},
			{
				ID: "m2", Role: "assistant", Content: "Found one.", Timestamp: time.Now(),
				Details: &interpret.ListingDetails{Make: "Toyota", Model: "Corolla", Price: "€18,500"},
				Sources: []interpret.Source{{Name: "CarZone", URL: "https://www.carzone.ie"}},
			},
		},
	}
}

// =============================================================================
// SAVE / LOAD
// =============================================================================

func TestSaveAndLoad(t *testing.T) {
	s := testStore(t)

	id, err := s.Save(sampleConversation())
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if id == "" {
		t.Fatal("Save returned empty ID")
	}

	loaded, err := s.Load(id)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Messages) != 2 {
		t.Fatalf("loaded %d messages, want 2", len(loaded.Messages))
	}
	if loaded.Summary != "toyota corolla under 20k" {
		t.Errorf("Summary = %q", loaded.Summary)
	}

	// Interpreted payload survives the round trip.
	d := loaded.Messages[1].Details
	if d == nil || d.Make != "Toyota" || d.Price != "€18,500" {
		t.Errorf("Details = %+v", d)
	}
	if len(loaded.Messages[1].Sources) != 1 || loaded.Messages[1].Sources[0].Name != "CarZone" {
		t.Errorf("Sources = %+v", loaded.Messages[1].Sources)
	}
}

func TestLoad_NotFound(t *testing.T) {
	s := testStore(t)
	if _, err := s.Load("missing"); !errors.Is(err, ErrConversationNotFound) {
		t.Errorf("Load(missing) = %v, want ErrConversationNotFound", err)
	}
}

// =============================================================================
// MODEL CONVERSION
// =============================================================================

func TestModelRoundTrip(t *testing.T) {
	conv := &model.Conversation{ID: "c1", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	conv.Add(model.NewUserMessage("bmw 3 series galway"))
	conv.Add(model.NewLoadingMessage())
	conv.Add(model.NewAssistantMessage(interpret.NormalizedResponse{
		Text:    "Here you go.",
		Details: &interpret.ListingDetails{Make: "BMW"},
	}))

	stored := FromConversation(conv)
	if len(stored.Messages) != 2 {
		t.Fatalf("stored %d messages, want 2 (loading placeholder dropped)", len(stored.Messages))
	}

	back := stored.ToConversation()
	if back.ID != "c1" || back.Len() != 2 {
		t.Errorf("round trip: ID=%q Len=%d", back.ID, back.Len())
	}
	if back.Messages[1].Kind != model.KindAssistant {
		t.Errorf("Kind = %q", back.Messages[1].Kind)
	}
	if back.Messages[1].Details == nil || back.Messages[1].Details.Make != "BMW" {
		t.Errorf("Details = %+v", back.Messages[1].Details)
	}
}

// =============================================================================
// LIST / SEARCH
// =============================================================================

func TestListOrdering(t *testing.T) {
	s := testStore(t)

	first := sampleConversation()
	if _, err := s.Save(first); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	second := &StoredConversation{
		Messages: []StoredMessage{{ID: "m1", Role: "user", Content: "audi a4 leather seats"}},
	}
	secondID, err := s.Save(second)
	if err != nil {
		t.Fatal(err)
	}

	metas, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("List returned %d, want 2", len(metas))
	}
	if metas[0].ID != secondID {
		t.Error("List not ordered most recent first")
	}
	if metas[1].MessageCount != 2 {
		t.Errorf("MessageCount = %d, want 2", metas[1].MessageCount)
	}
}

func TestSearch(t *testing.T) {
	s := testStore(t)
	if _, err := s.Save(sampleConversation()); err != nil {
		t.Fatal(err)
	}

	results, err := s.Search("corolla")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Errorf("Search(corolla) returned %d results", len(results))
	}

	results, err = s.Search("tractor")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("Search(tractor) returned %d results", len(results))
	}
}

// =============================================================================
// DELETE / LIMIT
// =============================================================================

func TestDelete(t *testing.T) {
	s := testStore(t)
	id, err := s.Save(sampleConversation())
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Delete(id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Load(id); !errors.Is(err, ErrConversationNotFound) {
		t.Error("conversation still loadable after Delete")
	}
	if err := s.Delete(id); !errors.Is(err, ErrConversationNotFound) {
		t.Errorf("second Delete = %v, want ErrConversationNotFound", err)
	}
}

func TestEnforceLimit(t *testing.T) {
	s := testStore(t)
	s.MaxConversations = 2

	for i := 0; i < 3; i++ {
		conv := &StoredConversation{
			Messages: []StoredMessage{{ID: "m1", Role: "user", Content: "query"}},
		}
		if _, err := s.Save(conv); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	metas, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(metas) != 2 {
		t.Errorf("List returned %d after limit enforcement, want 2", len(metas))
	}
}

// =============================================================================
// EXPORT
// =============================================================================

func TestExportMarkdown(t *testing.T) {
	conv := sampleConversation()
	conv.ID = "conv_test"
	conv.CreatedAt = time.Now()

	md := conv.ExportMarkdown()
	for _, want := range []string{"**You**", "**CarScout**", "| Make | Toyota |", "[CarZone](https://www.carzone.ie)"} {
		if !strings.Contains(md, want) {
			t.Errorf("export missing %q", want)
		}
	}
}
