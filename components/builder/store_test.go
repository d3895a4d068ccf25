package builder

import (
	"context"
	"errors"
	"testing"
)

func TestInMemoryDocumentStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryDocumentStore()
	doc := testDocument("a")

	if err := store.Save(ctx, doc, map[string]any{"reason": "create"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := store.Load(ctx, doc.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Name != doc.Name || len(loaded.Sections) != 1 {
		t.Fatalf("loaded document mismatch: %+v", loaded)
	}

	// snapshots must not alias the stored copy
	loaded.Sections[0].Components[0].Content["text"] = "changed"
	again, _ := store.Load(ctx, doc.ID)
	if again.Sections[0].Components[0].Content["text"] != "component a" {
		t.Fatalf("store snapshot aliased by a loaded copy")
	}
}

func TestInMemoryDocumentStoreUnknownID(t *testing.T) {
	store := NewInMemoryDocumentStore()
	_, err := store.Load(context.Background(), "missing")
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}
