package memory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dentalflow/clinic-system/internal/core/domain"
)

func TestStore_GetAbsent(t *testing.T) {
	s := NewStore()
	_, err := s.Get(context.Background(), "user", "nope")
	if !errors.Is(err, domain.ErrNoDocument) {
		t.Fatalf("expected ErrNoDocument, got %v", err)
	}
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	doc := json.RawMessage(`{"id":"u1","name":"alice"}`)
	if err := s.Put(ctx, "user", "u1", doc); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Get(ctx, "user", "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != string(doc) {
		t.Fatalf("expected %s, got %s", doc, got)
	}
}

func TestStore_KindsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if err := s.Put(ctx, "user", "1", json.RawMessage(`{}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := s.Get(ctx, "patient", "1"); !errors.Is(err, domain.ErrNoDocument) {
		t.Fatalf("expected kind isolation, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if err := s.Put(ctx, "user", "u1", json.RawMessage(`{}`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	existed, err := s.Delete(ctx, "user", "u1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !existed {
		t.Fatalf("expected delete to report existing document")
	}

	existed, err = s.Delete(ctx, "user", "u1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if existed {
		t.Fatalf("expected second delete to report absence")
	}
}

func TestStore_IndexOrderAndIdempotency(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	for _, id := range []string{"c", "a", "b", "a"} {
		if err := s.AddToIndex(ctx, "user", id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	ids, err := s.ListIDs(ctx, "user")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"c", "a", "b"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %v", len(want), ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], ids[i])
		}
	}
}

func TestStore_RemoveFromIndex(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	for _, id := range []string{"a", "b", "c"} {
		if err := s.AddToIndex(ctx, "user", id); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := s.RemoveFromIndex(ctx, "user", "b"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	// Removing an id that is not indexed is a no-op.
	if err := s.RemoveFromIndex(ctx, "user", "zz"); err != nil {
		t.Fatalf("remove absent: %v", err)
	}

	ids, err := s.ListIDs(ctx, "user")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "c" {
		t.Fatalf("unexpected ids after removal: %v", ids)
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if err := s.Put(ctx, "user", "u1", json.RawMessage(`{"a":1}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := s.Get(ctx, "user", "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got[0] = 'X'

	again, err := s.Get(ctx, "user", "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(again) != `{"a":1}` {
		t.Fatalf("stored document was mutated: %s", again)
	}
}
