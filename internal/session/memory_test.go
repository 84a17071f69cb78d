package session

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"rpgme/internal/avatar"
)

func TestMemoryStore_GetPut(t *testing.T) {
	store := NewMemoryStore[avatar.Attributes]()

	ctx := context.Background()
	id := "test-id"
	value := avatar.LoadFromQuery("seed=10234567&hat=pirate")

	// Test Put
	err := store.Put(ctx, id, value)
	if err != nil {
		t.Fatalf("Unexpected error on Put: %v", err)
	}

	// Test Get existing
	got, ok, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Unexpected error on Get: %v", err)
	}
	if !ok {
		t.Error("Expected value to exist")
	}
	if got != value {
		t.Errorf("Expected value %+v, got %+v", value, got)
	}

	// Test Get non-existing
	_, ok, err = store.Get(ctx, "non-existent")
	if err != nil {
		t.Fatalf("Unexpected error on Get: %v", err)
	}
	if ok {
		t.Error("Expected value to not exist")
	}
}

func TestMemoryStore_Overwrite(t *testing.T) {
	store := NewMemoryStore[int]()

	ctx := context.Background()
	id := "test-id"

	// Put initial value
	err := store.Put(ctx, id, 10)
	if err != nil {
		t.Fatalf("Unexpected error on Put: %v", err)
	}

	// Overwrite with new value
	err = store.Put(ctx, id, 20)
	if err != nil {
		t.Fatalf("Unexpected error on overwrite Put: %v", err)
	}

	got, ok, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Unexpected error on Get: %v", err)
	}
	if !ok {
		t.Error("Expected value to exist")
	}
	if got != 20 {
		t.Errorf("Expected value 20, got %d", got)
	}
	if store.Len() != 1 {
		t.Errorf("Expected 1 session, got %d", store.Len())
	}
}

func TestMemoryStore_NewID(t *testing.T) {
	store := NewMemoryStore[string]()

	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := store.NewID()
		if ids[id] {
			t.Errorf("Duplicate ID generated: %s", id)
		}
		ids[id] = true

		parsed, err := uuid.Parse(id)
		if err != nil {
			t.Errorf("Expected a UUID, got %q: %v", id, err)
			continue
		}
		if parsed.Version() != 4 {
			t.Errorf("Expected UUID version 4, got %d", parsed.Version())
		}
	}
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore[avatar.Attributes]()

	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(skin int) {
			defer wg.Done()
			a := avatar.DefaultAttributes()
			a.Skin = skin
			if err := store.Put(ctx, "key", a); err != nil {
				t.Errorf("Error in concurrent Put: %v", err)
			}
		}(i)
	}
	wg.Wait()

	got, ok, err := store.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Unexpected error on Get: %v", err)
	}
	if !ok {
		t.Fatal("Expected value to exist after concurrent writes")
	}
	if got.Skin < 0 || got.Skin > 9 {
		t.Errorf("Expected one of the written values, got skin %d", got.Skin)
	}
}
