package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/drafthaus/orthodraw/pkg/drawing"
)

func testSolid() (drawing.SolidDimensions, drawing.AreaSize) {
	return drawing.SolidDimensions{Width: 6, Height: 4, Depth: 5},
		drawing.AreaSize{AreaH: 16, AreaV: 16}
}

func TestNewSession(t *testing.T) {
	solid, area := testSolid()
	s := New(solid, area, time.Hour)

	if s.ID == "" {
		t.Error("ID is empty")
	}
	if s.Solid != solid || s.Area != area {
		t.Errorf("inputs not stored: %+v %+v", s.Solid, s.Area)
	}
	if !s.ExpiresAt.After(s.CreatedAt) {
		t.Error("ExpiresAt not after CreatedAt")
	}
	if s.IsExpired() {
		t.Error("fresh session reports expired")
	}

	other := New(solid, area, time.Hour)
	if other.ID == s.ID {
		t.Error("two sessions share an ID")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	solid, area := testSolid()

	s := New(solid, area, time.Hour)
	if err := store.Set(ctx, s); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	got, err := store.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.ID != s.ID || got.Solid != solid {
		t.Errorf("Get() = %+v, want %+v", got, s)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	solid, area := testSolid()

	s := New(solid, area, -time.Minute)
	if err := store.Set(ctx, s); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	_, err := store.Get(ctx, s.ID)
	if !errors.Is(err, ErrExpired) {
		t.Errorf("Get(expired) error = %v, want ErrExpired", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	solid, area := testSolid()

	s := New(solid, area, time.Hour)
	if err := store.Set(ctx, s); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := store.Delete(ctx, s.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := store.Get(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(deleted) error = %v, want ErrNotFound", err)
	}

	// Deleting a missing session is a no-op.
	if err := store.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestMemoryStoreCleanup(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	solid, area := testSolid()

	live := New(solid, area, time.Hour)
	dead := New(solid, area, -time.Minute)
	for _, s := range []*Session{live, dead} {
		if err := store.Set(ctx, s); err != nil {
			t.Fatalf("Set() error: %v", err)
		}
	}

	if err := store.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup() error: %v", err)
	}

	if _, err := store.Get(ctx, live.ID); err != nil {
		t.Errorf("live session gone after cleanup: %v", err)
	}
	if _, err := store.Get(ctx, dead.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(cleaned) error = %v, want ErrNotFound", err)
	}
}
