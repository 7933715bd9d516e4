package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "memory.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, found, err := s.Get(ctx, "hello", "hi", 7); err != nil || found {
		t.Fatalf("empty store Get = found %v, err %v", found, err)
	}

	if err := s.Save(ctx, "hello", "hi", 7, "namaste", "libretranslate"); err != nil {
		t.Fatal(err)
	}

	got, found, err := s.Get(ctx, "hello", "hi", 7)
	if err != nil || !found {
		t.Fatalf("Get after Save = found %v, err %v", found, err)
	}
	if got != "namaste" {
		t.Errorf("cached text = %q", got)
	}
}

func TestGet_KeyDimensions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "hello", "hi", 7, "namaste", "e"); err != nil {
		t.Fatal(err)
	}

	// different language and different threshold are distinct entries
	if _, found, _ := s.Get(ctx, "hello", "bn", 7); found {
		t.Error("language not part of the key")
	}
	if _, found, _ := s.Get(ctx, "hello", "hi", 5); found {
		t.Error("threshold not part of the key")
	}
}

func TestGet_NormalizedKey(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "  hello  ", "hi", 7, "namaste", "e"); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := s.Get(ctx, "hello", "hi", 7); !found {
		t.Error("whitespace-trimmed key missed")
	}
}

func TestSave_Upsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "hello", "hi", 7, "first", "e"); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "hello", "hi", 7, "second", "e"); err != nil {
		t.Fatal(err)
	}

	got, _, err := s.Get(ctx, "hello", "hi", 7)
	if err != nil {
		t.Fatal(err)
	}
	if got != "second" {
		t.Errorf("upsert kept %q", got)
	}
	n, err := s.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Count = %d after upsert", n)
	}
}

func TestPurge(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, text := range []string{"one", "two", "three"} {
		if err := s.Save(ctx, text, "hi", 7, "out", "e"); err != nil {
			t.Fatal(err)
		}
	}

	// a generous age keeps the fresh entries
	deleted, err := s.Purge(ctx, 24*time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if deleted != 0 {
		t.Errorf("fresh entries purged: %d", deleted)
	}

	// maxAge <= 0 clears everything
	deleted, err = s.Purge(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if deleted != 3 {
		t.Errorf("Purge(0) deleted %d, want 3", deleted)
	}
	if n, _ := s.Count(ctx); n != 0 {
		t.Errorf("Count after purge = %d", n)
	}
}
