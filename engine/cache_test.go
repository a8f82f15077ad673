package engine

import (
	"testing"

	"chesscore/position"
)

func TestCacheLookupOrCreate(t *testing.T) {
	cache := NewCache()
	b := position.NewStartingBoardState()

	rec1, created := cache.LookupOrCreate(b)
	if !created {
		t.Fatal("expected first lookup to create a record")
	}
	rec2, created := cache.LookupOrCreate(b)
	if created {
		t.Fatal("expected second lookup to reuse the cached record")
	}
	if rec1 != rec2 {
		t.Fatal("expected the same pointer back from the cache")
	}
}

func TestCacheReset(t *testing.T) {
	cache := NewCache()
	b := position.NewStartingBoardState()
	cache.LookupOrCreate(b)

	if cache.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", cache.Len())
	}

	cache.Reset()
	if cache.Len() != 0 {
		t.Fatalf("expected empty cache after reset, got %d", cache.Len())
	}
}
