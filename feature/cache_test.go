package feature

import (
	"testing"

	"github.com/rushteam/rasakit/core"
)

func TestSpaceCache_ResolveCachesByVersion(t *testing.T) {
	cache := NewSpaceCache(4)
	catalog := testCatalog()

	first, err := cache.Resolve(catalog)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	second, err := cache.Resolve(catalog)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if first != second {
		t.Error("same version should return the cached space")
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}

func TestSpaceCache_NewVersionRebuilds(t *testing.T) {
	cache := NewSpaceCache(4)
	catalog := testCatalog()

	first, err := cache.Resolve(catalog)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	// same content, new identity: the stale space must not be served
	next := core.NewCatalog("v2", catalog.Items)
	second, err := cache.Resolve(next)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if first == second {
		t.Error("new version should rebuild the space")
	}
	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cache.Len())
	}
}

func TestSpaceCache_UnversionedNotCached(t *testing.T) {
	cache := NewSpaceCache(4)
	catalog := core.NewCatalog("", testCatalog().Items)

	if _, err := cache.Resolve(catalog); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cache.Len() != 0 {
		t.Errorf("Len() = %d, want 0 for unversioned catalog", cache.Len())
	}
}

func TestSpaceCache_Invalidate(t *testing.T) {
	cache := NewSpaceCache(4)
	catalog := testCatalog()

	first, err := cache.Resolve(catalog)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	cache.Invalidate(catalog.Version)
	second, err := cache.Resolve(catalog)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if first == second {
		t.Error("invalidated version should rebuild the space")
	}
}

func TestSpaceCache_EvictsLRU(t *testing.T) {
	cache := NewSpaceCache(2)
	items := testCatalog().Items

	for _, v := range []string{"v1", "v2", "v3"} {
		if _, err := cache.Resolve(core.NewCatalog(v, items)); err != nil {
			t.Fatalf("Resolve(%s) error = %v", v, err)
		}
	}
	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want 2 after eviction", cache.Len())
	}
}
