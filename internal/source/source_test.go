package source

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTree lays out a minimal decomp-shaped tree in a temp dir.
func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"levels/bitfs/script.c":                 "OBJECT(MODEL_BITFS_ELEVATOR, 0, 0, 0, 0, 0, 0),",
		"levels/bitfs/areas/1/collision.inc.c":  "COL_TRI(0, 1, 2),",
		"levels/bitfs/elevator/collision.inc.c": "COL_TRI(0, 1, 2),",
		"levels/bob/script.c":                   "",
		"levels/bob/areas/1/collision.inc.c":    "",
		"levels/bob/areas/2/collision.inc.c":    "",
		"levels/intro/geo.c":                    "", // no script: not a listed level
		"levels/bitfs/areas/1/macro.inc.c":      "",
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return root
}

func TestSet_Levels(t *testing.T) {
	set := NewSet(writeTree(t))

	levels, err := set.Levels()
	if err != nil {
		t.Fatalf("Levels failed: %v", err)
	}

	want := []string{"bitfs", "bob"}
	if len(levels) != len(want) {
		t.Fatalf("expected %v, got %v", want, levels)
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Errorf("level %d: got %s, expected %s", i, levels[i], want[i])
		}
	}
}

func TestSet_AreaCollisionPaths(t *testing.T) {
	set := NewSet(writeTree(t))

	paths, err := set.AreaCollisionPaths("bob")
	if err != nil {
		t.Fatalf("AreaCollisionPaths failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 area collision files, got %d: %v", len(paths), paths)
	}

	if _, err := set.AreaCollisionPaths("nonexistent"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestSet_LoadCaching(t *testing.T) {
	set := NewSet(writeTree(t))
	path := set.ScriptPath("bitfs")

	first, err := set.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	second, err := set.Load(path)
	if err != nil {
		t.Fatalf("cached Load failed: %v", err)
	}
	if string(first) != string(second) {
		t.Error("cached content mismatch")
	}

	hits, misses := set.CacheStats()
	if hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit / 1 miss, got %d / %d", hits, misses)
	}
}

func TestSet_LoadMissing(t *testing.T) {
	set := NewSet(writeTree(t))
	if _, err := set.Load(filepath.Join(set.Root(), "levels", "bitfs", "nope.c")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCache_Clear(t *testing.T) {
	c := NewCache()
	c.Set("k", []byte("v"))
	if _, ok := c.Get("k"); !ok {
		t.Fatal("expected cache hit")
	}

	c.Clear()
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after Clear")
	}
	hits, misses := c.Stats()
	if hits != 0 || misses != 1 {
		t.Errorf("expected stats reset, got %d / %d", hits, misses)
	}
}
