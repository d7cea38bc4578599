// Package source locates and loads collision source files from an sm64
// decomp tree.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Set resolves collision source files under one decomp root.
//
// The expected layout mirrors the decomp:
//
//	levels/<name>/script.c
//	levels/<name>/areas/<n>/collision.inc.c
//	levels/<name>/<object>/collision.inc.c
type Set struct {
	root  string
	cache *Cache
}

// NewSet creates a source set rooted at a decomp tree.
func NewSet(root string) *Set {
	return &Set{
		root:  root,
		cache: NewCache(),
	}
}

// Root returns the decomp root path.
func (s *Set) Root() string {
	return s.root
}

// Levels lists the level names that have a script file.
func (s *Set) Levels() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, "levels"))
	if err != nil {
		return nil, fmt.Errorf("reading levels directory: %w", err)
	}

	var levels []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(s.ScriptPath(e.Name())); err == nil {
			levels = append(levels, e.Name())
		}
	}
	sort.Strings(levels)
	return levels, nil
}

// ScriptPath returns the path of a level's script file.
func (s *Set) ScriptPath(level string) string {
	return filepath.Join(s.root, "levels", level, "script.c")
}

// AreaCollisionPaths returns the collision files of a level's areas, in area
// order.
func (s *Set) AreaCollisionPaths(level string) ([]string, error) {
	areasDir := filepath.Join(s.root, "levels", level, "areas")
	entries, err := os.ReadDir(areasDir)
	if err != nil {
		return nil, fmt.Errorf("reading areas of level %s: %w", level, err)
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		p := filepath.Join(areasDir, e.Name(), "collision.inc.c")
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// ObjectCollisionPath returns the collision file of an object defined inside
// a level directory.
func (s *Set) ObjectCollisionPath(level, object string) string {
	return filepath.Join(s.root, "levels", level, object, "collision.inc.c")
}

// Load reads a file, serving repeated reads from the cache.
func (s *Set) Load(path string) ([]byte, error) {
	if data, ok := s.cache.Get(path); ok {
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	s.cache.Set(path, data)
	return data, nil
}

// CacheStats returns cache hit/miss counts.
func (s *Set) CacheStats() (hits, misses int) {
	return s.cache.Stats()
}

// Cache is a simple in-memory cache for loaded source files.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
