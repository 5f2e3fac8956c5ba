package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/Global19-atlassian-net/kapsel/internal/core/domain"
	"github.com/Global19-atlassian-net/kapsel/internal/core/ports"
	"github.com/cespare/xxhash/v2"
)

// CachedLoader wraps a ProjectLoader with a content-fingerprint cache: a
// repeated Load of a project whose file bytes have not changed returns the
// previously built project without reparsing.
type CachedLoader struct {
	inner ports.ProjectLoader

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	fingerprint uint64
	project     *domain.Project
}

// NewCachedLoader creates a CachedLoader around the given loader.
func NewCachedLoader(inner ports.ProjectLoader) *CachedLoader {
	return &CachedLoader{
		inner:   inner,
		entries: make(map[string]cacheEntry),
	}
}

// Load returns the cached project for dir when the project file's xxhash
// fingerprint is unchanged, otherwise delegates to the wrapped loader.
func (c *CachedLoader) Load(dir string) (*domain.Project, error) {
	data, err := os.ReadFile(filepath.Join(dir, ProjectFilename)) //nolint:gosec // Path is provided by user
	if err != nil {
		// Let the wrapped loader produce its usual error.
		return c.inner.Load(dir)
	}
	fingerprint := xxhash.Sum64(data)

	c.mu.RLock()
	entry, ok := c.entries[dir]
	c.mu.RUnlock()
	if ok && entry.fingerprint == fingerprint {
		return entry.project, nil
	}

	project, err := c.inner.Load(dir)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[dir] = cacheEntry{fingerprint: fingerprint, project: project}
	c.mu.Unlock()

	return project, nil
}
