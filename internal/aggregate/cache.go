package aggregate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kimberlythegeek/accessibility-dashboard/internal/site"
)

// ManifestLoader yields the descriptor list a refresh starts from.
type ManifestLoader interface {
	Load(ctx context.Context) ([]site.Descriptor, error)
}

// Cache holds the most recent successful aggregation pass. It is owned
// explicitly by the caller (the CLI or the server); there is no module-level
// singleton. A refresh replaces the snapshot wholesale.
type Cache struct {
	manifest ManifestLoader
	pipeline *Pipeline

	mu        sync.RWMutex
	sites     []site.Site
	refreshed time.Time
	valid     bool
}

func NewCache(manifest ManifestLoader, pipeline *Pipeline) *Cache {
	return &Cache{manifest: manifest, pipeline: pipeline}
}

// Snapshot returns the cached collection without fetching. ok is false until
// the first successful Refresh or after Invalidate.
func (c *Cache) Snapshot() (sites []site.Site, refreshed time.Time, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid {
		return nil, time.Time{}, false
	}
	return c.sites, c.refreshed, true
}

// Refresh runs a full aggregation pass and replaces the snapshot. A manifest
// failure is fatal to the pass and leaves the previous snapshot in place;
// per-site failures are absorbed by the pipeline's placeholder policy.
func (c *Cache) Refresh(ctx context.Context) ([]site.Site, error) {
	descriptors, err := c.manifest.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading manifest: %w", err)
	}

	sites := c.pipeline.Aggregate(ctx, descriptors)

	c.mu.Lock()
	c.sites = sites
	c.refreshed = time.Now()
	c.valid = true
	c.mu.Unlock()
	return sites, nil
}

// Invalidate drops the snapshot; the next Snapshot reports not-ok until a
// Refresh succeeds.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.sites = nil
	c.refreshed = time.Time{}
	c.valid = false
	c.mu.Unlock()
}
