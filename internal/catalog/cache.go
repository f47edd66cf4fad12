package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/askcart/askcart/internal/domain"
	"github.com/askcart/askcart/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Fetcher retrieves the full product list from the provider.
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.Product, error)
}

// Cache holds the current catalog snapshot and refreshes it on expiry.
// Refreshes are single-flight: concurrent requests that observe an expired
// snapshot share one provider fetch.
type Cache struct {
	fetcher Fetcher
	ttl     time.Duration
	logger  *zap.Logger

	group singleflight.Group

	mu      sync.RWMutex
	current *Snapshot
}

// NewCache creates a snapshot cache over fetcher with the given TTL.
func NewCache(fetcher Fetcher, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{
		fetcher: fetcher,
		ttl:     ttl,
		logger:  logger,
	}
}

// Snapshot returns the current snapshot, refreshing first when it is absent
// or older than the TTL. A failed refresh keeps serving the previous
// snapshot; domain.ErrCatalogUnavailable is returned only when no snapshot
// has ever been obtained.
func (c *Cache) Snapshot(ctx context.Context) (*Snapshot, error) {
	if snap := c.fresh(); snap != nil {
		return snap, nil
	}

	// The refresh outcome is shared between waiters, so it must not die
	// with the first caller's context. The fetcher carries its own timeout.
	v, err, _ := c.group.Do("refresh", func() (any, error) {
		return c.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

func (c *Cache) fresh() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current != nil && time.Since(c.current.FetchedAt) < c.ttl {
		return c.current
	}
	return nil
}

func (c *Cache) refresh(ctx context.Context) (*Snapshot, error) {
	// Another waiter queued on the group may have refreshed already.
	if snap := c.fresh(); snap != nil {
		return snap, nil
	}

	products, err := c.fetcher.Fetch(ctx)
	if err != nil {
		c.mu.RLock()
		stale := c.current
		c.mu.RUnlock()
		if stale != nil {
			c.logger.Warn("catalog refresh failed, serving stale snapshot",
				zap.Error(err),
				zap.Time("fetched_at", stale.FetchedAt),
			)
			metrics.CatalogRefreshes.WithLabelValues("stale").Inc()
			return stale, nil
		}
		metrics.CatalogRefreshes.WithLabelValues("failure").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	snap := newSnapshot(products)
	c.mu.Lock()
	c.current = snap
	c.mu.Unlock()

	c.logger.Info("catalog snapshot refreshed",
		zap.Int("products", len(snap.Products)),
		zap.Int("categories", len(snap.Categories())),
	)
	metrics.CatalogRefreshes.WithLabelValues("success").Inc()
	return snap, nil
}
