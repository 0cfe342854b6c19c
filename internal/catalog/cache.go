package catalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mcweed-code/casa-fabio-parts-pro/internal/logger"
)

// Cache is the in-memory catalog read model. The product list is replaced
// wholesale on refresh; readers always observe a complete list, old or new.
// A failed refresh keeps the last known good list.
type Cache struct {
	mu          sync.RWMutex
	products    []Product
	byCode      map[string]Product
	lastRefresh time.Time
	stale       bool

	fetcher *Fetcher
}

// NewCache creates an empty cache backed by fetcher. A nil fetcher is
// allowed for development mode where the cache is seeded directly.
func NewCache(fetcher *Fetcher) *Cache {
	return &Cache{
		byCode:  make(map[string]Product),
		fetcher: fetcher,
	}
}

// Seed replaces the catalog with the given products without touching the
// feed. Used in development mode and by load fixtures.
func (c *Cache) Seed(products []Product) {
	c.swap(products)
}

// Refresh fetches the catalog from the feed and swaps it in. When every
// fetch attempt fails the previous list is kept, the cache is marked stale
// and the fetch error is returned.
func (c *Cache) Refresh(ctx context.Context) error {
	if c.fetcher == nil {
		return nil
	}

	products, err := c.fetcher.FetchWithRetry(ctx)
	if err != nil {
		c.mu.Lock()
		c.stale = true
		c.mu.Unlock()

		logger.GetErrorLogger().WithFields(logrus.Fields{
			"error":    err.Error(),
			"products": len(c.Products()),
		}).Warn("Catalog refresh failed, keeping previous list")
		return err
	}

	c.swap(products)
	logger.GetAppLogger().WithFields(logrus.Fields{
		"products": len(products),
	}).Info("Catalog refreshed")
	return nil
}

func (c *Cache) swap(products []Product) {
	byCode := make(map[string]Product, len(products))
	for _, p := range products {
		byCode[p.Code] = p
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
	c.byCode = byCode
	c.lastRefresh = time.Now()
	c.stale = false
}

// Products returns a copy of the current product list.
func (c *Cache) Products() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// GetByCode returns the product with the given code.
func (c *Cache) GetByCode(code string) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.byCode[code]
	return p, ok
}

// Filter returns the products matching every non-empty criterion.
func (c *Cache) Filter(f Filter) []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(f.Search))

	var out []Product
	for _, p := range c.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Subcategory != "" && p.Subcategory != f.Subcategory {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Code), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, p)
	}
	if out == nil {
		out = []Product{}
	}
	return out
}

// Len returns the number of cached products.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// Stale reports whether the most recent refresh failed.
func (c *Cache) Stale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stale
}

// LastRefresh returns when the list was last replaced.
func (c *Cache) LastRefresh() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastRefresh
}
