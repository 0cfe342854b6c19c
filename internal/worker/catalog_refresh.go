// Package worker holds the background loops that run beside the HTTP server.
package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mcweed-code/casa-fabio-parts-pro/internal/catalog"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/logger"
)

// CatalogRefreshWorker re-fetches the distributor feed on a fixed interval.
// A failed cycle keeps the last known good list; the cache marks itself
// stale until a later cycle succeeds.
type CatalogRefreshWorker struct {
	cache    *catalog.Cache
	interval time.Duration
}

// NewCatalogRefreshWorker creates the worker. Intervals under a minute fall
// back to five minutes.
func NewCatalogRefreshWorker(cache *catalog.Cache, interval time.Duration) *CatalogRefreshWorker {
	if interval < time.Minute {
		interval = 5 * time.Minute
	}
	return &CatalogRefreshWorker{
		cache:    cache,
		interval: interval,
	}
}

// Start runs the refresh loop until ctx is cancelled.
func (w *CatalogRefreshWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("🛒 [CATALOG_REFRESH] Starting catalog refresh worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🛒 [CATALOG_REFRESH] Catalog refresh worker stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx, log)
		}
	}
}

// runOnce runs one refresh cycle. Panics are contained so a bad cycle never
// kills the loop.
func (w *CatalogRefreshWorker) runOnce(ctx context.Context, log *logrus.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{
				"panic": r,
			}).Error("🛒 [CATALOG_REFRESH] Panic during refresh, next cycle continues")
		}
	}()

	if err := w.cache.Refresh(ctx); err != nil {
		log.WithError(err).Warn("🛒 [CATALOG_REFRESH] Refresh failed, serving the previous catalog")
		return
	}

	log.WithFields(map[string]interface{}{
		"products": w.cache.Len(),
	}).Info("🛒 [CATALOG_REFRESH] Catalog refreshed")
}
