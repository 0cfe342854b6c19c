// Package cataloghdl - HTTP handlers for the catalog endpoints.
package cataloghdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/base/handler"
	basemodels "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/base/models"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/catalog"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/common"
)

// CatalogHandler serves the read-only catalog views backed by the cache.
type CatalogHandler struct {
	basehdl.BaseHandler
	cache *catalog.Cache
}

// NewCatalogHandler creates the handler over the shared cache.
func NewCatalogHandler(cache *catalog.Cache) *CatalogHandler {
	return &CatalogHandler{cache: cache}
}

// List returns a filtered, paginated view of the catalog with staleness
// metadata.
func (h *CatalogHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter := catalog.Filter{
			Category:    c.Query("category"),
			Subcategory: c.Query("subcategory"),
			Brand:       c.Query("brand"),
			Search:      c.Query("search"),
		}

		page := queryInt64(c, "page", 1)
		limit := queryInt64(c, "limit", 50)
		if page < 1 {
			page = 1
		}
		if limit <= 0 {
			limit = 50
		}

		matched := h.cache.Filter(filter)
		total := int64(len(matched))

		start := (page - 1) * limit
		if start > total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}

		var totalPage int64
		if total > 0 {
			totalPage = (total + limit - 1) / limit
		}

		result := &basemodels.PaginateResult[catalog.Product]{
			Items:     matched[start:end],
			Page:      page,
			Limit:     limit,
			ItemCount: end - start,
			Total:     total,
			TotalPage: totalPage,
		}

		h.HandleResponse(c, fiber.Map{
			"catalog":     result,
			"stale":       h.cache.Stale(),
			"lastRefresh": h.cache.LastRefresh().UnixMilli(),
		}, nil)
		return nil
	})
}

// Get returns one product by code.
func (h *CatalogHandler) Get(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		product, ok := h.cache.GetByCode(c.Params("code"))
		if !ok {
			h.HandleResponse(c, nil, common.ErrNotFound)
			return nil
		}

		h.HandleResponse(c, product, nil)
		return nil
	})
}

// Refresh forces a catalog refresh. When the feed stays unreachable the
// previous list is kept and the fetch error is surfaced.
func (h *CatalogHandler) Refresh(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		if err := h.cache.Refresh(c.Context()); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{
			"products":    h.cache.Len(),
			"lastRefresh": h.cache.LastRefresh().UnixMilli(),
		}, nil)
		return nil
	})
}

// ExportCSV returns the current catalog as a CSV download.
func (h *CatalogHandler) ExportCSV(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		out, err := catalog.RenderProductsCSV(h.cache.Products())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		c.Set("Content-Type", "text/csv; charset=utf-8")
		c.Set("Content-Disposition", `attachment; filename="catalogo.csv"`)
		return c.SendString(out)
	})
}

func queryInt64(c fiber.Ctx, key string, fallback int64) int64 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
