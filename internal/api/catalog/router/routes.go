// Package router registers the catalog routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/catalog/handler"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/api/middleware"
	apirouter "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/router"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/catalog"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/global"
)

// Register registers the catalog routes on v1 over the shared cache.
func Register(cache *catalog.Cache) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		handler := cataloghdl.NewCatalogHandler(cache)

		authMiddleware := middleware.Authenticate(global.ServerConfig.JwtSecret)
		middlewares := []fiber.Handler{authMiddleware}

		// GET /catalog — filtered, paginated listing
		apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/", middlewares, handler.List)

		// GET /catalog/csv — full catalog download
		apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/csv", middlewares, handler.ExportCSV)

		// GET /catalog/products/:code
		apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/products/:code", middlewares, handler.Get)

		// POST /catalog/refresh — force a feed refresh
		apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "POST", "/refresh", middlewares, handler.Refresh)

		return nil
	}
}
