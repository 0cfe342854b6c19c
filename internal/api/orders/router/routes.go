// Package router registers the order routes: the draft order and the saved
// order history.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	coeffsvc "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/coefficient/service"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/api/middleware"
	orderhdl "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/orders/handler"
	ordersvc "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/orders/service"
	apirouter "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/router"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/catalog"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/global"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/order"
)

// Register registers the order routes on v1. The /current routes must come
// before the /:id routes so the literal path wins.
func Register(cache *catalog.Cache) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		coefficients, err := coeffsvc.NewCoefficientService()
		if err != nil {
			return fmt.Errorf("create coefficient service: %w", err)
		}
		snapshots, err := ordersvc.NewSnapshotService()
		if err != nil {
			return fmt.Errorf("create snapshot service: %w", err)
		}
		drafts := ordersvc.NewDraftService(order.NewManager(), cache, coefficients)

		draftHandler := orderhdl.NewDraftHandler(drafts, global.ServerConfig.WhatsAppPhone)
		snapshotHandler := orderhdl.NewSnapshotHandler(snapshots, drafts)

		authMiddleware := middleware.Authenticate(global.ServerConfig.JwtSecret)
		middlewares := []fiber.Handler{authMiddleware}

		// Draft order (the caller's working order)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/current", middlewares, draftHandler.Current)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/current/lines", middlewares, draftHandler.AddLine)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "PUT", "/current/lines/:code", middlewares, draftHandler.UpdateLine)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "DELETE", "/current/lines/:code", middlewares, draftHandler.RemoveLine)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "DELETE", "/current", middlewares, draftHandler.Clear)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/current/whatsapp", middlewares, draftHandler.ExportWhatsApp)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/current/csv", middlewares, draftHandler.ExportCSV)

		// Saved orders
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/", middlewares, snapshotHandler.Save)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/", middlewares, snapshotHandler.List)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/:id", middlewares, snapshotHandler.Get)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/:id/load", middlewares, snapshotHandler.Load)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/:id/duplicate", middlewares, snapshotHandler.Duplicate)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "DELETE", "/:id", middlewares, snapshotHandler.Delete)

		return nil
	}
}
