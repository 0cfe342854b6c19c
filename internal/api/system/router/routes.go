// Package router registers the system routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/router"
	systemhdl "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/system/handler"
)

// Register registers the system routes on v1. The health check stays
// unauthenticated so load balancers can probe it.
func Register() apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		handler := systemhdl.NewSystemHandler()

		// GET /system/health
		apirouter.RegisterRouteWithMiddleware(v1, "/system", "GET", "/health", nil, handler.Health)

		return nil
	}
}
