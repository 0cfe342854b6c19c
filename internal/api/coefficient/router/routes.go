// Package router registers the coefficient routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	coeffhdl "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/coefficient/handler"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/api/middleware"
	apirouter "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/router"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/global"
)

// Register registers the coefficient routes on v1.
func Register() apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		handler, err := coeffhdl.NewCoefficientHandler()
		if err != nil {
			return fmt.Errorf("create coefficient handler: %w", err)
		}

		authMiddleware := middleware.Authenticate(global.ServerConfig.JwtSecret)
		middlewares := []fiber.Handler{authMiddleware}

		// GET /coefficients — the caller's markup configuration
		apirouter.RegisterRouteWithMiddleware(v1, "/coefficients", "GET", "/", middlewares, handler.Get)

		// PUT /coefficients — replace the configuration
		apirouter.RegisterRouteWithMiddleware(v1, "/coefficients", "PUT", "/", middlewares, handler.Save)

		return nil
	}
}
