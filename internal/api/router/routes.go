// Package router holds the shared route registration plumbing. Domain
// routers plug into SetupRoutes so the central package never imports them,
// avoiding import cycles.
package router

import (
	"github.com/gofiber/fiber/v3"
)

// RoutePrefix holds the base prefixes for the API.
type RoutePrefix struct {
	Base string // Base prefix (/api)
	V1   string // Version 1 prefix (/api/v1)
}

// NewRoutePrefix returns the default prefixes.
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// Router carries the app reference for domain registration.
type Router struct {
	app *fiber.App
}

// NewRouter creates a Router over app.
func NewRouter(app *fiber.App) *Router {
	return &Router{app: app}
}

// RegisterRouteWithMiddleware registers one route through a prefixed group
// with middleware attached via Use.
//
// Fiber v3 does not reliably invoke middleware passed inline to
// Get/Post/Put/Delete; attaching it with .Use() on a group is the form that
// works. Domain routers must register through this helper.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterFunc is one domain's route registration (exported by its router
// package).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes mounts every domain under /api/v1. The caller passes each
// domain's Register in order; registration order decides route precedence.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
