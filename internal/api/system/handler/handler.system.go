// Package systemhdl - liveness endpoints.
package systemhdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/base/handler"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/global"
)

// SystemHandler serves the unauthenticated health check.
type SystemHandler struct {
	basehdl.BaseHandler
}

// NewSystemHandler creates the handler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Health reports process liveness and database reachability. It never
// returns an error status; a broken database shows up in the payload.
func (h *SystemHandler) Health(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		dbStatus := "ok"
		if global.MongoDB_Session == nil {
			dbStatus = "uninitialized"
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := global.MongoDB_Session.Ping(ctx, nil); err != nil {
				dbStatus = "unreachable"
			}
		}

		h.HandleResponse(c, fiber.Map{
			"status":   "up",
			"database": dbStatus,
			"time":     time.Now().UnixMilli(),
		}, nil)
		return nil
	})
}
