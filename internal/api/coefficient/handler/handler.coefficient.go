// Package coeffhdl - HTTP handlers for the coefficient endpoints.
package coeffhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/base/handler"
	coeffdto "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/coefficient/dto"
	coeffsvc "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/coefficient/service"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/pricing"
)

// CoefficientHandler serves load and save of the caller's markup
// configuration.
type CoefficientHandler struct {
	basehdl.BaseHandler
	service *coeffsvc.CoefficientService
}

// NewCoefficientHandler creates the handler with its service.
func NewCoefficientHandler() (*CoefficientHandler, error) {
	service, err := coeffsvc.NewCoefficientService()
	if err != nil {
		return nil, err
	}
	return &CoefficientHandler{service: service}, nil
}

// Get returns the caller's configuration. Without a saved record it answers
// with the defaults so the storefront always has something to show.
func (h *CoefficientHandler) Get(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		cfg, err := h.service.LoadForUser(c.Context(), userID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if cfg == nil {
			h.HandleResponse(c, fiber.Map{
				"mode":           string(pricing.ModeGeneral),
				"generalPercent": pricing.DefaultMarkupPercent,
				"perKeyPercents": map[string]float64{},
				"isDefault":      true,
			}, nil)
			return nil
		}

		h.HandleResponse(c, cfg, nil)
		return nil
	})
}

// Save replaces the caller's configuration with the request body.
func (h *CoefficientHandler) Save(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input coeffdto.SaveCoefficientInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		saved, err := h.service.SaveForUser(c.Context(), userID, input.Mode, input.GeneralPercent, input.PerKeyPercents)
		h.HandleResponse(c, saved, err)
		return nil
	})
}
