// Package orderhdl - HTTP handlers for draft and saved orders.
package orderhdl

import (
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/base/handler"
	orderdto "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/orders/dto"
	ordersvc "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/orders/service"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/common"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/order"
)

// DraftHandler serves the caller's working order.
type DraftHandler struct {
	basehdl.BaseHandler
	drafts        *ordersvc.DraftService
	whatsAppPhone string
}

// NewDraftHandler creates the handler. whatsAppPhone is the optional default
// destination for the wa.me handoff.
func NewDraftHandler(drafts *ordersvc.DraftService, whatsAppPhone string) *DraftHandler {
	return &DraftHandler{drafts: drafts, whatsAppPhone: whatsAppPhone}
}

// Current returns the caller's draft order.
func (h *DraftHandler) Current(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, h.drafts.Current(userID), nil)
		return nil
	})
}

// AddLine adds a product line to the draft.
func (h *DraftHandler) AddLine(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input orderdto.AddLineInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		snap, err := h.drafts.AddOrUpdateLine(c.Context(), userID, input.Code, input.Quantity, input.MarkupPercent)
		h.HandleResponse(c, snap, err)
		return nil
	})
}

// UpdateLine replaces the line for the code in the path.
func (h *DraftHandler) UpdateLine(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		code := c.Params("code")
		if code == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		var input orderdto.UpdateLineInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		snap, err := h.drafts.AddOrUpdateLine(c.Context(), userID, code, input.Quantity, input.MarkupPercent)
		h.HandleResponse(c, snap, err)
		return nil
	})
}

// RemoveLine drops the line for the code in the path.
func (h *DraftHandler) RemoveLine(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, h.drafts.RemoveLine(userID, c.Params("code")), nil)
		return nil
	})
}

// Clear empties the draft.
func (h *DraftHandler) Clear(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, h.drafts.Clear(userID), nil)
		return nil
	})
}

// ExportWhatsApp returns the draft rendered as a WhatsApp message with its
// wa.me handoff URL.
func (h *DraftHandler) ExportWhatsApp(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		snap := h.drafts.Current(userID)
		now := time.Now()

		phone := c.Query("phone", h.whatsAppPhone)

		h.HandleResponse(c, fiber.Map{
			"text": order.RenderWhatsAppText(snap, now),
			"url":  order.WhatsAppURL(snap, phone, now),
		}, nil)
		return nil
	})
}

// ExportCSV returns the draft as a CSV download.
func (h *DraftHandler) ExportCSV(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		out, err := order.RenderOrderCSV(h.drafts.Current(userID))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		c.Set("Content-Type", "text/csv; charset=utf-8")
		c.Set("Content-Disposition", `attachment; filename="pedido.csv"`)
		return c.SendString(out)
	})
}
