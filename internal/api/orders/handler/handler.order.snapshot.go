package orderhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/base/handler"
	ordersvc "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/orders/service"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/common"
)

// SnapshotHandler serves the caller's saved orders.
type SnapshotHandler struct {
	basehdl.BaseHandler
	snapshots *ordersvc.SnapshotService
	drafts    *ordersvc.DraftService
}

// NewSnapshotHandler creates the handler with its services.
func NewSnapshotHandler(snapshots *ordersvc.SnapshotService, drafts *ordersvc.DraftService) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots, drafts: drafts}
}

// Save stores the caller's current draft as a snapshot.
func (h *SnapshotHandler) Save(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		snap := h.drafts.Current(userID)
		if len(snap.Lines) == 0 {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeBusinessOperation,
				"Cannot save an empty order",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		saved, err := h.snapshots.Save(c.Context(), userID, snap)
		h.HandleResponse(c, saved, err)
		return nil
	})
}

// List returns the caller's saved orders, newest first.
func (h *SnapshotHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		records, err := h.snapshots.ListForUser(c.Context(), userID)
		h.HandleResponse(c, records, err)
		return nil
	})
}

// Get returns one saved order by its order id.
func (h *SnapshotHandler) Get(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		record, err := h.snapshots.GetForUser(c.Context(), userID, c.Params("id"))
		h.HandleResponse(c, record, err)
		return nil
	})
}

// Load copies a saved order into the caller's draft under a fresh id.
func (h *SnapshotHandler) Load(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		record, err := h.snapshots.GetForUser(c.Context(), userID, c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, h.drafts.ReplaceDraft(userID, record.ToDomain()), nil)
		return nil
	})
}

// Duplicate stores a copy of a saved order under a fresh id.
func (h *SnapshotHandler) Duplicate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		copy, err := h.snapshots.Duplicate(c.Context(), userID, c.Params("id"))
		h.HandleResponse(c, copy, err)
		return nil
	})
}

// Delete removes a saved order.
func (h *SnapshotHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.snapshots.DeleteForUser(c.Context(), userID, c.Params("id"))
		h.HandleResponse(c, nil, err)
		return nil
	})
}
