// Package ordersvc holds the draft order and saved snapshot services.
package ordersvc

import (
	"context"

	"github.com/mcweed-code/casa-fabio-parts-pro/internal/catalog"
	coeffsvc "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/coefficient/service"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/common"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/order"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/pricing"
)

// DraftService mutates per-user draft orders. Product data comes from the
// catalog cache; markups resolve from the caller's coefficient configuration
// unless explicitly provided.
type DraftService struct {
	manager      *order.Manager
	cache        *catalog.Cache
	coefficients *coeffsvc.CoefficientService
}

// NewDraftService wires the draft service.
func NewDraftService(manager *order.Manager, cache *catalog.Cache, coefficients *coeffsvc.CoefficientService) *DraftService {
	return &DraftService{
		manager:      manager,
		cache:        cache,
		coefficients: coefficients,
	}
}

// Current returns a consistent snapshot of the user's draft.
func (s *DraftService) Current(userID string) order.Snapshot {
	return s.manager.Snapshot(userID)
}

// resolveMarkup picks the markup for a product: the explicit value when
// given, otherwise the caller's configuration through the resolver.
func (s *DraftService) resolveMarkup(ctx context.Context, userID string, product catalog.Product, explicit *float64) (float64, error) {
	if explicit != nil {
		return *explicit, nil
	}

	record, err := s.coefficients.LoadForUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	cfg := record.ToPricing()
	key := cfg.ClassificationKey(product.Category, product.Subcategory)
	return pricing.ResolveEffectivePercent(cfg, key), nil
}

// AddOrUpdateLine adds the product to the user's draft or replaces its
// existing line. The resolved markup freezes into the line.
func (s *DraftService) AddOrUpdateLine(ctx context.Context, userID, code string, quantity int, markupPercent *float64) (order.Snapshot, error) {
	product, ok := s.cache.GetByCode(code)
	if !ok {
		return order.Snapshot{}, common.ErrNotFound
	}

	markup, err := s.resolveMarkup(ctx, userID, product, markupPercent)
	if err != nil {
		return order.Snapshot{}, err
	}

	var snap order.Snapshot
	err = s.manager.With(userID, func(o *order.Order) error {
		if err := o.AddOrUpdateLine(product, quantity, markup); err != nil {
			return err
		}
		snap = o.Snapshot()
		return nil
	})
	if err != nil {
		return order.Snapshot{}, err
	}
	return snap, nil
}

// RemoveLine drops the line for code from the user's draft. Absent codes are
// a no-op.
func (s *DraftService) RemoveLine(userID, code string) order.Snapshot {
	var snap order.Snapshot
	s.manager.With(userID, func(o *order.Order) error {
		o.RemoveLine(code)
		snap = o.Snapshot()
		return nil
	})
	return snap
}

// Clear empties the user's draft and assigns a fresh order id.
func (s *DraftService) Clear(userID string) order.Snapshot {
	var snap order.Snapshot
	s.manager.With(userID, func(o *order.Order) error {
		o.Clear()
		snap = o.Snapshot()
		return nil
	})
	return snap
}

// ReplaceDraft swaps the user's draft for a copy of snap with a fresh id.
func (s *DraftService) ReplaceDraft(userID string, snap order.Snapshot) order.Snapshot {
	loaded := order.FromSnapshot(snap)
	s.manager.Replace(userID, loaded)
	return loaded.Snapshot()
}
