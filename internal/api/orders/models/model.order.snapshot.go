// Package ordermodels - saved order snapshot records.
package ordermodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mcweed-code/casa-fabio-parts-pro/internal/order"
)

// SavedOrdersLimit caps how many snapshots are kept per user. Saving beyond
// the cap prunes the oldest records.
const SavedOrdersLimit = 20

// OrderSnapshot is a saved copy of a draft order. OrderID is the order's
// uuid at save time; loading or duplicating issues fresh ids.
type OrderSnapshot struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderID   string             `json:"orderId" bson:"orderId" index:"unique"`
	UserID    string             `json:"userId" bson:"userId" index:"single:1"`
	Lines     []order.Line       `json:"lines" bson:"lines"`
	Total     float64            `json:"total" bson:"total"`
	SavedAt   int64              `json:"savedAt" bson:"savedAt"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// ToDomain converts the stored record back into an order snapshot.
func (s *OrderSnapshot) ToDomain() order.Snapshot {
	lines := make([]order.Line, len(s.Lines))
	copy(lines, s.Lines)
	return order.Snapshot{
		ID:    s.OrderID,
		Lines: lines,
		Total: s.Total,
	}
}
