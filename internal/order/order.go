// Package order implements the draft order aggregate and its renderers.
//
// An order holds at most one line per product code. Each line freezes the
// markup it was added with, so later configuration changes never reprice an
// order silently. The total is recomputed synchronously after every
// mutation.
package order

import (
	"math"

	"github.com/google/uuid"

	"github.com/mcweed-code/casa-fabio-parts-pro/internal/catalog"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/common"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/pricing"
)

// Line is one order position. MarkupPercent is the percentage frozen at the
// time the line was added or last updated.
type Line struct {
	Product       catalog.Product `json:"product" bson:"product"`
	Quantity      int             `json:"quantity" bson:"quantity"`
	MarkupPercent float64         `json:"markupPercent" bson:"markupPercent"`
	UnitPrice     float64         `json:"unitPrice" bson:"unitPrice"`
	Subtotal      float64         `json:"subtotal" bson:"subtotal"`
}

// Order is the draft order aggregate. Lines keep insertion order; the index
// maps product code to position in Lines.
type Order struct {
	ID    string
	Lines []Line
	Total float64

	index map[string]int
}

// New creates an empty order with a fresh id.
func New() *Order {
	return &Order{
		ID:    uuid.NewString(),
		index: make(map[string]int),
	}
}

// AddOrUpdateLine adds a line for the product or replaces the existing line
// with the same code. Quantity must be at least 1 and markupPercent must be
// a non-negative number; otherwise ErrInvalidLineInput is returned and the
// order is left unchanged.
func (o *Order) AddOrUpdateLine(product catalog.Product, quantity int, markupPercent float64) error {
	if quantity < 1 {
		return common.ErrInvalidLineInput
	}
	if markupPercent < 0 || math.IsNaN(markupPercent) || math.IsInf(markupPercent, 0) {
		return common.ErrInvalidLineInput
	}

	unitPrice := pricing.FinalPrice(product.BaseCost, pricing.PercentToFactor(markupPercent))
	line := Line{
		Product:       product,
		Quantity:      quantity,
		MarkupPercent: markupPercent,
		UnitPrice:     unitPrice,
		Subtotal:      pricing.LineSubtotal(unitPrice, quantity),
	}

	if pos, ok := o.index[product.Code]; ok {
		o.Lines[pos] = line
	} else {
		o.index[product.Code] = len(o.Lines)
		o.Lines = append(o.Lines, line)
	}

	o.recompute()
	return nil
}

// RemoveLine removes the line for code. Removing an absent code is a no-op.
func (o *Order) RemoveLine(code string) {
	pos, ok := o.index[code]
	if !ok {
		return
	}

	o.Lines = append(o.Lines[:pos], o.Lines[pos+1:]...)
	delete(o.index, code)
	for c, p := range o.index {
		if p > pos {
			o.index[c] = p - 1
		}
	}

	o.recompute()
}

// Clear discards every line and assigns a fresh id.
func (o *Order) Clear() {
	o.ID = uuid.NewString()
	o.Lines = nil
	o.index = make(map[string]int)
	o.Total = 0
}

// Line returns the line for code.
func (o *Order) Line(code string) (Line, bool) {
	pos, ok := o.index[code]
	if !ok {
		return Line{}, false
	}
	return o.Lines[pos], true
}

// CurrentTotal returns the order total.
func (o *Order) CurrentTotal() float64 {
	return o.Total
}

func (o *Order) recompute() {
	total := 0.0
	for _, l := range o.Lines {
		total += l.Subtotal
	}
	o.Total = total
}

// Snapshot is an immutable copy of an order handed to collaborators.
type Snapshot struct {
	ID    string  `json:"id" bson:"orderId"`
	Lines []Line  `json:"lines" bson:"lines"`
	Total float64 `json:"total" bson:"total"`
}

// Snapshot returns a deep copy of the order's current state.
func (o *Order) Snapshot() Snapshot {
	lines := make([]Line, len(o.Lines))
	copy(lines, o.Lines)
	return Snapshot{
		ID:    o.ID,
		Lines: lines,
		Total: o.Total,
	}
}

// FromSnapshot builds an order from a stored snapshot, with a fresh id.
// Loading or duplicating a saved order never reuses the stored id.
func FromSnapshot(snap Snapshot) *Order {
	o := New()
	for _, l := range snap.Lines {
		line := l
		o.index[line.Product.Code] = len(o.Lines)
		o.Lines = append(o.Lines, line)
	}
	o.recompute()
	return o
}
