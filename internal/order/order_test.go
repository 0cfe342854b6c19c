package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcweed-code/casa-fabio-parts-pro/internal/catalog"
)

func brakeProduct() catalog.Product {
	return catalog.Product{
		Code:        "FR-001",
		Description: "Pastillas de freno",
		Category:    "Frenos",
		Subcategory: "Pastillas",
		Brand:       "Ferodo",
		BaseCost:    15000,
		ListPrice:   21000,
	}
}

func filterProduct() catalog.Product {
	return catalog.Product{
		Code:        "MO-210",
		Description: "Filtro de aceite",
		Category:    "Motor",
		Subcategory: "Filtros",
		Brand:       "Mann",
		BaseCost:    4000,
		ListPrice:   6500,
	}
}

func TestAddLinePricesFromFrozenMarkup(t *testing.T) {
	o := New()

	// 15000 base cost at 25% markup, three units.
	require.NoError(t, o.AddOrUpdateLine(brakeProduct(), 3, 25))

	line, ok := o.Line("FR-001")
	require.True(t, ok)
	assert.Equal(t, 18750.0, line.UnitPrice)
	assert.Equal(t, 56250.0, line.Subtotal)
	assert.Equal(t, 56250.0, o.CurrentTotal())
}

func TestAddOrUpdateLineIsIdempotent(t *testing.T) {
	o := New()

	require.NoError(t, o.AddOrUpdateLine(brakeProduct(), 2, 25))
	require.NoError(t, o.AddOrUpdateLine(brakeProduct(), 2, 25))

	assert.Len(t, o.Lines, 1)
	first := o.Snapshot()

	require.NoError(t, o.AddOrUpdateLine(brakeProduct(), 2, 25))
	assert.Equal(t, first.Total, o.CurrentTotal())
	assert.Len(t, o.Lines, 1)
}

func TestUpdateLineReplacesInPlace(t *testing.T) {
	o := New()

	require.NoError(t, o.AddOrUpdateLine(brakeProduct(), 1, 25))
	require.NoError(t, o.AddOrUpdateLine(filterProduct(), 1, 25))
	require.NoError(t, o.AddOrUpdateLine(brakeProduct(), 5, 30))

	assert.Len(t, o.Lines, 2)
	// Position is preserved when a line is updated.
	assert.Equal(t, "FR-001", o.Lines[0].Product.Code)
	assert.Equal(t, 5, o.Lines[0].Quantity)
	assert.Equal(t, 30.0, o.Lines[0].MarkupPercent)
	assert.Equal(t, 19500.0, o.Lines[0].UnitPrice)
}

func TestTwoLineTotalAndRemoval(t *testing.T) {
	o := New()

	require.NoError(t, o.AddOrUpdateLine(brakeProduct(), 2, 25))  // 18750 × 2 = 37500
	require.NoError(t, o.AddOrUpdateLine(filterProduct(), 3, 50)) // 6000 × 3 = 18000
	assert.Equal(t, 55500.0, o.CurrentTotal())

	o.RemoveLine("FR-001")
	assert.Equal(t, 18000.0, o.CurrentTotal())
	assert.Len(t, o.Lines, 1)

	// Removing an absent code changes nothing.
	o.RemoveLine("missing")
	assert.Equal(t, 18000.0, o.CurrentTotal())
}

func TestInvalidLineInputLeavesOrderUntouched(t *testing.T) {
	o := New()
	require.NoError(t, o.AddOrUpdateLine(brakeProduct(), 2, 25))
	before := o.Snapshot()

	assert.Error(t, o.AddOrUpdateLine(filterProduct(), 0, 25))
	assert.Error(t, o.AddOrUpdateLine(filterProduct(), -1, 25))
	assert.Error(t, o.AddOrUpdateLine(filterProduct(), 1, -5))

	after := o.Snapshot()
	assert.Equal(t, before.Total, after.Total)
	assert.Equal(t, len(before.Lines), len(after.Lines))
}

func TestClearAssignsFreshID(t *testing.T) {
	o := New()
	require.NoError(t, o.AddOrUpdateLine(brakeProduct(), 1, 25))
	oldID := o.ID

	o.Clear()

	assert.NotEqual(t, oldID, o.ID)
	assert.Empty(t, o.Lines)
	assert.Zero(t, o.CurrentTotal())

	// The cleared order accepts lines again.
	require.NoError(t, o.AddOrUpdateLine(brakeProduct(), 1, 25))
	assert.Equal(t, 18750.0, o.CurrentTotal())
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	o := New()
	require.NoError(t, o.AddOrUpdateLine(brakeProduct(), 1, 25))

	snap := o.Snapshot()
	snap.Lines[0].Quantity = 99

	line, _ := o.Line("FR-001")
	assert.Equal(t, 1, line.Quantity)
}

func TestFromSnapshotRegeneratesID(t *testing.T) {
	o := New()
	require.NoError(t, o.AddOrUpdateLine(brakeProduct(), 2, 30))
	snap := o.Snapshot()

	loaded := FromSnapshot(snap)

	assert.NotEqual(t, snap.ID, loaded.ID)
	assert.Equal(t, snap.Total, loaded.CurrentTotal())

	// Frozen markups survive the round trip.
	line, ok := loaded.Line("FR-001")
	require.True(t, ok)
	assert.Equal(t, 30.0, line.MarkupPercent)
}

func TestManagerSerializesPerUser(t *testing.T) {
	m := NewManager()

	err := m.With("user-a", func(o *Order) error {
		return o.AddOrUpdateLine(brakeProduct(), 1, 25)
	})
	require.NoError(t, err)

	// Different users get independent drafts.
	snapA := m.Snapshot("user-a")
	snapB := m.Snapshot("user-b")
	assert.Len(t, snapA.Lines, 1)
	assert.Empty(t, snapB.Lines)

	m.Replace("user-a", New())
	assert.Empty(t, m.Snapshot("user-a").Lines)
}
