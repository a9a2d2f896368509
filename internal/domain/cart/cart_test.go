package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixora/storefront/internal/domain/catalog"
)

func newTestProduct(id string, price int64) catalog.Product {
	return catalog.Product{
		ID:       id,
		Name:     "Product " + id,
		Category: "Cameras",
		Price:    decimal.NewFromInt(price),
		Image:    "/images/" + id + ".jpg",
	}
}

func TestAddItem_MergesQuantityByID(t *testing.T) {
	c := New()
	p := newTestProduct("cam-1", 10000)

	c.AddItem(p, 1)
	c.AddItem(p, 2)
	c.AddItem(p, 4)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
	assert.Equal(t, 7, c.ItemCount())
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	c := New()
	first := newTestProduct("cam-1", 10000)
	second := newTestProduct("lens-1", 18990)

	c.AddItem(first, 1)
	c.AddItem(second, 1)
	// Re-adding the first product must not move it.
	c.AddItem(first, 1)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "cam-1", lines[0].Product.ID)
	assert.Equal(t, "lens-1", lines[1].Product.ID)
}

func TestAddItem_SnapshotIgnoresLaterEdits(t *testing.T) {
	c := New()
	p := newTestProduct("cam-1", 10000)
	c.AddItem(p, 1)

	// A later catalog price change must not reach the existing line.
	p.Price = decimal.NewFromInt(99999)

	assert.True(t, decimal.NewFromInt(10000).Equal(c.Subtotal()))
}

func TestAddItem_NegativeMergeRemovesLine(t *testing.T) {
	c := New()
	p := newTestProduct("cam-1", 10000)

	c.AddItem(p, 2)
	c.AddItem(p, -2)

	assert.Empty(t, c.Lines())
	assert.Equal(t, 0, c.ItemCount())
}

func TestAddItem_NonPositiveQuantityOnEmptySlotIsNoop(t *testing.T) {
	c := New()
	c.AddItem(newTestProduct("cam-1", 10000), 0)
	c.AddItem(newTestProduct("cam-2", 500), -3)

	assert.Empty(t, c.Lines())
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		qty       int
		wantLines int
		wantCount int
	}{
		{name: "positive sets quantity", qty: 5, wantLines: 1, wantCount: 5},
		{name: "zero removes line", qty: 0, wantLines: 0, wantCount: 0},
		{name: "negative removes line", qty: -1, wantLines: 0, wantCount: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.AddItem(newTestProduct("cam-1", 10000), 2)

			c.UpdateQuantity("cam-1", tt.qty)

			assert.Len(t, c.Lines(), tt.wantLines)
			assert.Equal(t, tt.wantCount, c.ItemCount())
		})
	}
}

func TestUpdateQuantity_MissingIDIsNoop(t *testing.T) {
	c := New()
	c.AddItem(newTestProduct("cam-1", 10000), 2)

	c.UpdateQuantity("missing", 5)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	c := New()
	c.AddItem(newTestProduct("cam-1", 10000), 1)
	c.AddItem(newTestProduct("lens-1", 18990), 1)

	c.RemoveItem("cam-1")
	c.RemoveItem("missing")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "lens-1", lines[0].Product.ID)
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(newTestProduct("cam-1", 10000), 3)

	c.Clear()

	assert.Empty(t, c.Lines())
	assert.Equal(t, 0, c.ItemCount())
	assert.True(t, decimal.Zero.Equal(c.Subtotal()))
}

func TestSubtotal_IsIdempotentRead(t *testing.T) {
	c := New()
	c.AddItem(newTestProduct("cam-1", 10000), 2)
	c.AddItem(newTestProduct("lens-1", 18990), 1)

	want := decimal.NewFromInt(2*10000 + 18990)
	assert.True(t, want.Equal(c.Subtotal()))
	// Recomputing without mutation yields the identical value.
	assert.True(t, c.Subtotal().Equal(c.Subtotal()))
}

func TestCartScenario_CamOne(t *testing.T) {
	c := New()
	p := newTestProduct("cam-1", 10000)

	c.AddItem(p, 1)
	c.AddItem(p, 2)

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 3, c.Lines()[0].Quantity)
	assert.Equal(t, 3, c.ItemCount())
	assert.True(t, decimal.NewFromInt(30000).Equal(c.Subtotal()))

	c.UpdateQuantity("cam-1", 0)

	assert.Empty(t, c.Lines())
	assert.True(t, decimal.Zero.Equal(c.Subtotal()))
}
