package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeLineItem_WithTierDiscount(t *testing.T) {
	p := ProductInfo{
		ID:        "p1",
		Name:      "Aqua Gelas",
		Price:     10000,
		BasePrice: 10000,
		Tiers: []Tier{
			{MinQuantity: 5, Discount: 10, Unit: "buah"},
		},
	}

	item, err := ComputeLineItem(p, 5, "buah")
	require.NoError(t, err)

	require.Equal(t, 9000.0, item.UnitPrice)
	require.Equal(t, 45000.0, item.Subtotal)
	require.Equal(t, 1000.0, item.DiscountAmount)
	require.Equal(t, 10.0, item.DiscountPercent)
	require.Equal(t, "Aqua Gelas (5 buah)", item.ProductName)
	require.Equal(t, 5, item.Quantity)
	require.Equal(t, "buah", item.Unit)
	require.NotNil(t, item.DiscountDetails)
	require.Equal(t, 10.0, item.DiscountDetails.Discount1)
	require.Equal(t, 0.0, item.DiscountDetails.Discount2)
}

func TestComputeLineItem_NoDiscount(t *testing.T) {
	p := ProductInfo{ID: "p2", Name: "Teh Botol", Price: 4000}

	item, err := ComputeLineItem(p, 3, "box")
	require.NoError(t, err)

	require.Equal(t, 4000.0, item.UnitPrice)
	require.Equal(t, 12000.0, item.Subtotal)
	require.Equal(t, 0.0, item.DiscountAmount)
	require.Equal(t, 0.0, item.DiscountPercent)
	require.Nil(t, item.DiscountDetails)
}

func TestComputeLineItem_CompoundDiscountDetails(t *testing.T) {
	p := ProductInfo{
		ID:        "p3",
		Name:      "Indomie Goreng",
		Price:     3000,
		BasePrice: 2800,
		Tiers: []Tier{
			{MinQuantity: 10, Discount: 10, Discount2: 5, Unit: "karton"},
		},
	}

	item, err := ComputeLineItem(p, 10, "karton")
	require.NoError(t, err)

	// 2800 * 0.9 * 0.95 = 2394
	require.InDelta(t, 2394.0, item.UnitPrice, 1e-9)
	require.InDelta(t, 23940.0, item.Subtotal, 1e-9)
	require.Equal(t, 10.0, item.DiscountDetails.Discount1)
	require.Equal(t, 5.0, item.DiscountDetails.Discount2)
	// (2800-2394)/2800*100 = 14.5
	require.Equal(t, 14.5, item.DiscountPercent)
}

func TestComputeLineItem_DiscountPercentRoundedTwoPlaces(t *testing.T) {
	p := ProductInfo{
		ID:        "p4",
		Name:      "Kopi Sachet",
		Price:     1500,
		BasePrice: 1500,
		Tiers: []Tier{
			{MinQuantity: 3, Discount: 33.333, Unit: "buah"},
		},
	}

	item, err := ComputeLineItem(p, 3, "buah")
	require.NoError(t, err)
	require.Equal(t, 33.33, item.DiscountPercent)
}

func TestComputeLineItem_SubtotalExactlyUnitPriceTimesQty(t *testing.T) {
	p := ProductInfo{
		ID:        "p5",
		Name:      "Minyak Goreng",
		Price:     17000,
		BasePrice: 16500,
		Tiers: []Tier{
			{MinQuantity: 7, Discount: 7.5, Unit: "box"},
		},
	}

	item, err := ComputeLineItem(p, 7, "box")
	require.NoError(t, err)
	require.Equal(t, item.UnitPrice*7, item.Subtotal)
}

func TestComputeLineItem_RejectsNonPositiveQuantity(t *testing.T) {
	p := ProductInfo{ID: "p6", Name: "Gula", Price: 15000}

	_, err := ComputeLineItem(p, 0, "buah")
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = ComputeLineItem(p, -2, "buah")
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestItemLabel_RoundTrip(t *testing.T) {
	label := EncodeItemLabel("Widget", 12, "box")
	require.Equal(t, "Widget (12 box)", label)

	name, qty, unit, ok := ParseItemLabel(label)
	require.True(t, ok)
	require.Equal(t, "Widget", name)
	require.Equal(t, 12, qty)
	require.Equal(t, "box", unit)
}

func TestItemLabel_ParseKeepsInnerParens(t *testing.T) {
	label := EncodeItemLabel("Aqua (galon)", 5, "buah")

	name, qty, unit, ok := ParseItemLabel(label)
	require.True(t, ok)
	require.Equal(t, "Aqua (galon)", name)
	require.Equal(t, 5, qty)
	require.Equal(t, "buah", unit)
}

func TestItemLabel_ParsePlainName(t *testing.T) {
	name, qty, unit, ok := ParseItemLabel("Sirup Marjan")
	require.False(t, ok)
	require.Equal(t, "Sirup Marjan", name)
	require.Zero(t, qty)
	require.Empty(t, unit)
}
