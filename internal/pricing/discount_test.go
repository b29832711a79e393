package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_NoTiers(t *testing.T) {
	q := Resolve(nil, 12500, 12000, 10, "box")

	require.Equal(t, 12500.0, q.UnitPrice)
	require.False(t, q.HasDiscount)
	require.Empty(t, q.Discounts)
	require.Nil(t, q.Tier)
}

func TestResolve_ThresholdMatch(t *testing.T) {
	tiers := []Tier{
		{MinQuantity: 10, Discount: 5, Unit: "box"},
	}

	q := Resolve(tiers, 10000, 10000, 10, "box")

	require.True(t, q.HasDiscount)
	require.Equal(t, 10000*0.95, q.UnitPrice)
	require.Equal(t, []float64{5}, q.Discounts)
}

func TestResolve_HighestQualifyingThresholdWins(t *testing.T) {
	// A lower threshold with a larger percentage must never beat a
	// higher threshold that also qualifies.
	tiers := []Tier{
		{MinQuantity: 2, Discount: 50, Unit: "box"},
		{MinQuantity: 10, Discount: 5, Unit: "box"},
		{MinQuantity: 20, Discount: 10, Unit: "box"},
	}

	q := Resolve(tiers, 1000, 1000, 25, "box")

	require.Equal(t, []float64{10}, q.Discounts)
	require.Equal(t, 900.0, q.UnitPrice)
	require.Equal(t, 20, q.Tier.MinQuantity)
}

func TestResolve_ThresholdNotReached(t *testing.T) {
	tiers := []Tier{
		{MinQuantity: 10, Discount: 5, Unit: "box"},
	}

	q := Resolve(tiers, 12500, 12000, 9, "box")

	require.False(t, q.HasDiscount)
	require.Equal(t, 12500.0, q.UnitPrice) // list price, not base price
}

func TestResolve_SequentialDiscountsCompound(t *testing.T) {
	tiers := []Tier{
		{MinQuantity: 10, Discount: 10, Discount2: 5, Unit: "box"},
	}

	q := Resolve(tiers, 1000, 1000, 10, "box")

	// 1000 * 0.9 * 0.95, not 1000 * 0.85
	require.Equal(t, 855.0, q.UnitPrice)
	require.Equal(t, []float64{10, 5}, q.Discounts)
}

func TestResolve_ExactTierBeatsThreshold(t *testing.T) {
	tiers := []Tier{
		{MinQuantity: 5, Discount: 5, Unit: "box"},
		{MinQuantity: 12, Discount: 20, Unit: "box", IsExact: true},
	}

	q := Resolve(tiers, 1000, 1000, 12, "box")

	require.Equal(t, []float64{20}, q.Discounts)
	require.True(t, q.Tier.IsExact)

	// One unit off the exact quantity falls back to the threshold pass.
	q = Resolve(tiers, 1000, 1000, 13, "box")
	require.Equal(t, []float64{5}, q.Discounts)
}

func TestResolve_UnitMismatchSkipsTier(t *testing.T) {
	tiers := []Tier{
		{MinQuantity: 10, Discount: 5, Unit: "box"},
	}

	q := Resolve(tiers, 10000, 10000, 10, "buah")

	require.False(t, q.HasDiscount)
	require.Equal(t, 10000.0, q.UnitPrice)
}

func TestResolve_EmptyUnitMatchesAnyTier(t *testing.T) {
	tiers := []Tier{
		{MinQuantity: 10, Discount: 5, Unit: "box"},
	}

	q := Resolve(tiers, 10000, 10000, 10, "")

	require.True(t, q.HasDiscount)
}

func TestResolve_BasePriceFallsBackToListPrice(t *testing.T) {
	tiers := []Tier{
		{MinQuantity: 5, Discount: 10, Unit: "buah"},
	}

	q := Resolve(tiers, 2000, 0, 5, "buah")

	require.Equal(t, 1800.0, q.UnitPrice)
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	tiers := []Tier{
		{MinQuantity: 20, Discount: 10, Unit: "box"},
		{MinQuantity: 10, Discount: 5, Unit: "box"},
		{MinQuantity: 30, Discount: 15, Unit: "box"},
	}

	Resolve(tiers, 1000, 1000, 25, "box")

	require.Equal(t, 20, tiers[0].MinQuantity)
	require.Equal(t, 10, tiers[1].MinQuantity)
	require.Equal(t, 30, tiers[2].MinQuantity)
}
