package pricing

import "sort"

// Tier is one quantity-discount rule attached to a product.
// Discount and Discount2 are percentages applied sequentially
// (compounding), never summed. The JSON shape matches the
// discount_tiers JSONB stored on products.
type Tier struct {
	MinQuantity int     `json:"minQuantity"`
	Discount    float64 `json:"discount"`
	Discount2   float64 `json:"discount2,omitempty"`
	Unit        string  `json:"unit"` // buah | box | karton
	IsExact     bool    `json:"isExact,omitempty"`
}

// Quote is the result of resolving the tier table for one selection.
type Quote struct {
	UnitPrice   float64
	Discounts   []float64 // in application order
	HasDiscount bool
	Tier        *Tier
}

// Resolve picks the applicable discount tier and returns the final
// per-unit price. Exact-quantity tiers win over threshold tiers; among
// threshold tiers the highest qualifying MinQuantity wins, regardless
// of which tier carries the bigger percentage. With no qualifying tier
// the list price applies untouched. basePrice is the price discounts
// are computed from; when zero it falls back to listPrice.
//
// Resolve is pure: it never mutates tiers and touches no I/O.
func Resolve(tiers []Tier, listPrice, basePrice float64, quantity int, unit string) Quote {
	if len(tiers) == 0 {
		return Quote{UnitPrice: listPrice}
	}

	for i := range tiers {
		t := tiers[i]
		if t.IsExact && t.MinQuantity == quantity && (unit == "" || t.Unit == unit) {
			return applyTier(t, listPrice, basePrice)
		}
	}

	candidates := make([]Tier, 0, len(tiers))
	for _, t := range tiers {
		if !t.IsExact && (unit == "" || t.Unit == unit) {
			candidates = append(candidates, t)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MinQuantity > candidates[j].MinQuantity
	})

	for i := range candidates {
		if quantity >= candidates[i].MinQuantity {
			return applyTier(candidates[i], listPrice, basePrice)
		}
	}

	return Quote{UnitPrice: listPrice}
}

func applyTier(t Tier, listPrice, basePrice float64) Quote {
	price := basePrice
	if price == 0 {
		price = listPrice
	}

	discounts := make([]float64, 0, 2)
	price = price - (price*t.Discount)/100
	discounts = append(discounts, t.Discount)

	if t.Discount2 > 0 {
		price = price - (price*t.Discount2)/100
		discounts = append(discounts, t.Discount2)
	}

	return Quote{
		UnitPrice:   price,
		Discounts:   discounts,
		HasDiscount: true,
		Tier:        &t,
	}
}
