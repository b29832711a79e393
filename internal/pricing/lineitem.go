package pricing

import (
	"errors"
	"math"
)

var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

// ProductInfo is the pricing-relevant slice of a product record.
type ProductInfo struct {
	ID        string
	Name      string
	Price     float64 // list price, fallback when no discount applies
	BasePrice float64 // discount-eligible base, 0 means "use Price"
	Tiers     []Tier
}

// DiscountDetails records the individual percentages of a resolved
// discount chain. Discount2 stays 0 when only one step applied.
type DiscountDetails struct {
	Discount1 float64 `json:"discount1"`
	Discount2 float64 `json:"discount2"`
}

// LineItem is the persisted shape of one nota line. ProductName embeds
// quantity and unit ("<name> (<qty> <unit>)"); Quantity and Unit carry
// the same values as first-class fields.
type LineItem struct {
	ProductID       string           `json:"product_id"`
	ProductName     string           `json:"product_name"`
	Quantity        int              `json:"quantity"`
	Unit            string           `json:"unit"`
	UnitPrice       float64          `json:"unit_price"`
	DiscountAmount  float64          `json:"discount_amount"`
	DiscountPercent float64          `json:"discount_percent"`
	DiscountDetails *DiscountDetails `json:"discount_details,omitempty"`
	Subtotal        float64          `json:"subtotal"`
}

// ComputeLineItem turns a (product, quantity, unit) selection into a
// persisted line item. Quantity must be validated by the caller before
// save; anything <= 0 is a precondition violation.
func ComputeLineItem(p ProductInfo, quantity int, unit string) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}

	basePrice := p.BasePrice
	if basePrice == 0 {
		basePrice = p.Price
	}

	q := Resolve(p.Tiers, p.Price, p.BasePrice, quantity, unit)

	discountAmount := basePrice - q.UnitPrice
	var discountPercent float64
	if basePrice > 0 {
		discountPercent = round2(discountAmount / basePrice * 100)
	}

	var details *DiscountDetails
	if len(q.Discounts) > 0 {
		details = &DiscountDetails{Discount1: q.Discounts[0]}
		if len(q.Discounts) > 1 {
			details.Discount2 = q.Discounts[1]
		}
	}

	return LineItem{
		ProductID:       p.ID,
		ProductName:     EncodeItemLabel(p.Name, quantity, unit),
		Quantity:        quantity,
		Unit:            unit,
		UnitPrice:       q.UnitPrice,
		DiscountAmount:  discountAmount,
		DiscountPercent: discountPercent,
		DiscountDetails: details,
		Subtotal:        q.UnitPrice * float64(quantity),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
