package nota

import (
	"fmt"

	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/pricing"
	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/product"
)

// Selection is one cart row: a full product snapshot plus the chosen
// quantity and unit. Selections are never persisted directly; they are
// converted to line items at save time.
type Selection struct {
	Product  product.Product
	Quantity int
	Unit     string
}

// Cart holds an ordered set of selections with at most one entry per
// product. Quantities may be zero while the user is still typing;
// Items rejects them at save time.
type Cart struct {
	selections []Selection
}

func NewCart() *Cart {
	return &Cart{}
}

// Add appends a selection. A product already in the cart is rejected
// rather than merged. The unit must be one the product supports.
func (c *Cart) Add(p product.Product, quantity int, unit string) error {
	for _, s := range c.selections {
		if s.Product.ID == p.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateProduct, p.Name)
		}
	}
	if !unitSupported(p, unit) {
		return fmt.Errorf("%w: %s", ErrUnsupportedUnit, unit)
	}
	c.selections = append(c.selections, Selection{Product: p, Quantity: quantity, Unit: unit})
	return nil
}

func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.selections) {
		return fmt.Errorf("index %d out of range", index)
	}
	c.selections = append(c.selections[:index], c.selections[index+1:]...)
	return nil
}

// UpdateQuantity accepts any value, including the transient zero an
// emptied input produces. Non-positive quantities only fail at save.
func (c *Cart) UpdateQuantity(index, quantity int) error {
	if index < 0 || index >= len(c.selections) {
		return fmt.Errorf("index %d out of range", index)
	}
	c.selections[index].Quantity = quantity
	return nil
}

func (c *Cart) UpdateUnit(index int, unit string) error {
	if index < 0 || index >= len(c.selections) {
		return fmt.Errorf("index %d out of range", index)
	}
	if !unitSupported(c.selections[index].Product, unit) {
		return fmt.Errorf("%w: %s", ErrUnsupportedUnit, unit)
	}
	c.selections[index].Unit = unit
	return nil
}

func (c *Cart) Len() int {
	return len(c.selections)
}

func (c *Cart) Selections() []Selection {
	out := make([]Selection, len(c.selections))
	copy(out, c.selections)
	return out
}

// Total recomputes the running total on every call. Zero-quantity rows
// contribute nothing so the total stays meaningful mid-edit.
func (c *Cart) Total() float64 {
	var total float64
	for _, s := range c.selections {
		info := s.Product.PricingInfo()
		q := pricing.Resolve(info.Tiers, info.Price, info.BasePrice, s.Quantity, s.Unit)
		total += q.UnitPrice * float64(s.Quantity)
	}
	return total
}

// Items converts every selection into a persisted line item. All
// selections must carry a positive quantity; offenders are reported
// together so the caller can name them all at once.
func (c *Cart) Items() ([]pricing.LineItem, error) {
	var bad []string
	for _, s := range c.selections {
		if s.Quantity <= 0 {
			bad = append(bad, s.Product.Name)
		}
	}
	if len(bad) > 0 {
		return nil, &InvalidQuantityError{ProductNames: bad}
	}

	items := make([]pricing.LineItem, 0, len(c.selections))
	for _, s := range c.selections {
		item, err := pricing.ComputeLineItem(s.Product.PricingInfo(), s.Quantity, s.Unit)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func unitSupported(p product.Product, unit string) bool {
	for _, u := range p.UnitOptions() {
		if u == unit {
			return true
		}
	}
	return false
}
