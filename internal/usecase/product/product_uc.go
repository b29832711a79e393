package product

import (
	"context"
	"errors"

	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/pricing"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("product not found")
)

// DefaultUnits is the unit fallback for products without stock entries.
var DefaultUnits = []string{"buah", "box", "karton"}

// StockEntry is one per-unit stock bucket from the stock_entries JSONB.
type StockEntry struct {
	Unit     string `json:"unit"`
	Quantity int    `json:"quantity"`
}

type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Category      string         `json:"category"`
	SKU           string         `json:"sku"`
	Price         float64        `json:"price"`
	BasePrice     float64        `json:"base_price"`
	PurchasePrice float64        `json:"purchase_price"`
	DiscountTiers []pricing.Tier `json:"discount_tiers"`
	StockEntries  []StockEntry   `json:"stock_entries"`
	StockUnit     string         `json:"stock_unit"`
}

// PricingInfo projects the fields the pricing engine needs.
func (p Product) PricingInfo() pricing.ProductInfo {
	return pricing.ProductInfo{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		BasePrice: p.BasePrice,
		Tiers:     p.DiscountTiers,
	}
}

// UnitOptions returns the units a selection may use for this product:
// the stock-entry units when present, the shared default set otherwise.
func (p Product) UnitOptions() []string {
	if len(p.StockEntries) == 0 {
		return DefaultUnits
	}
	units := make([]string, 0, len(p.StockEntries))
	for _, e := range p.StockEntries {
		units = append(units, e.Unit)
	}
	return units
}

type Store interface {
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, limit, offset int, search string) ([]Product, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) GetByID(ctx context.Context, id string) (*Product, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.GetByID(ctx, id)
}

func (u *Usecase) List(ctx context.Context, limit, offset int, search string) ([]Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return u.store.List(ctx, limit, offset, search)
}
