package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/pricing"
	productuc "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/product"
)

type ProductStoreAdapter struct {
	repo *ProductRepo
}

func NewProductStoreAdapter(repo *ProductRepo) *ProductStoreAdapter {
	return &ProductStoreAdapter{repo: repo}
}

func (a *ProductStoreAdapter) GetByID(ctx context.Context, id string) (*productuc.Product, error) {
	row, err := a.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, productuc.ErrNotFound
		}
		return nil, err
	}
	return mapProductRow(row)
}

func (a *ProductStoreAdapter) List(ctx context.Context, limit, offset int, search string) ([]productuc.Product, error) {
	rows, err := a.repo.List(ctx, limit, offset, search)
	if err != nil {
		return nil, err
	}
	out := make([]productuc.Product, 0, len(rows))
	for i := range rows {
		p, err := mapProductRow(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

// mapProductRow validates the JSONB columns at the store boundary so
// the rest of the system only ever sees typed tiers and stock entries.
func mapProductRow(r *ProductRow) (*productuc.Product, error) {
	var tiers []pricing.Tier
	if len(r.DiscountTiers) > 0 {
		if err := json.Unmarshal(r.DiscountTiers, &tiers); err != nil {
			return nil, fmt.Errorf("product %s: bad discount_tiers: %w", r.ID, err)
		}
	}

	var entries []productuc.StockEntry
	if len(r.StockEntries) > 0 {
		if err := json.Unmarshal(r.StockEntries, &entries); err != nil {
			return nil, fmt.Errorf("product %s: bad stock_entries: %w", r.ID, err)
		}
	}

	return &productuc.Product{
		ID:            r.ID,
		Name:          r.Name,
		Category:      r.Category,
		SKU:           r.SKU,
		Price:         r.Price,
		BasePrice:     r.BasePrice,
		PurchasePrice: r.PurchasePrice,
		DiscountTiers: tiers,
		StockEntries:  entries,
		StockUnit:     r.StockUnit,
	}, nil
}

var _ productuc.Store = (*ProductStoreAdapter)(nil)
