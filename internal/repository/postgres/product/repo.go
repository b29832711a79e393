package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductRow is the raw store shape; discount_tiers and stock_entries
// arrive as JSONB and are validated by the adapter before anything
// downstream sees them.
type ProductRow struct {
	ID            string
	Name          string
	Category      string
	SKU           string
	Price         float64
	BasePrice     float64
	PurchasePrice float64
	DiscountTiers []byte
	StockEntries  []byte
	StockUnit     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ProductRepo struct {
	db *pgxpool.Pool
}

func NewProductRepo(db *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `
  id::text, name, category, sku,
  price::float8, base_price::float8, purchase_price::float8,
  discount_tiers, stock_entries, stock_unit,
  created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (*ProductRow, error) {
	var p ProductRow
	if err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.SKU,
		&p.Price, &p.BasePrice, &p.PurchasePrice,
		&p.DiscountTiers, &p.StockEntries, &p.StockUnit,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*ProductRow, error) {
	q := `SELECT` + productColumns + `
FROM products
WHERE id = $1::uuid;`

	return scanProduct(r.db.QueryRow(ctx, q, id))
}

func (r *ProductRepo) List(ctx context.Context, limit, offset int, search string) ([]ProductRow, error) {
	q := `SELECT` + productColumns + `
FROM products
WHERE ($3 = '' OR name ILIKE '%' || $3 || '%' OR sku ILIKE '%' || $3 || '%')
ORDER BY name ASC
LIMIT $1 OFFSET $2;`

	rows, err := r.db.Query(ctx, q, limit, offset, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ProductRow, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}
