package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRow struct {
	ID           string
	Name         string
	Address      string
	PaymentTerms []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CustomerRepo struct {
	db *pgxpool.Pool
}

func NewCustomerRepo(db *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) Create(ctx context.Context, name, address string, paymentTerms []byte) (*CustomerRow, error) {
	const q = `
INSERT INTO customers (id, name, address, payment_terms)
VALUES ($1, $2, $3, $4)
RETURNING id::text, name, address, payment_terms, created_at, updated_at;
`
	id := uuid.New().String()

	var out CustomerRow
	err := r.db.QueryRow(ctx, q, id, name, address, paymentTerms).Scan(
		&out.ID,
		&out.Name,
		&out.Address,
		&out.PaymentTerms,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*CustomerRow, error) {
	const q = `
SELECT id::text, name, address, payment_terms, created_at, updated_at
FROM customers
WHERE id = $1::uuid
LIMIT 1;
`
	var out CustomerRow
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&out.ID,
		&out.Name,
		&out.Address,
		&out.PaymentTerms,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CustomerRepo) List(ctx context.Context, limit, offset int) ([]CustomerRow, error) {
	const q = `
SELECT id::text, name, address, payment_terms, created_at, updated_at
FROM customers
ORDER BY name ASC
LIMIT $1 OFFSET $2;
`
	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CustomerRow, 0, limit)
	for rows.Next() {
		var c CustomerRow
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Address,
			&c.PaymentTerms,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CustomerRepo) Update(ctx context.Context, id string, name, address *string, paymentTerms []byte) (*CustomerRow, error) {
	const q = `
UPDATE customers
SET
  name          = COALESCE($2, name),
  address       = COALESCE($3, address),
  payment_terms = COALESCE($4, payment_terms),
  updated_at    = now()
WHERE id = $1::uuid
RETURNING id::text, name, address, payment_terms, created_at, updated_at;
`
	var out CustomerRow
	err := r.db.QueryRow(ctx, q, id, name, address, paymentTerms).Scan(
		&out.ID,
		&out.Name,
		&out.Address,
		&out.PaymentTerms,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
