package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SalesRow struct {
	ID        string
	Name      string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SalesRepo struct {
	db *pgxpool.Pool
}

func NewSalesRepo(db *pgxpool.Pool) *SalesRepo {
	return &SalesRepo{db: db}
}

func (r *SalesRepo) Create(ctx context.Context, name, phone string) (*SalesRow, error) {
	const q = `
INSERT INTO sales (id, name, phone)
VALUES ($1, $2, $3)
RETURNING id::text, name, phone, created_at, updated_at;
`
	var out SalesRow
	err := r.db.QueryRow(ctx, q, uuid.New().String(), name, phone).Scan(
		&out.ID, &out.Name, &out.Phone, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *SalesRepo) GetByID(ctx context.Context, id string) (*SalesRow, error) {
	const q = `
SELECT id::text, name, phone, created_at, updated_at
FROM sales
WHERE id = $1::uuid
LIMIT 1;
`
	var out SalesRow
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&out.ID, &out.Name, &out.Phone, &out.CreatedAt, &out.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *SalesRepo) List(ctx context.Context, limit, offset int) ([]SalesRow, error) {
	const q = `
SELECT id::text, name, phone, created_at, updated_at
FROM sales
ORDER BY name ASC
LIMIT $1 OFFSET $2;
`
	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SalesRow, 0, limit)
	for rows.Next() {
		var s SalesRow
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
