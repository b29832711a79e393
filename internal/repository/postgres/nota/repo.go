package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotaRow struct {
	ID                string
	TransactionNumber string
	CustomerName      string
	CustomerAddress   string
	SalesID           *string
	SalesName         *string
	TotalAmount       float64
	Notes             string
	PaymentTermsDays  *string
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type NotaItemRow struct {
	ID              string
	NotaID          string
	ProductID       string
	ProductName     string
	Position        int
	Quantity        int
	Unit            string
	UnitPrice       float64
	DiscountAmount  float64
	DiscountPercent float64
	DiscountDetails []byte
	Subtotal        float64
}

// HeaderParams carries the scalar columns of a nota header. Money
// fields are pre-formatted numeric text, matching the table types.
type HeaderParams struct {
	CustomerName     string
	CustomerAddress  string
	SalesID          *string
	SalesName        *string
	TotalAmount      string
	Notes            string
	PaymentTermsDays *string
}

// Position fixes the display order of a line; created_at is tx-stable
// and ids are random, so neither can reproduce insert order.
type ItemParams struct {
	ProductID       string
	ProductName     string
	Position        int
	Quantity        int
	Unit            string
	UnitPrice       string
	DiscountAmount  string
	DiscountPercent string
	DiscountDetails []byte
	Subtotal        string
}

type NotaRepo struct {
	db *pgxpool.Pool
}

func NewNotaRepo(db *pgxpool.Pool) *NotaRepo {
	return &NotaRepo{db: db}
}

func (r *NotaRepo) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.db.BeginTx(ctx, pgx.TxOptions{})
}

const counterKey = "transaction_counter"

// nextCounter consumes one counter value atomically. The first call
// ever seeds the row from the configured seed and consumes the seed
// itself; every later call increments under the row lock the UPDATE
// takes, so two concurrent creates can never read the same value.
func nextCounter(ctx context.Context, tx pgx.Tx, seed string) (string, error) {
	const q = `
INSERT INTO settings (key, value)
VALUES ($1, ($2::bigint + 1)::text)
ON CONFLICT (key) DO UPDATE
SET value = ((settings.value)::bigint + 1)::text,
    updated_at = now()
RETURNING ((value)::bigint - 1)::text;
`
	var counter string
	if err := tx.QueryRow(ctx, q, counterKey, seed).Scan(&counter); err != nil {
		return "", err
	}
	return counter, nil
}

const notaColumns = `
  id::text, transaction_number, customer_name, customer_address,
  sales_id::text, sales_name,
  total_amount::float8, notes, payment_terms_days, status,
  created_at, updated_at`

func scanNota(row pgx.Row) (*NotaRow, error) {
	var n NotaRow
	if err := row.Scan(
		&n.ID, &n.TransactionNumber, &n.CustomerName, &n.CustomerAddress,
		&n.SalesID, &n.SalesName,
		&n.TotalAmount, &n.Notes, &n.PaymentTermsDays, &n.Status,
		&n.CreatedAt, &n.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &n, nil
}

func insertNota(ctx context.Context, tx pgx.Tx, number string, h HeaderParams) (*NotaRow, error) {
	q := `
INSERT INTO transactions (
  transaction_number, customer_name, customer_address,
  sales_id, sales_name, total_amount, notes, payment_terms_days
) VALUES (
  $1, $2, $3, $4::uuid, $5, $6::numeric, $7, $8
)
RETURNING` + notaColumns + `;`

	row := tx.QueryRow(ctx, q,
		number, h.CustomerName, h.CustomerAddress,
		h.SalesID, h.SalesName, h.TotalAmount, h.Notes, h.PaymentTermsDays,
	)
	return scanNota(row)
}

func insertNotaItem(ctx context.Context, tx pgx.Tx, notaID string, p ItemParams) error {
	const q = `
INSERT INTO transaction_items (
  transaction_id, product_id, product_name, position, quantity, unit,
  unit_price, discount_amount, discount_percent, discount_details, subtotal
) VALUES (
  $1::uuid, $2::uuid, $3, $4, $5, $6,
  $7::numeric, $8::numeric, $9::numeric, $10, $11::numeric
);
`
	_, err := tx.Exec(ctx, q,
		notaID, p.ProductID, p.ProductName, p.Position, p.Quantity, p.Unit,
		p.UnitPrice, p.DiscountAmount, p.DiscountPercent, p.DiscountDetails, p.Subtotal,
	)
	return err
}

func deleteNotaItems(ctx context.Context, tx pgx.Tx, notaID string) error {
	const q = `DELETE FROM transaction_items WHERE transaction_id = $1::uuid;`
	_, err := tx.Exec(ctx, q, notaID)
	return err
}

func updateNotaHeader(ctx context.Context, tx pgx.Tx, id string, h HeaderParams) (*NotaRow, error) {
	q := `
UPDATE transactions
SET customer_name = $2,
    customer_address = $3,
    sales_id = $4::uuid,
    sales_name = $5,
    total_amount = $6::numeric,
    notes = $7,
    payment_terms_days = $8,
    updated_at = now()
WHERE id = $1::uuid
RETURNING` + notaColumns + `;`

	row := tx.QueryRow(ctx, q,
		id, h.CustomerName, h.CustomerAddress,
		h.SalesID, h.SalesName, h.TotalAmount, h.Notes, h.PaymentTermsDays,
	)
	return scanNota(row)
}

func lockNotaStatus(ctx context.Context, tx pgx.Tx, id string) (string, error) {
	const q = `
SELECT status
FROM transactions
WHERE id = $1::uuid
FOR UPDATE;
`
	var status string
	if err := tx.QueryRow(ctx, q, id).Scan(&status); err != nil {
		return "", err
	}
	return status, nil
}

// completeNota finalizes a pending nota. created_at is overwritten on
// purpose: the nota date is the date it was issued, not drafted.
func completeNota(ctx context.Context, tx pgx.Tx, id string) (*NotaRow, error) {
	q := `
UPDATE transactions
SET status = $2,
    created_at = now(),
    updated_at = now()
WHERE id = $1::uuid
RETURNING` + notaColumns + `;`

	return scanNota(tx.QueryRow(ctx, q, id, "completed"))
}

func (r *NotaRepo) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM transactions WHERE id = $1::uuid;`
	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func (r *NotaRepo) GetByID(ctx context.Context, id string) (*NotaRow, error) {
	q := `SELECT` + notaColumns + `
FROM transactions
WHERE id = $1::uuid
LIMIT 1;`

	return scanNota(r.db.QueryRow(ctx, q, id))
}

func (r *NotaRepo) List(ctx context.Context, status, search string, since *time.Time, limit, offset int) ([]NotaRow, error) {
	q := `SELECT` + notaColumns + `
FROM transactions
WHERE ($1 = '' OR status = $1)
  AND ($2 = '' OR transaction_number ILIKE '%' || $2 || '%' OR customer_name ILIKE '%' || $2 || '%')
  AND ($3::timestamptz IS NULL OR created_at >= $3)
ORDER BY created_at DESC
LIMIT $4 OFFSET $5;`

	rows, err := r.db.Query(ctx, q, status, search, since, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]NotaRow, 0, limit)
	for rows.Next() {
		n, err := scanNota(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

const itemColumns = `
  id::text, transaction_id::text, product_id::text, product_name,
  position, quantity, unit,
  unit_price::float8, discount_amount::float8, discount_percent::float8,
  discount_details, subtotal::float8`

func scanNotaItem(row pgx.Row) (*NotaItemRow, error) {
	var it NotaItemRow
	if err := row.Scan(
		&it.ID, &it.NotaID, &it.ProductID, &it.ProductName,
		&it.Position, &it.Quantity, &it.Unit,
		&it.UnitPrice, &it.DiscountAmount, &it.DiscountPercent,
		&it.DiscountDetails, &it.Subtotal,
	); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *NotaRepo) ListItems(ctx context.Context, notaID string) ([]NotaItemRow, error) {
	q := `SELECT` + itemColumns + `
FROM transaction_items
WHERE transaction_id = $1::uuid
ORDER BY position ASC;`

	rows, err := r.db.Query(ctx, q, notaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]NotaItemRow, 0, 8)
	for rows.Next() {
		it, err := scanNotaItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}
	return out, rows.Err()
}
