package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportNotaRow struct {
	ID                string
	TransactionNumber string
	CustomerName      string
	TotalAmount       float64
	PaymentTermsDays  *string
	Status            string
	CreatedAt         time.Time
}

type ReportItemRow struct {
	NotaID      string
	ProductName string
	Quantity    int
	Unit        string
	Subtotal    float64
}

type ReportRepo struct {
	db *pgxpool.Pool
}

func NewReportRepo(db *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{db: db}
}

const reportNotaColumns = `
  id::text, transaction_number, customer_name,
  total_amount::float8, payment_terms_days, status, created_at`

// ListInRange returns every nota header with an issue date in
// [start, end), regardless of status. The sales summary counts pending
// drafts alongside completed notas.
func (r *ReportRepo) ListInRange(ctx context.Context, start, end time.Time) ([]ReportNotaRow, error) {
	q := `SELECT` + reportNotaColumns + `
FROM transactions
WHERE created_at >= $1
  AND created_at < $2
ORDER BY created_at ASC;`

	return r.listHeaders(ctx, q, start, end)
}

// ListCompletedInRange returns only completed nota headers in
// [start, end). The monthly recap lists issued notas exclusively.
func (r *ReportRepo) ListCompletedInRange(ctx context.Context, start, end time.Time) ([]ReportNotaRow, error) {
	q := `SELECT` + reportNotaColumns + `
FROM transactions
WHERE status = 'completed'
  AND created_at >= $1
  AND created_at < $2
ORDER BY created_at ASC;`

	return r.listHeaders(ctx, q, start, end)
}

func (r *ReportRepo) listHeaders(ctx context.Context, q string, start, end time.Time) ([]ReportNotaRow, error) {
	rows, err := r.db.Query(ctx, q, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ReportNotaRow, 0, 64)
	for rows.Next() {
		var n ReportNotaRow
		if err := rows.Scan(
			&n.ID, &n.TransactionNumber, &n.CustomerName,
			&n.TotalAmount, &n.PaymentTermsDays, &n.Status, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// ListItemsInRange returns every line item whose nota falls in
// [start, end), keyed back to its header by NotaID.
func (r *ReportRepo) ListItemsInRange(ctx context.Context, start, end time.Time) ([]ReportItemRow, error) {
	const q = `
SELECT
  ti.transaction_id::text, ti.product_name, ti.quantity, ti.unit, ti.subtotal::float8
FROM transaction_items ti
JOIN transactions t ON t.id = ti.transaction_id
WHERE t.created_at >= $1
  AND t.created_at < $2;
`
	rows, err := r.db.Query(ctx, q, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ReportItemRow, 0, 128)
	for rows.Next() {
		var it ReportItemRow
		if err := rows.Scan(&it.NotaID, &it.ProductName, &it.Quantity, &it.Unit, &it.Subtotal); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
