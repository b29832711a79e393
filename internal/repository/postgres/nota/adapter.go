package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/pricing"
	customeruc "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/customer"
	notauc "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/nota"
	productuc "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/product"
	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/salesperson"
)

// customerLookup and friends are the read-side dependencies the nota
// store borrows from the sibling adapters.
type customerLookup interface {
	GetByID(ctx context.Context, id string) (*customeruc.Customer, error)
}

type salesLookup interface {
	GetByID(ctx context.Context, id string) (*salesperson.Salesperson, error)
}

type productLookup interface {
	GetByID(ctx context.Context, id string) (*productuc.Product, error)
}

type NotaStoreAdapter struct {
	repo      *NotaRepo
	seed      string
	prefix    string
	customers customerLookup
	sales     salesLookup
	products  productLookup
}

func NewNotaStoreAdapter(
	repo *NotaRepo,
	prefix string,
	seed string,
	customers customerLookup,
	sales salesLookup,
	products productLookup,
) *NotaStoreAdapter {
	if seed == "" {
		seed = notauc.DefaultCounterSeed
	}
	return &NotaStoreAdapter{
		repo:      repo,
		seed:      seed,
		prefix:    prefix,
		customers: customers,
		sales:     sales,
		products:  products,
	}
}

func (a *NotaStoreAdapter) GetCustomer(ctx context.Context, id string) (*notauc.CustomerRef, error) {
	c, err := a.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customeruc.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notauc.CustomerRef{ID: c.ID, Name: c.Name, Address: c.Address}, nil
}

func (a *NotaStoreAdapter) GetSales(ctx context.Context, id string) (*notauc.SalesRef, error) {
	s, err := a.sales.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, salesperson.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notauc.SalesRef{ID: s.ID, Name: s.Name}, nil
}

func (a *NotaStoreAdapter) GetProductSnapshot(ctx context.Context, id string) (*productuc.Product, error) {
	p, err := a.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, productuc.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// CreateNota allocates a transaction number and persists the header
// plus every line item inside one transaction.
func (a *NotaStoreAdapter) CreateNota(ctx context.Context, d notauc.Draft) (*notauc.Nota, error) {
	tx, err := a.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	counter, err := nextCounter(ctx, tx, a.seed)
	if err != nil {
		return nil, err
	}
	number := notauc.FormatNumber(a.prefix, counter)

	row, err := insertNota(ctx, tx, number, headerParams(d))
	if err != nil {
		return nil, mapPgErr(err)
	}

	for i, it := range d.Items {
		p, err := itemParams(it, i)
		if err != nil {
			return nil, err
		}
		if err := insertNotaItem(ctx, tx, row.ID, p); err != nil {
			return nil, mapPgErr(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	out := mapNotaRow(row)
	out.Items = d.Items
	return out, nil
}

// ReplaceNota locks the header, verifies it is still pending, then
// swaps the full item set and rewrites the scalar columns. Edits never
// patch individual rows.
func (a *NotaStoreAdapter) ReplaceNota(ctx context.Context, id string, d notauc.Draft) (*notauc.Nota, error) {
	tx, err := a.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	status, err := lockNotaStatus(ctx, tx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notauc.ErrNotFound
		}
		return nil, err
	}
	if status != notauc.StatusPending {
		return nil, notauc.ErrNotEditable
	}

	if err := deleteNotaItems(ctx, tx, id); err != nil {
		return nil, err
	}
	for i, it := range d.Items {
		p, err := itemParams(it, i)
		if err != nil {
			return nil, err
		}
		if err := insertNotaItem(ctx, tx, id, p); err != nil {
			return nil, mapPgErr(err)
		}
	}

	row, err := updateNotaHeader(ctx, tx, id, headerParams(d))
	if err != nil {
		return nil, mapPgErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	out := mapNotaRow(row)
	out.Items = d.Items
	return out, nil
}

func (a *NotaStoreAdapter) Finalize(ctx context.Context, id string) (*notauc.Nota, error) {
	tx, err := a.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	status, err := lockNotaStatus(ctx, tx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notauc.ErrNotFound
		}
		return nil, err
	}
	if status == notauc.StatusCompleted {
		return nil, notauc.ErrAlreadyCompleted
	}
	if !notauc.CanTransition(status, notauc.StatusCompleted) {
		return nil, notauc.ErrNotEditable
	}

	row, err := completeNota(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return mapNotaRow(row), nil
}

func (a *NotaStoreAdapter) Delete(ctx context.Context, id string) error {
	ok, err := a.repo.Delete(ctx, id)
	if err != nil {
		return mapPgErr(err)
	}
	if !ok {
		return notauc.ErrNotFound
	}
	return nil
}

func (a *NotaStoreAdapter) GetByID(ctx context.Context, id string) (*notauc.Nota, error) {
	row, err := a.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notauc.ErrNotFound
		}
		return nil, err
	}

	itemRows, err := a.repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}

	out := mapNotaRow(row)
	out.Items = make([]pricing.LineItem, 0, len(itemRows))
	for i := range itemRows {
		li, err := mapItemRow(&itemRows[i])
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, *li)
	}
	return out, nil
}

func (a *NotaStoreAdapter) List(ctx context.Context, in notauc.ListInput) ([]notauc.Nota, error) {
	rows, err := a.repo.List(ctx, in.Status, in.Search, in.Since, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]notauc.Nota, 0, len(rows))
	for i := range rows {
		out = append(out, *mapNotaRow(&rows[i]))
	}
	return out, nil
}

func headerParams(d notauc.Draft) HeaderParams {
	return HeaderParams{
		CustomerName:     d.CustomerName,
		CustomerAddress:  d.CustomerAddress,
		SalesID:          d.SalesID,
		SalesName:        d.SalesName,
		TotalAmount:      formatMoney(d.TotalAmount),
		Notes:            d.Notes,
		PaymentTermsDays: d.PaymentTermsDays,
	}
}

func itemParams(it pricing.LineItem, position int) (ItemParams, error) {
	var details []byte
	if it.DiscountDetails != nil {
		b, err := json.Marshal(it.DiscountDetails)
		if err != nil {
			return ItemParams{}, err
		}
		details = b
	}
	return ItemParams{
		ProductID:       it.ProductID,
		ProductName:     it.ProductName,
		Position:        position,
		Quantity:        it.Quantity,
		Unit:            it.Unit,
		UnitPrice:       formatMoney(it.UnitPrice),
		DiscountAmount:  formatMoney(it.DiscountAmount),
		DiscountPercent: formatMoney(it.DiscountPercent),
		DiscountDetails: details,
		Subtotal:        formatMoney(it.Subtotal),
	}, nil
}

func mapNotaRow(r *NotaRow) *notauc.Nota {
	return &notauc.Nota{
		ID:                r.ID,
		TransactionNumber: r.TransactionNumber,
		CustomerName:      r.CustomerName,
		CustomerAddress:   r.CustomerAddress,
		SalesID:           r.SalesID,
		SalesName:         r.SalesName,
		TotalAmount:       r.TotalAmount,
		Notes:             r.Notes,
		PaymentTermsDays:  r.PaymentTermsDays,
		Status:            r.Status,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func mapItemRow(r *NotaItemRow) (*pricing.LineItem, error) {
	var details *pricing.DiscountDetails
	if len(r.DiscountDetails) > 0 {
		details = &pricing.DiscountDetails{}
		if err := json.Unmarshal(r.DiscountDetails, details); err != nil {
			return nil, err
		}
	}
	return &pricing.LineItem{
		ProductID:       r.ProductID,
		ProductName:     r.ProductName,
		Quantity:        r.Quantity,
		Unit:            r.Unit,
		UnitPrice:       r.UnitPrice,
		DiscountAmount:  r.DiscountAmount,
		DiscountPercent: r.DiscountPercent,
		DiscountDetails: details,
		Subtotal:        r.Subtotal,
	}, nil
}

func mapPgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return notauc.ErrDuplicateNotaNumber
		case "23503":
			return notauc.ErrReferentialConflict
		}
	}
	return err
}

func formatMoney(v float64) string {
	// numeric(14,2) formatting
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Compile-time check
var _ notauc.Store = (*NotaStoreAdapter)(nil)
