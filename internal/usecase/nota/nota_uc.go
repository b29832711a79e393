package nota

import (
	"context"
	"strings"
	"time"

	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/product"
)

// Store is the persistence boundary. Every multi-step save sequence
// (counter + header + items on create, delete + insert + update on
// replace) must run inside one database transaction, and Finalize and
// ReplaceNota must lock the header row so concurrent lifecycle
// operations cannot interleave.
type Store interface {
	GetCustomer(ctx context.Context, id string) (*CustomerRef, error)
	GetSales(ctx context.Context, id string) (*SalesRef, error)
	GetProductSnapshot(ctx context.Context, id string) (*product.Product, error)

	CreateNota(ctx context.Context, d Draft) (*Nota, error)
	ReplaceNota(ctx context.Context, id string, d Draft) (*Nota, error)
	Finalize(ctx context.Context, id string) (*Nota, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Nota, error)
	List(ctx context.Context, in ListInput) ([]Nota, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

// Create validates the cart, computes every line item and the total,
// and persists the nota as a pending draft under a freshly allocated
// transaction number. No validation failure touches the store.
func (u *Usecase) Create(ctx context.Context, in SaveInput) (*Nota, error) {
	d, err := u.buildDraft(ctx, in)
	if err != nil {
		return nil, err
	}
	return u.store.CreateNota(ctx, *d)
}

// Edit recomputes the full line-item set from the edited cart and
// replaces the previous set wholesale. Only pending notas are
// editable.
func (u *Usecase) Edit(ctx context.Context, id string, in SaveInput) (*Nota, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	cur, err := u.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur.Status != StatusPending {
		return nil, ErrNotEditable
	}

	d, err := u.buildDraft(ctx, in)
	if err != nil {
		return nil, err
	}
	return u.store.ReplaceNota(ctx, id, *d)
}

// Finalize moves a pending nota to completed. The creation timestamp
// is overwritten with the finalize time, matching the paper flow where
// the nota date is the date it was issued, not drafted. A second call
// fails with ErrAlreadyCompleted.
func (u *Usecase) Finalize(ctx context.Context, id string) (*Nota, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	return u.store.Finalize(ctx, id)
}

// Delete removes a nota and its line items in any state.
func (u *Usecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrNotFound
	}
	return u.store.Delete(ctx, id)
}

func (u *Usecase) GetByID(ctx context.Context, id string) (*Nota, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	return u.store.GetByID(ctx, id)
}

// List supports the history view filters: status tab, period shortcut
// and free-text search over number and customer name.
func (u *Usecase) List(ctx context.Context, status, period, search string, limit, offset int) ([]Nota, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	in := ListInput{
		Status: status,
		Search: strings.TrimSpace(search),
		Limit:  limit,
		Offset: offset,
	}
	if since := periodStart(period, time.Now()); since != nil {
		in.Since = since
	}
	return u.store.List(ctx, in)
}

func (u *Usecase) buildDraft(ctx context.Context, in SaveInput) (*Draft, error) {
	if in.CustomerID == "" {
		return nil, ErrMissingCustomer
	}
	if len(in.Items) == 0 {
		return nil, ErrEmptyCart
	}

	cust, err := u.store.GetCustomer(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if cust == nil {
		return nil, ErrMissingCustomer
	}

	var salesID, salesName *string
	if in.SalesID != "" {
		s, err := u.store.GetSales(ctx, in.SalesID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, ErrSalesMissing
		}
		salesID, salesName = &s.ID, &s.Name
	}

	cart := NewCart()
	for _, it := range in.Items {
		p, err := u.store.GetProductSnapshot(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, ErrProductMissing
		}
		if err := cart.Add(*p, it.Quantity, it.Unit); err != nil {
			return nil, err
		}
	}

	items, err := cart.Items()
	if err != nil {
		return nil, err
	}

	var total float64
	for _, it := range items {
		total += it.Subtotal
	}

	var terms *string
	if t := strings.TrimSpace(in.PaymentTermsDays); t != "" {
		terms = &t
	}

	return &Draft{
		CustomerName:     cust.Name,
		CustomerAddress:  cust.Address,
		SalesID:          salesID,
		SalesName:        salesName,
		Notes:            in.Notes,
		PaymentTermsDays: terms,
		TotalAmount:      total,
		Items:            items,
	}, nil
}

func periodStart(period string, now time.Time) *time.Time {
	var since time.Time
	switch period {
	case "today":
		since = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		since = now.AddDate(0, 0, -7)
	case "month":
		since = now.AddDate(0, -1, 0)
	default:
		return nil
	}
	return &since
}
