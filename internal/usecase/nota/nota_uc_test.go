package nota

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/pricing"
	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/product"
)

// fakeStore keeps everything in memory and mirrors the adapter's
// lifecycle guards so usecase behavior can be tested without a
// database.
type fakeStore struct {
	customers map[string]CustomerRef
	sales     map[string]SalesRef
	products  map[string]product.Product
	notas     map[string]*Nota
	counter   int64
	seq       int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		customers: map[string]CustomerRef{
			"c1": {ID: "c1", Name: "Toko Makmur", Address: "Jl. Melati 3"},
		},
		sales: map[string]SalesRef{
			"s1": {ID: "s1", Name: "Budi"},
		},
		products: map[string]product.Product{
			"p-aqua": aqua(),
			"p-teh":  tehBotol(),
		},
		notas:   map[string]*Nota{},
		counter: 2504040159,
	}
}

func (f *fakeStore) GetCustomer(_ context.Context, id string) (*CustomerRef, error) {
	if c, ok := f.customers[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (f *fakeStore) GetSales(_ context.Context, id string) (*SalesRef, error) {
	if s, ok := f.sales[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (f *fakeStore) GetProductSnapshot(_ context.Context, id string) (*product.Product, error) {
	if p, ok := f.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateNota(_ context.Context, d Draft) (*Nota, error) {
	number := FormatNumber("RJA/APT", strconv.FormatInt(f.counter, 10))
	f.counter++
	f.seq++

	now := time.Now()
	n := &Nota{
		ID:                fmt.Sprintf("nota-%d", f.seq),
		TransactionNumber: number,
		CustomerName:      d.CustomerName,
		CustomerAddress:   d.CustomerAddress,
		SalesID:           d.SalesID,
		SalesName:         d.SalesName,
		TotalAmount:       d.TotalAmount,
		Notes:             d.Notes,
		PaymentTermsDays:  d.PaymentTermsDays,
		Status:            StatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
		Items:             d.Items,
	}
	f.notas[n.ID] = n
	return cloneNota(n), nil
}

func (f *fakeStore) ReplaceNota(_ context.Context, id string, d Draft) (*Nota, error) {
	n, ok := f.notas[id]
	if !ok {
		return nil, ErrNotFound
	}
	if n.Status != StatusPending {
		return nil, ErrNotEditable
	}
	n.CustomerName = d.CustomerName
	n.CustomerAddress = d.CustomerAddress
	n.SalesID = d.SalesID
	n.SalesName = d.SalesName
	n.Notes = d.Notes
	n.PaymentTermsDays = d.PaymentTermsDays
	n.TotalAmount = d.TotalAmount
	n.Items = d.Items
	n.UpdatedAt = time.Now()
	return cloneNota(n), nil
}

func (f *fakeStore) Finalize(_ context.Context, id string) (*Nota, error) {
	n, ok := f.notas[id]
	if !ok {
		return nil, ErrNotFound
	}
	if n.Status == StatusCompleted {
		return nil, ErrAlreadyCompleted
	}
	now := time.Now()
	n.Status = StatusCompleted
	n.CreatedAt = now
	n.UpdatedAt = now
	return cloneNota(n), nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	if _, ok := f.notas[id]; !ok {
		return ErrNotFound
	}
	delete(f.notas, id)
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*Nota, error) {
	n, ok := f.notas[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneNota(n), nil
}

func (f *fakeStore) List(_ context.Context, in ListInput) ([]Nota, error) {
	out := make([]Nota, 0, len(f.notas))
	for _, n := range f.notas {
		if in.Status != "" && n.Status != in.Status {
			continue
		}
		out = append(out, *cloneNota(n))
	}
	return out, nil
}

func cloneNota(n *Nota) *Nota {
	c := *n
	c.Items = make([]pricing.LineItem, len(n.Items))
	copy(c.Items, n.Items)
	return &c
}

var _ Store = (*fakeStore)(nil)

// --- Tests ---------------------------------------------------------------

func TestCreate_RequiresCustomer(t *testing.T) {
	uc := New(newFakeStore())

	_, err := uc.Create(context.Background(), SaveInput{
		Items: []ItemInput{{ProductID: "p-teh", Quantity: 1, Unit: "buah"}},
	})
	require.ErrorIs(t, err, ErrMissingCustomer)

	// unknown customer id fails the same way
	_, err = uc.Create(context.Background(), SaveInput{
		CustomerID: "nope",
		Items:      []ItemInput{{ProductID: "p-teh", Quantity: 1, Unit: "buah"}},
	})
	require.ErrorIs(t, err, ErrMissingCustomer)
}

func TestCreate_RequiresNonEmptyCart(t *testing.T) {
	uc := New(newFakeStore())

	_, err := uc.Create(context.Background(), SaveInput{CustomerID: "c1"})
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCreate_NamesAllInvalidQuantities(t *testing.T) {
	uc := New(newFakeStore())

	_, err := uc.Create(context.Background(), SaveInput{
		CustomerID: "c1",
		Items: []ItemInput{
			{ProductID: "p-aqua", Quantity: 0, Unit: "box"},
			{ProductID: "p-teh", Quantity: -1, Unit: "buah"},
		},
	})

	var iq *InvalidQuantityError
	require.ErrorAs(t, err, &iq)
	require.Equal(t, []string{"Aqua Gelas", "Teh Botol"}, iq.ProductNames)
}

func TestCreate_RejectsDuplicateProduct(t *testing.T) {
	uc := New(newFakeStore())

	_, err := uc.Create(context.Background(), SaveInput{
		CustomerID: "c1",
		Items: []ItemInput{
			{ProductID: "p-teh", Quantity: 1, Unit: "buah"},
			{ProductID: "p-teh", Quantity: 2, Unit: "box"},
		},
	})
	require.ErrorIs(t, err, ErrDuplicateProduct)
}

func TestCreate_ComputesItemsTotalAndNumber(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	n, err := uc.Create(context.Background(), SaveInput{
		CustomerID:       "c1",
		SalesID:          "s1",
		PaymentTermsDays: "30 hari",
		Items: []ItemInput{
			{ProductID: "p-aqua", Quantity: 10, Unit: "box"},
			{ProductID: "p-teh", Quantity: 2, Unit: "buah"},
		},
	})
	require.NoError(t, err)

	require.Equal(t, "RJA/APT/2504040159", n.TransactionNumber)
	require.Equal(t, StatusPending, n.Status)
	require.Equal(t, "Toko Makmur", n.CustomerName)
	require.Equal(t, "Budi", *n.SalesName)
	require.Len(t, n.Items, 2)

	var sum float64
	for _, it := range n.Items {
		sum += it.Subtotal
	}
	require.Equal(t, sum, n.TotalAmount)
	require.Equal(t, 237500.0+8000.0, n.TotalAmount)

	// counter moves forward by exactly one per create
	n2, err := uc.Create(context.Background(), SaveInput{
		CustomerID: "c1",
		Items:      []ItemInput{{ProductID: "p-teh", Quantity: 1, Unit: "buah"}},
	})
	require.NoError(t, err)
	require.Equal(t, "RJA/APT/2504040160", n2.TransactionNumber)
}

func TestEdit_ReplacesEntireItemSet(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	n, err := uc.Create(context.Background(), SaveInput{
		CustomerID: "c1",
		Items: []ItemInput{
			{ProductID: "p-aqua", Quantity: 10, Unit: "box"},
			{ProductID: "p-teh", Quantity: 2, Unit: "buah"},
		},
	})
	require.NoError(t, err)

	edited, err := uc.Edit(context.Background(), n.ID, SaveInput{
		CustomerID: "c1",
		Items: []ItemInput{
			{ProductID: "p-teh", Quantity: 5, Unit: "buah"},
		},
	})
	require.NoError(t, err)

	// no leftovers from the previous set
	require.Len(t, edited.Items, 1)
	require.Equal(t, "Teh Botol (5 buah)", edited.Items[0].ProductName)
	require.Equal(t, 20000.0, edited.TotalAmount)
	require.Equal(t, n.TransactionNumber, edited.TransactionNumber)
}

func TestEdit_RejectedOnceCompleted(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	n, err := uc.Create(context.Background(), SaveInput{
		CustomerID: "c1",
		Items:      []ItemInput{{ProductID: "p-teh", Quantity: 1, Unit: "buah"}},
	})
	require.NoError(t, err)

	_, err = uc.Finalize(context.Background(), n.ID)
	require.NoError(t, err)

	_, err = uc.Edit(context.Background(), n.ID, SaveInput{
		CustomerID: "c1",
		Items:      []ItemInput{{ProductID: "p-teh", Quantity: 2, Unit: "buah"}},
	})
	require.ErrorIs(t, err, ErrNotEditable)
}

func TestFinalize_MovesForwardOnceOnly(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	n, err := uc.Create(context.Background(), SaveInput{
		CustomerID: "c1",
		Items:      []ItemInput{{ProductID: "p-teh", Quantity: 1, Unit: "buah"}},
	})
	require.NoError(t, err)
	createdAt := n.CreatedAt

	time.Sleep(5 * time.Millisecond)

	done, err := uc.Finalize(context.Background(), n.ID)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, done.Status)
	// the finalize timestamp replaces the original creation time
	require.True(t, done.CreatedAt.After(createdAt))

	_, err = uc.Finalize(context.Background(), n.ID)
	require.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestDelete_AllowedInAnyState(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	n, err := uc.Create(context.Background(), SaveInput{
		CustomerID: "c1",
		Items:      []ItemInput{{ProductID: "p-teh", Quantity: 1, Unit: "buah"}},
	})
	require.NoError(t, err)

	_, err = uc.Finalize(context.Background(), n.ID)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), n.ID))

	_, err = uc.GetByID(context.Background(), n.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCanTransition(t *testing.T) {
	require.True(t, CanTransition(StatusPending, StatusCompleted))
	require.False(t, CanTransition(StatusCompleted, StatusPending))
	require.False(t, CanTransition(StatusCompleted, StatusCompleted))
	require.False(t, CanTransition(StatusPending, StatusPending))
}
