package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	customeruc "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/customer"
)

type CustomerStoreAdapter struct {
	repo *CustomerRepo
}

func NewCustomerStoreAdapter(repo *CustomerRepo) *CustomerStoreAdapter {
	return &CustomerStoreAdapter{repo: repo}
}

func (a *CustomerStoreAdapter) Create(ctx context.Context, in customeruc.CreateInput) (*customeruc.Customer, error) {
	terms, err := encodeTerms(in.PaymentTerms)
	if err != nil {
		return nil, err
	}
	row, err := a.repo.Create(ctx, in.Name, in.Address, terms)
	if err != nil {
		return nil, err
	}
	return mapCustomerRow(row)
}

func (a *CustomerStoreAdapter) GetByID(ctx context.Context, id string) (*customeruc.Customer, error) {
	row, err := a.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customeruc.ErrNotFound
		}
		return nil, err
	}
	return mapCustomerRow(row)
}

func (a *CustomerStoreAdapter) List(ctx context.Context, limit, offset int) ([]customeruc.Customer, error) {
	rows, err := a.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]customeruc.Customer, 0, len(rows))
	for i := range rows {
		c, err := mapCustomerRow(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

func (a *CustomerStoreAdapter) Update(ctx context.Context, id string, in customeruc.UpdateInput) (*customeruc.Customer, error) {
	var terms []byte
	if in.PaymentTerms != nil {
		var err error
		terms, err = encodeTerms(*in.PaymentTerms)
		if err != nil {
			return nil, err
		}
	}
	row, err := a.repo.Update(ctx, id, in.Name, in.Address, terms)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customeruc.ErrNotFound
		}
		return nil, err
	}
	return mapCustomerRow(row)
}

func encodeTerms(terms []string) ([]byte, error) {
	if terms == nil {
		terms = []string{}
	}
	return json.Marshal(terms)
}

func mapCustomerRow(r *CustomerRow) (*customeruc.Customer, error) {
	var terms []string
	if len(r.PaymentTerms) > 0 {
		if err := json.Unmarshal(r.PaymentTerms, &terms); err != nil {
			return nil, fmt.Errorf("customer %s: bad payment_terms: %w", r.ID, err)
		}
	}
	return &customeruc.Customer{
		ID:           r.ID,
		Name:         r.Name,
		Address:      r.Address,
		PaymentTerms: terms,
	}, nil
}

var _ customeruc.Store = (*CustomerStoreAdapter)(nil)
