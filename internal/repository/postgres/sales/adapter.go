package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/salesperson"
)

type SalesStoreAdapter struct {
	repo *SalesRepo
}

func NewSalesStoreAdapter(repo *SalesRepo) *SalesStoreAdapter {
	return &SalesStoreAdapter{repo: repo}
}

func (a *SalesStoreAdapter) Create(ctx context.Context, name, phone string) (*salesperson.Salesperson, error) {
	row, err := a.repo.Create(ctx, name, phone)
	if err != nil {
		return nil, err
	}
	return mapSalesRow(row), nil
}

func (a *SalesStoreAdapter) GetByID(ctx context.Context, id string) (*salesperson.Salesperson, error) {
	row, err := a.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, salesperson.ErrNotFound
		}
		return nil, err
	}
	return mapSalesRow(row), nil
}

func (a *SalesStoreAdapter) List(ctx context.Context, limit, offset int) ([]salesperson.Salesperson, error) {
	rows, err := a.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]salesperson.Salesperson, 0, len(rows))
	for i := range rows {
		out = append(out, *mapSalesRow(&rows[i]))
	}
	return out, nil
}

func mapSalesRow(r *SalesRow) *salesperson.Salesperson {
	return &salesperson.Salesperson{ID: r.ID, Name: r.Name, Phone: r.Phone}
}

var _ salesperson.Store = (*SalesStoreAdapter)(nil)
