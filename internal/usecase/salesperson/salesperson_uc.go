package salesperson

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("sales tidak ditemukan")
)

type Salesperson struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Store interface {
	Create(ctx context.Context, name, phone string) (*Salesperson, error)
	GetByID(ctx context.Context, id string) (*Salesperson, error)
	List(ctx context.Context, limit, offset int) ([]Salesperson, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) Create(ctx context.Context, name, phone string) (*Salesperson, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	return u.store.Create(ctx, name, strings.TrimSpace(phone))
}

func (u *Usecase) GetByID(ctx context.Context, id string) (*Salesperson, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidInput
	}
	return u.store.GetByID(ctx, id)
}

func (u *Usecase) List(ctx context.Context, limit, offset int) ([]Salesperson, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return u.store.List(ctx, limit, offset)
}
