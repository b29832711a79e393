package postgres

import (
	"context"

	authuc "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/auth"
)

type AdminFinderAdapter struct {
	repo *AdminRepo
}

func NewAdminFinderAdapter(repo *AdminRepo) *AdminFinderAdapter {
	return &AdminFinderAdapter{repo: repo}
}

func (a *AdminFinderAdapter) FindByEmail(ctx context.Context, email string) (*authuc.Admin, error) {
	r, err := a.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &authuc.Admin{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		IsActive:     r.IsActive,
	}, nil
}

var _ authuc.AdminFinder = (*AdminFinderAdapter)(nil)
