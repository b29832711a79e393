package postgres

import (
	"context"
	"time"

	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/pricing"
	notauc "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/nota"
	reportuc "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/report"
)

type ReportStoreAdapter struct {
	repo *ReportRepo
}

func NewReportStoreAdapter(repo *ReportRepo) *ReportStoreAdapter {
	return &ReportStoreAdapter{repo: repo}
}

// ListInRange stitches headers and their items back together for the
// in-memory aggregation pass. No status filter: pending drafts count
// toward the sales summary.
func (a *ReportStoreAdapter) ListInRange(ctx context.Context, start, end time.Time) ([]notauc.Nota, error) {
	headers, err := a.repo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	items, err := a.repo.ListItemsInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	byNota := make(map[string][]pricing.LineItem, len(headers))
	for _, it := range items {
		byNota[it.NotaID] = append(byNota[it.NotaID], pricing.LineItem{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			Subtotal:    it.Subtotal,
		})
	}

	out := make([]notauc.Nota, 0, len(headers))
	for _, h := range headers {
		out = append(out, notauc.Nota{
			ID:                h.ID,
			TransactionNumber: h.TransactionNumber,
			CustomerName:      h.CustomerName,
			TotalAmount:       h.TotalAmount,
			PaymentTermsDays:  h.PaymentTermsDays,
			Status:            h.Status,
			CreatedAt:         h.CreatedAt,
			Items:             byNota[h.ID],
		})
	}
	return out, nil
}

func (a *ReportStoreAdapter) ListCompletedInMonth(ctx context.Context, year int, month time.Month) ([]reportuc.RecapRow, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	headers, err := a.repo.ListCompletedInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]reportuc.RecapRow, 0, len(headers))
	for _, h := range headers {
		terms := ""
		if h.PaymentTermsDays != nil {
			terms = *h.PaymentTermsDays
		}
		out = append(out, reportuc.RecapRow{
			TransactionNumber: h.TransactionNumber,
			CustomerName:      h.CustomerName,
			TotalAmount:       h.TotalAmount,
			PaymentTermsDays:  terms,
			CreatedAt:         h.CreatedAt,
		})
	}
	return out, nil
}

var _ reportuc.Store = (*ReportStoreAdapter)(nil)
