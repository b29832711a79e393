package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/pricing"
	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/nota"
)

func day(d int, hour int) time.Time {
	return time.Date(2025, time.March, d, hour, 0, 0, 0, time.Local)
}

func notaOn(ts time.Time, total float64, items ...pricing.LineItem) nota.Nota {
	return nota.Nota{
		TotalAmount: total,
		CreatedAt:   ts,
		Items:       items,
		Status:      nota.StatusCompleted,
	}
}

func li(name string, qty int, unit string, subtotal float64) pricing.LineItem {
	return pricing.LineItem{
		ProductName: pricing.EncodeItemLabel(name, qty, unit),
		Quantity:    qty,
		Unit:        unit,
		Subtotal:    subtotal,
	}
}

func TestSummarize_EmptyRangeHasZeroAverage(t *testing.T) {
	s := Summarize(nil, 0)

	require.Zero(t, s.TotalRevenue)
	require.Zero(t, s.TotalTransactions)
	require.Zero(t, s.AverageTransaction)
	require.Empty(t, s.DailyRevenue)
	require.Empty(t, s.TopProducts)
}

func TestSummarize_TotalsAndDailyGrouping(t *testing.T) {
	txs := []nota.Nota{
		notaOn(day(3, 10), 150000),
		notaOn(day(1, 9), 100000),
		notaOn(day(3, 15), 50000),
	}

	s := Summarize(txs, 0)

	require.Equal(t, 300000.0, s.TotalRevenue)
	require.Equal(t, 3, s.TotalTransactions)
	require.Equal(t, 100000.0, s.AverageTransaction)

	// grouped per calendar date, ascending
	require.Equal(t, []DailyRevenue{
		{Date: "2025-03-01", Amount: 100000},
		{Date: "2025-03-03", Amount: 200000},
	}, s.DailyRevenue)
}

func TestSummarize_MonthFilter(t *testing.T) {
	txs := []nota.Nota{
		notaOn(time.Date(2025, time.February, 10, 8, 0, 0, 0, time.Local), 75000),
		notaOn(day(2, 8), 100000),
	}

	s := Summarize(txs, time.March)
	require.Equal(t, 100000.0, s.TotalRevenue)
	require.Equal(t, 1, s.TotalTransactions)

	all := Summarize(txs, 0)
	require.Equal(t, 175000.0, all.TotalRevenue)
}

func TestSummarize_TopProductsByRevenue(t *testing.T) {
	txs := []nota.Nota{
		notaOn(day(1, 9), 0,
			li("Aqua Gelas", 10, "box", 237500),
			li("Teh Botol", 2, "buah", 8000),
		),
		notaOn(day(2, 9), 0,
			li("Aqua Gelas", 10, "box", 237500), // same label+unit: merged
			li("Teh Botol", 3, "buah", 12000),   // different label (qty differs): own group
		),
	}

	s := Summarize(txs, 0)

	require.Equal(t, "Aqua Gelas", s.TopProducts[0].Name)
	require.Equal(t, "box", s.TopProducts[0].Unit)
	require.Equal(t, 20, s.TopProducts[0].Quantity)
	require.Equal(t, 475000.0, s.TopProducts[0].Revenue)

	// grouping key is the persisted (product_name, unit) pair, so the
	// two Teh Botol labels stay separate rows
	require.Len(t, s.TopProducts, 3)
	require.Equal(t, 12000.0, s.TopProducts[1].Revenue)
	require.Equal(t, 8000.0, s.TopProducts[2].Revenue)
}

func TestSummarize_TopProductsCappedAtFive(t *testing.T) {
	var items []pricing.LineItem
	for i := 1; i <= 8; i++ {
		items = append(items, li("Produk", i, "buah", float64(i)*1000))
	}
	s := Summarize([]nota.Nota{notaOn(day(1, 9), 0, items...)}, 0)

	require.Len(t, s.TopProducts, 5)
	require.Equal(t, 8000.0, s.TopProducts[0].Revenue)
	require.Equal(t, 4000.0, s.TopProducts[4].Revenue)
}

func TestPaymentTermLabel(t *testing.T) {
	created := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.Local)

	require.Equal(t, "Cash", PaymentTermLabel("cash", created))
	require.Equal(t, "Cash", PaymentTermLabel("CASH keras", created))
	require.Equal(t, "30 hari (9 Feb 2025)", PaymentTermLabel("30 hari", created))
	require.Equal(t, "14 hari (24 Jan 2025)", PaymentTermLabel("14", created))
	require.Equal(t, "-", PaymentTermLabel("", created))
	require.Equal(t, "-", PaymentTermLabel("tempo", created))
}

type fakeReportStore struct {
	rows []RecapRow
}

func (f *fakeReportStore) ListInRange(_ context.Context, _, _ time.Time) ([]nota.Nota, error) {
	return nil, nil
}

func (f *fakeReportStore) ListCompletedInMonth(_ context.Context, _ int, _ time.Month) ([]RecapRow, error) {
	return f.rows, nil
}

func TestRecap_SortsAndDerivesLabels(t *testing.T) {
	store := &fakeReportStore{rows: []RecapRow{
		{TransactionNumber: "RJA/APT/2504040161", PaymentTermsDays: "cash", CreatedAt: day(20, 9)},
		{TransactionNumber: "RJA/APT/2504040160", PaymentTermsDays: "7 hari", CreatedAt: day(5, 9)},
	}}
	uc := New(store)

	rows, err := uc.Recap(context.Background(), 2025, time.March)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "RJA/APT/2504040160", rows[0].TransactionNumber)
	require.Equal(t, "7 hari (12 Mar 2025)", rows[0].PaymentTermLabel)
	require.Equal(t, "Cash", rows[1].PaymentTermLabel)
}

func TestRecap_RejectsBadMonth(t *testing.T) {
	uc := New(&fakeReportStore{})

	_, err := uc.Recap(context.Background(), 2025, time.Month(13))
	require.ErrorIs(t, err, ErrInvalidInput)
}
