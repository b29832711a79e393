package report

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/pricing"
	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/nota"
)

var ErrInvalidInput = errors.New("invalid input")

type Store interface {
	// ListInRange returns notas with items created in [start, end).
	ListInRange(ctx context.Context, start, end time.Time) ([]nota.Nota, error)
	// ListCompletedInMonth returns completed notas for the given month,
	// ordered by created_at ascending.
	ListCompletedInMonth(ctx context.Context, year int, month time.Month) ([]RecapRow, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

// SalesReport fetches the range and replays it into a Summary. month
// 0 means no month filter.
func (u *Usecase) SalesReport(ctx context.Context, start, end time.Time, month time.Month) (*Summary, error) {
	if end.Before(start) {
		return nil, ErrInvalidInput
	}
	txs, err := u.store.ListInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	s := Summarize(txs, month)
	return &s, nil
}

// Recap lists the completed notas of one month with derived payment
// term labels, ready for display or spreadsheet export.
func (u *Usecase) Recap(ctx context.Context, year int, month time.Month) ([]RecapRow, error) {
	if year < 2000 || month < time.January || month > time.December {
		return nil, ErrInvalidInput
	}
	rows, err := u.store.ListCompletedInMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })
	for i := range rows {
		rows[i].PaymentTermLabel = PaymentTermLabel(rows[i].PaymentTermsDays, rows[i].CreatedAt)
	}
	return rows, nil
}

// Summarize replays persisted notas into revenue statistics. Pure.
func Summarize(txs []nota.Nota, month time.Month) Summary {
	if month != 0 {
		filtered := txs[:0:0]
		for _, t := range txs {
			if t.CreatedAt.Month() == month {
				filtered = append(filtered, t)
			}
		}
		txs = filtered
	}

	var s Summary
	s.TotalTransactions = len(txs)
	for _, t := range txs {
		s.TotalRevenue += t.TotalAmount
	}
	if s.TotalTransactions > 0 {
		s.AverageTransaction = s.TotalRevenue / float64(s.TotalTransactions)
	}

	daily := map[string]float64{}
	for _, t := range txs {
		daily[t.CreatedAt.Format("2006-01-02")] += t.TotalAmount
	}
	s.DailyRevenue = make([]DailyRevenue, 0, len(daily))
	for date, amount := range daily {
		s.DailyRevenue = append(s.DailyRevenue, DailyRevenue{Date: date, Amount: amount})
	}
	sort.Slice(s.DailyRevenue, func(i, j int) bool {
		return s.DailyRevenue[i].Date < s.DailyRevenue[j].Date
	})

	s.TopProducts = topProducts(txs, 5)
	return s
}

// topProducts groups line items by their persisted (product_name,
// unit) pair and ranks by summed subtotal. The display name is the
// bare product name re-derived from the encoded label.
func topProducts(txs []nota.Nota, limit int) []ProductSales {
	type key struct{ name, unit string }
	grouped := map[key]*ProductSales{}
	order := []key{}

	for _, t := range txs {
		for _, it := range t.Items {
			k := key{it.ProductName, it.Unit}
			g, ok := grouped[k]
			if !ok {
				name, _, _, _ := pricing.ParseItemLabel(it.ProductName)
				g = &ProductSales{Name: name, Unit: it.Unit}
				grouped[k] = g
				order = append(order, k)
			}
			g.Quantity += it.Quantity
			g.Revenue += it.Subtotal
		}
	}

	out := make([]ProductSales, 0, len(order))
	for _, k := range order {
		out = append(out, *grouped[k])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

var (
	cashTerm = regexp.MustCompile(`(?i)cash`)
	daysTerm = regexp.MustCompile(`(\d+)`)
)

// PaymentTermLabel derives the recap label from a free-form payment
// term: "Cash" for cash terms, "<n> hari (<due date>)" when the term
// names a day count, "-" otherwise.
func PaymentTermLabel(terms string, createdAt time.Time) string {
	if terms == "" {
		return "-"
	}
	if cashTerm.MatchString(terms) {
		return "Cash"
	}
	m := daysTerm.FindStringSubmatch(terms)
	if m == nil {
		return "-"
	}
	days, err := strconv.Atoi(m[1])
	if err != nil {
		return "-"
	}
	due := createdAt.AddDate(0, 0, days)
	return strconv.Itoa(days) + " hari (" + FormatDateID(due) + ")"
}

var monthShortID = []string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// MonthNameID returns the full Indonesian month name.
func MonthNameID(m time.Month) string {
	names := []string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
	return names[m-1]
}

// FormatDateID renders a date as "2 Jan 2006" with Indonesian month
// abbreviations.
func FormatDateID(t time.Time) string {
	return strconv.Itoa(t.Day()) + " " + monthShortID[t.Month()-1] + " " + strconv.Itoa(t.Year())
}
