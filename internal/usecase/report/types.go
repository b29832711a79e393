package report

import "time"

type Summary struct {
	TotalRevenue       float64        `json:"totalRevenue"`
	TotalTransactions  int            `json:"totalTransactions"`
	AverageTransaction float64        `json:"averageTransaction"`
	DailyRevenue       []DailyRevenue `json:"dailyRevenue"`
	TopProducts        []ProductSales `json:"topProducts"`
}

type DailyRevenue struct {
	Date   string  `json:"date"` // YYYY-MM-DD, local time
	Amount float64 `json:"amount"`
}

type ProductSales struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// RecapRow is one completed nota in the monthly recap listing.
type RecapRow struct {
	TransactionNumber string    `json:"transaction_number"`
	CustomerName      string    `json:"customer_name"`
	TotalAmount       float64   `json:"total_amount"`
	PaymentTermsDays  string    `json:"payment_terms_days"`
	CreatedAt         time.Time `json:"created_at"`
	PaymentTermLabel  string    `json:"payment_term_label"`
}
