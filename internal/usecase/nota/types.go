package nota

import (
	"time"

	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/pricing"
)

const (
	StatusPending   = "pending"   // draft: editable, deletable
	StatusCompleted = "completed" // final: read-only except delete
)

// DefaultCounterSeed is the transaction counter value assumed when the
// settings row has never been written.
const DefaultCounterSeed = "2504040159"

// Nota is a sales invoice header plus its line items.
type Nota struct {
	ID                string             `json:"id"`
	TransactionNumber string             `json:"transaction_number"`
	CustomerName      string             `json:"customer_name"`
	CustomerAddress   string             `json:"customer_address"`
	SalesID           *string            `json:"sales_id,omitempty"`
	SalesName         *string            `json:"sales_name,omitempty"`
	TotalAmount       float64            `json:"total_amount"`
	Notes             string             `json:"notes"`
	PaymentTermsDays  *string            `json:"payment_terms_days,omitempty"`
	Status            string             `json:"status"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	Items             []pricing.LineItem `json:"items,omitempty"`
}

// Draft is a fully computed nota ready for persistence. TotalAmount is
// always derived from Items; the store never accepts a client total.
type Draft struct {
	CustomerName     string
	CustomerAddress  string
	SalesID          *string
	SalesName        *string
	Notes            string
	PaymentTermsDays *string
	TotalAmount      float64
	Items            []pricing.LineItem
}

// CustomerRef is the denormalized customer slice a nota records.
type CustomerRef struct {
	ID      string
	Name    string
	Address string
}

// SalesRef is the denormalized salesperson slice a nota records.
type SalesRef struct {
	ID   string
	Name string
}

type ItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
}

type SaveInput struct {
	CustomerID       string      `json:"customerId"`
	SalesID          string      `json:"salesId"`
	Notes            string      `json:"notes"`
	PaymentTermsDays string      `json:"paymentTermsDays"`
	Items            []ItemInput `json:"items"`
}

type ListInput struct {
	Status string // "", pending, completed
	Search string // matches transaction number or customer name
	Since  *time.Time
	Limit  int
	Offset int
}

// FormatNumber renders a transaction number from the organizational
// prefix and the current counter value.
func FormatNumber(prefix, counter string) string {
	return prefix + "/" + counter
}

// CanTransition reports whether a status change is legal. The only
// forward edge is pending -> completed; nothing leaves completed.
func CanTransition(from, to string) bool {
	return from == StatusPending && to == StatusCompleted
}
