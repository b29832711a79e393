package testutil

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func MustInsertCustomer(t *testing.T, db *pgxpool.Pool, name, address string, paymentTerms string) string {
	t.Helper()

	if paymentTerms == "" {
		paymentTerms = `[]`
	}

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO customers (name, address, payment_terms)
		VALUES ($1, $2, $3::jsonb)
		RETURNING id::text
	`, name, address, paymentTerms).Scan(&id)

	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func MustInsertSales(t *testing.T, db *pgxpool.Pool, name, phone string) string {
	t.Helper()

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO sales (name, phone)
		VALUES ($1, $2)
		RETURNING id::text
	`, name, phone).Scan(&id)

	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

// MustInsertProduct seeds a product with optional tier and stock JSON.
// Pass "" to leave the default empty arrays.
func MustInsertProduct(t *testing.T, db *pgxpool.Pool, name, sku string, price, basePrice float64, discountTiers, stockEntries string) string {
	t.Helper()

	if discountTiers == "" {
		discountTiers = `[]`
	}
	if stockEntries == "" {
		stockEntries = `[]`
	}

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO products (name, category, sku, price, base_price, discount_tiers, stock_entries)
		VALUES ($1, 'Minuman', $2, $3, $4, $5::jsonb, $6::jsonb)
		RETURNING id::text
	`, name, sku, price, basePrice, discountTiers, stockEntries).Scan(&id)

	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}
