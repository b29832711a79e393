package nota

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingCustomer  = errors.New("customer belum dipilih")
	ErrEmptyCart        = errors.New("keranjang masih kosong")
	ErrInvalidQuantity  = errors.New("jumlah produk tidak boleh kosong atau 0")
	ErrDuplicateProduct = errors.New("produk sudah ada di keranjang")
	ErrUnsupportedUnit  = errors.New("satuan tidak tersedia untuk produk ini")
	ErrProductMissing   = errors.New("produk tidak ditemukan")
	ErrSalesMissing     = errors.New("sales tidak ditemukan")
	ErrNotFound         = errors.New("nota tidak ditemukan")
	ErrNotEditable      = errors.New("nota sudah difinalisasi dan tidak bisa diubah")
	ErrAlreadyCompleted = errors.New("nota sudah difinalisasi")

	// Store-level failures, mapped from the database cause.
	ErrDuplicateNotaNumber = errors.New("nomor transaksi sudah digunakan")
	ErrReferentialConflict = errors.New("transaksi masih terkait dengan data lain")
)

// InvalidQuantityError lists every cart entry whose quantity is not a
// positive integer at save time. It unwraps to ErrInvalidQuantity.
type InvalidQuantityError struct {
	ProductNames []string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidQuantity, strings.Join(e.ProductNames, ", "))
}

func (e *InvalidQuantityError) Unwrap() error {
	return ErrInvalidQuantity
}
