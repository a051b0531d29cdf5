// Package invoice renders completed sale and restock transactions into
// fixed-width text files, one file per invoice.
package invoice

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Kind discriminates invoice layouts and file names.
type Kind string

const (
	// KindSale is issued to a customer after a sell session.
	KindSale Kind = "sale"
	// KindRestock is issued for a vendor delivery.
	KindRestock Kind = "restock"
)

// Invoice is implemented by Sale and Restock.
type Invoice interface {
	Kind() Kind
	Issued() time.Time
}

// Line is one purchased product on a sale invoice.
type Line struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Sale is a customer invoice. Lines may be empty.
type Sale struct {
	Reference  string
	Customer   string
	IssuedAt   time.Time
	Lines      []Line
	Subtotal   decimal.Decimal
	VAT        decimal.Decimal
	VATPercent int
	Total      decimal.Decimal
}

// Kind implements Invoice.
func (Sale) Kind() Kind { return KindSale }

// Issued implements Invoice.
func (s Sale) Issued() time.Time { return s.IssuedAt }

// Restock is a vendor invoice for a single product delivery.
type Restock struct {
	Reference string
	Vendor    string
	Product   string
	IssuedAt  time.Time
	Quantity  int
	CostPrice decimal.Decimal
	Total     decimal.Decimal
}

// Kind implements Invoice.
func (Restock) Kind() Kind { return KindRestock }

// Issued implements Invoice.
func (r Restock) Issued() time.Time { return r.IssuedAt }

// NewRestock builds a restock invoice with Total = quantity × cost price.
func NewRestock(ref, vendor, product string, quantity int, cost decimal.Decimal, at time.Time) Restock {
	return Restock{
		Reference: ref,
		Vendor:    vendor,
		Product:   product,
		IssuedAt:  at,
		Quantity:  quantity,
		CostPrice: cost,
		Total:     cost.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// ErrWriteFailed wraps any I/O failure while saving an invoice.
var ErrWriteFailed = errors.New("invoice: write failed")

// ErrUnknownKind is returned for Invoice implementations the writer cannot render.
var ErrUnknownKind = errors.New("invoice: unknown kind")
