package inventory

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is a single catalog row. Name is the case-insensitive key.
type Product struct {
	Name      string
	Brand     string
	Country   string
	Quantity  int
	CostPrice decimal.Decimal
}

// IssueReason classifies why a catalog line was skipped.
type IssueReason string

const (
	// IssueFieldCount marks a line that does not split into exactly five fields.
	IssueFieldCount IssueReason = "field_count"
	// IssueBadNumber marks a line whose quantity or cost price does not parse.
	IssueBadNumber IssueReason = "bad_number"
)

// LineIssue describes a malformed catalog line skipped during load.
type LineIssue struct {
	Line   int
	Raw    string
	Reason IssueReason
	Err    error
}

func (i LineIssue) String() string {
	if i.Err != nil {
		return fmt.Sprintf("line %d (%s): %v", i.Line, i.Reason, i.Err)
	}
	return fmt.Sprintf("line %d (%s)", i.Line, i.Reason)
}

// ErrCatalogNotFound indicates the catalog file does not exist.
var ErrCatalogNotFound = errors.New("inventory: catalog file not found")

// ErrProductNotFound indicates no product matched the requested name.
var ErrProductNotFound = errors.New("inventory: product not found")

// ErrInvalidQuantity indicates a non-positive sale or restock quantity.
var ErrInvalidQuantity = errors.New("inventory: quantity must be positive")

// ErrInvalidCostPrice indicates a non-positive restock cost price.
var ErrInvalidCostPrice = errors.New("inventory: cost price must be positive")

// ErrStockOverflow indicates a restock that would exceed the representable quantity.
var ErrStockOverflow = errors.New("inventory: stock quantity overflow")

// ErrInsufficientStock matches any *InsufficientStockError via errors.Is.
var ErrInsufficientStock = errors.New("inventory: insufficient stock")

// InsufficientStockError reports a sale rejected because the promotional
// deduction exceeds the available quantity.
type InsufficientStockError struct {
	Product   string
	Available int
	Required  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("inventory: not enough quantity for %s (available %d, required %d)", e.Product, e.Available, e.Required)
}

// Is lets errors.Is(err, ErrInsufficientStock) succeed.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
