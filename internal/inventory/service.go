package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Store abstracts catalog persistence for Catalog.
type Store interface {
	Load(ctx context.Context) ([]Product, []LineIssue, error)
	Save(ctx context.Context, products []Product) error
}

// Catalog owns the in-memory product list for one console session.
type Catalog struct {
	store    Store
	logger   *slog.Logger
	fold     cases.Caser
	products []Product
}

// NewCatalog builds Catalog.
func NewCatalog(store Store, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{store: store, logger: logger, fold: cases.Fold()}
}

// Load replaces the in-memory products with the stored catalog. Malformed
// lines are returned for reporting; a missing file yields ErrCatalogNotFound
// and an empty catalog.
func (c *Catalog) Load(ctx context.Context) ([]LineIssue, error) {
	products, issues, err := c.store.Load(ctx)
	c.products = products
	for _, issue := range issues {
		c.logger.Warn("skipped catalog line", slog.Int("line", issue.Line), slog.String("reason", string(issue.Reason)), slog.Any("error", issue.Err))
	}
	if err != nil {
		return issues, err
	}
	c.logger.Info("catalog loaded", slog.Int("products", len(c.products)), slog.Int("skipped", len(issues)))
	return issues, nil
}

// Products returns a copy of the catalog in file order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len reports the number of loaded products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// FindByName returns the first product whose name matches case-insensitively.
func (c *Catalog) FindByName(name string) (Product, bool) {
	idx := c.indexOf(name)
	if idx < 0 {
		return Product{}, false
	}
	return c.products[idx], true
}

// ApplySale deducts quantitySold plus the promotional free units from stock.
// Stock is left untouched when the deduction cannot be covered.
func (c *Catalog) ApplySale(name string, quantitySold int) (Product, error) {
	if quantitySold <= 0 {
		return Product{}, ErrInvalidQuantity
	}
	idx := c.indexOf(name)
	if idx < 0 {
		return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, name)
	}
	p := &c.products[idx]
	required := UnitsToDeduct(quantitySold)
	if p.Quantity < required {
		return *p, &InsufficientStockError{Product: p.Name, Available: p.Quantity, Required: required}
	}
	p.Quantity -= required
	c.logger.Debug("sale applied", slog.String("product", p.Name), slog.Int("sold", quantitySold), slog.Int("deducted", required), slog.Int("remaining", p.Quantity))
	return *p, nil
}

// ApplyRestock adds quantity to stock and replaces the cost price.
func (c *Catalog) ApplyRestock(name string, quantity int, costPrice decimal.Decimal) (Product, error) {
	if quantity <= 0 {
		return Product{}, ErrInvalidQuantity
	}
	if !costPrice.IsPositive() {
		return Product{}, ErrInvalidCostPrice
	}
	idx := c.indexOf(name)
	if idx < 0 {
		return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, name)
	}
	p := &c.products[idx]
	if p.Quantity > math.MaxInt-quantity {
		return *p, fmt.Errorf("%w: %s", ErrStockOverflow, p.Name)
	}
	p.Quantity += quantity
	p.CostPrice = costPrice
	c.logger.Debug("restock applied", slog.String("product", p.Name), slog.Int("added", quantity), slog.String("cost_price", costPrice.String()))
	return *p, nil
}

// Persist rewrites the whole catalog through the store.
func (c *Catalog) Persist(ctx context.Context) error {
	if c.store == nil {
		return errors.New("inventory: catalog store not configured")
	}
	if err := c.store.Save(ctx, c.Products()); err != nil {
		c.logger.Error("persist catalog", slog.Any("error", err))
		return err
	}
	c.logger.Info("catalog persisted", slog.Int("products", len(c.products)))
	return nil
}

func (c *Catalog) indexOf(name string) int {
	want := c.fold.String(strings.TrimSpace(name))
	for i := range c.products {
		if c.fold.String(c.products[i].Name) == want {
			return i
		}
	}
	return -1
}
