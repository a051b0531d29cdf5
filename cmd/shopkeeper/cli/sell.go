package cli

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Sadikshya-Karki/Beauty-and-Skin-Care-Software/internal/inventory"
	"github.com/Sadikshya-Karki/Beauty-and-Skin-Care-Software/internal/sales"
)

// sell runs one customer purchase. Stock is deducted as each line is
// accepted; the catalog file is rewritten only when at least one line was
// recorded.
func (s *Session) sell(ctx context.Context) {
	s.display()
	customer, ok := s.prompt("Enter customer name: ")
	if !ok {
		return
	}
	order := sales.NewSession(strings.TrimSpace(customer))

	for {
		name, ok := s.prompt("Enter product name (or 'no' to finish): ")
		if !ok {
			break
		}
		name = strings.TrimSpace(name)
		if strings.EqualFold(name, "no") {
			break
		}
		if _, found := s.catalog.FindByName(name); !found {
			s.println("Product not found.")
			continue
		}

		raw, ok := s.prompt("Enter quantity of " + name + " to buy: ")
		if !ok {
			break
		}
		qty, msg := s.parseQuantity(raw)
		if msg != "" {
			s.println(msg)
			continue
		}

		product, err := s.catalog.ApplySale(name, qty)
		if err != nil {
			s.reportSaleError(name, err)
			continue
		}
		order.Record(sales.NewLine(product, qty))
		s.printf("Added %d %s(s) to the purchase.\n", qty, name)
	}

	sale := order.Invoice(s.newRef(), s.now())
	s.logger.Info("sale completed",
		slog.String("reference", sale.Reference),
		slog.Int("lines", len(sale.Lines)),
		slog.String("total", sale.Total.StringFixed(2)),
	)
	s.writeInvoice(sale)
	if !order.Empty() {
		s.persist(ctx)
	}
}

func (s *Session) reportSaleError(name string, err error) {
	var short *inventory.InsufficientStockError
	switch {
	case errors.As(err, &short):
		s.printf("Not enough quantity for %s. Available: %d\n", name, short.Available)
		s.println("Failed to add to purchase due to quantity issues.")
	case errors.Is(err, inventory.ErrProductNotFound):
		s.println("Product not found.")
	default:
		s.printf("Error: %v\n", err)
	}
}
