package cli

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Sadikshya-Karki/Beauty-and-Skin-Care-Software/internal/inventory"
	"github.com/Sadikshya-Karki/Beauty-and-Skin-Care-Software/internal/invoice"
)

// restock receives one delivery from a vendor. Any invalid answer aborts back
// to the menu without touching the catalog.
func (s *Session) restock(ctx context.Context) {
	s.display()
	vendor, ok := s.prompt("Enter vendor name: ")
	if !ok {
		return
	}
	name, ok := s.prompt("Enter product name: ")
	if !ok {
		return
	}
	name = strings.TrimSpace(name)
	if _, found := s.catalog.FindByName(name); !found {
		s.println("Product not found.")
		return
	}

	raw, ok := s.prompt("Enter quantity to restock for " + name + ": ")
	if !ok {
		return
	}
	qty, msg := s.parseQuantity(raw)
	if msg != "" {
		s.println(msg)
		return
	}

	raw, ok = s.prompt("Enter new cost price for " + name + ": ")
	if !ok {
		return
	}
	cost, msg := s.parseCostPrice(raw)
	if msg != "" {
		s.println(msg)
		return
	}

	product, err := s.catalog.ApplyRestock(name, qty, cost)
	if err != nil {
		if errors.Is(err, inventory.ErrProductNotFound) {
			s.println("Product not found.")
		} else {
			s.printf("Error: %v\n", err)
		}
		return
	}
	s.printf("Restocked %d %s(s). New quantity: %d\n", qty, name, product.Quantity)

	inv := invoice.NewRestock(s.newRef(), strings.TrimSpace(vendor), name, qty, cost, s.now())
	s.logger.Info("restock completed",
		slog.String("reference", inv.Reference),
		slog.String("product", product.Name),
		slog.Int("quantity", qty),
	)
	s.writeInvoice(inv)
	s.persist(ctx)
}
