package cli

import (
	"strings"

	"github.com/Sadikshya-Karki/Beauty-and-Skin-Care-Software/internal/inventory"
)

const tableWidth = 116

func (s *Session) display() {
	rule := strings.Repeat("-", tableWidth)
	s.println("\nAvailable Products:")
	s.println(rule)
	s.printf("| %-5s | %-30s | %-20s | %-20s | %-10s | %-12s |\n",
		"S.N.", "Product Name", "Brand", "Country", "Quantity", "Price (NPR)")
	s.println(rule)
	for i, p := range s.catalog.Products() {
		price := inventory.SellingPrice(p.CostPrice, true).StringFixed(2)
		s.printf("| %-5d | %-30s | %-20s | %-20s | %-10d | %12s |\n",
			i+1, p.Name, p.Brand, p.Country, p.Quantity, price)
	}
	s.println(rule)
}
