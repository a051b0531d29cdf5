package sales

import (
	"github.com/shopspring/decimal"

	"github.com/Sadikshya-Karki/Beauty-and-Skin-Care-Software/internal/inventory"
	"github.com/Sadikshya-Karki/Beauty-and-Skin-Care-Software/internal/invoice"
)

// Totals summarises a sale. Total is VAT inclusive.
type Totals struct {
	Subtotal decimal.Decimal
	VAT      decimal.Decimal
	Total    decimal.Decimal
}

// NewLine prices quantity units of product at the VAT-inclusive selling price.
func NewLine(product inventory.Product, quantity int) invoice.Line {
	unit := inventory.SellingPrice(product.CostPrice, true)
	return invoice.Line{
		Name:      product.Name,
		Quantity:  quantity,
		UnitPrice: unit,
		Total:     unit.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// Summarize sums line totals and splits out VAT.
func Summarize(lines []invoice.Line) Totals {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Total)
	}
	return SplitVAT(total)
}

// SplitVAT derives subtotal = total / (1 + VAT rate) and VAT = total - subtotal
// from a VAT-inclusive total. All three figures are rounded to two decimals.
func SplitVAT(total decimal.Decimal) Totals {
	subtotal := total.Div(inventory.VATFactor())
	vat := total.Sub(subtotal)
	return Totals{
		Subtotal: subtotal.Round(2),
		VAT:      vat.Round(2),
		Total:    total.Round(2),
	}
}

// VATPercent returns the VAT rate as a whole percentage for invoice labels.
func VATPercent() int {
	return int(inventory.VATRate.Shift(2).IntPart())
}
