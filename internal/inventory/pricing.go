package inventory

import (
	"math"

	"github.com/shopspring/decimal"
)

// PromoEvery is the number of paid units that earn one free unit.
const PromoEvery = 3

var (
	// Markup multiplies cost price into the pre-VAT selling price (200%).
	Markup = decimal.NewFromInt(2)
	// VATRate is the value-added tax applied on top of the marked-up price.
	VATRate = decimal.RequireFromString("0.13")

	vatFactor = decimal.NewFromInt(1).Add(VATRate)
)

// SellingPrice returns cost × Markup, multiplied by (1 + VATRate) when applyVAT is set.
func SellingPrice(cost decimal.Decimal, applyVAT bool) decimal.Decimal {
	price := cost.Mul(Markup)
	if applyVAT {
		return price.Mul(vatFactor)
	}
	return price
}

// VATFactor returns 1 + VATRate.
func VATFactor() decimal.Decimal {
	return vatFactor
}

// UnitsToDeduct returns the stock consumed by selling quantitySold units under
// the buy-three-get-one-free promotion. The result saturates at math.MaxInt.
func UnitsToDeduct(quantitySold int) int {
	free := quantitySold / PromoEvery
	if quantitySold > math.MaxInt-free {
		return math.MaxInt
	}
	return quantitySold + free
}
