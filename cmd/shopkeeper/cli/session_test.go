package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Sadikshya-Karki/Beauty-and-Skin-Care-Software/internal/inventory"
	"github.com/Sadikshya-Karki/Beauty-and-Skin-Care-Software/internal/invoice"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)

type harness struct {
	dir         string
	catalogPath string
	stdout      *bytes.Buffer
}

func newHarness(t *testing.T, catalog string) *harness {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "products.txt")
	if catalog != "" {
		require.NoError(t, os.WriteFile(path, []byte(catalog), 0o644))
	}
	return &harness{dir: dir, catalogPath: path, stdout: new(bytes.Buffer)}
}

func (h *harness) run(t *testing.T, input string) int {
	t.Helper()
	return h.runWithInvoices(t, input, h.dir)
}

func (h *harness) runWithInvoices(t *testing.T, input, invoiceDir string) int {
	t.Helper()
	session := NewSession(Options{
		Catalog:     inventory.NewCatalog(inventory.NewFileStore(h.catalogPath), nil),
		CatalogPath: h.catalogPath,
		Invoices:    invoice.NewWriter(invoiceDir, nil),
		Stdin:       strings.NewReader(input),
		Stdout:      h.stdout,
		Now:         func() time.Time { return fixedNow },
		NewRef:      func() string { return "ref-1" },
	})
	return session.Run(context.Background())
}

func (h *harness) catalog(t *testing.T) string {
	t.Helper()
	raw, err := os.ReadFile(h.catalogPath)
	require.NoError(t, err)
	return string(raw)
}

func (h *harness) invoice(t *testing.T, kind invoice.Kind) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(h.dir, invoice.FileName(kind, fixedNow)))
	require.NoError(t, err)
	return string(raw)
}

const serumCatalog = "Serum, Garnier, 10, 200.0, France\n"

func TestSellDeductsPromotionalUnits(t *testing.T) {
	h := newHarness(t, serumCatalog)

	code := h.run(t, "2\nAsha\nSerum\n3\nno\n4\n")

	require.Equal(t, 0, code)
	out := h.stdout.String()
	require.Contains(t, out, "Added 3 Serum(s) to the purchase.")
	require.Contains(t, out, "Invoice saved to "+filepath.Join(h.dir, "invoice_sale_20260314_092653.txt"))
	require.Contains(t, out, "Product data updated in "+h.catalogPath)
	require.Contains(t, out, "Goodbye")
	require.Equal(t, "Serum,Garnier,6,200.0,France\n", h.catalog(t))

	inv := h.invoice(t, invoice.KindSale)
	require.Contains(t, inv, "Customer Name : Asha")
	require.Contains(t, inv, "Total Amount: NPR 1356.00")
}

func TestSellWithoutLinesKeepsCatalogFile(t *testing.T) {
	h := newHarness(t, serumCatalog)

	require.Equal(t, 0, h.run(t, "2\nAsha\nno\n4\n"))

	require.Equal(t, serumCatalog, h.catalog(t))
	require.NotContains(t, h.stdout.String(), "Product data updated")
	require.Contains(t, h.invoice(t, invoice.KindSale), "No products were bought.")
}

func TestSellInsufficientStock(t *testing.T) {
	h := newHarness(t, serumCatalog)

	require.Equal(t, 0, h.run(t, "2\nAsha\nSerum\n9\nno\n4\n"))

	out := h.stdout.String()
	require.Contains(t, out, "Not enough quantity for Serum. Available: 10\n")
	require.Contains(t, out, "Failed to add to purchase due to quantity issues.")
	require.Equal(t, serumCatalog, h.catalog(t))
}

func TestSellRepeatedProductOverwritesLine(t *testing.T) {
	h := newHarness(t, serumCatalog)

	require.Equal(t, 0, h.run(t, "2\nAsha\nSerum\n2\nserum\n1\nno\n4\n"))

	// Both sales hit stock and are billed, only the last line is listed.
	require.Equal(t, "Serum,Garnier,7,200.0,France\n", h.catalog(t))
	require.Contains(t, h.stdout.String(), "Added 1 serum(s) to the purchase.")
	inv := h.invoice(t, invoice.KindSale)
	require.Contains(t, inv, "1     Serum                     1          452.00                    452.00")
	require.Contains(t, inv, "Subtotal: NPR 1200.00")
	require.Contains(t, inv, "VAT (13%): NPR 156.00")
	require.Contains(t, inv, "Total Amount: NPR 1356.00")
}

func TestSellHugeQuantityIsRejected(t *testing.T) {
	h := newHarness(t, serumCatalog)

	require.Equal(t, 0, h.run(t, "2\nAsha\nSerum\n7000000000000000000\nno\n4\n"))

	out := h.stdout.String()
	require.Contains(t, out, "Not enough quantity for Serum. Available: 10\n")
	require.Contains(t, out, "Failed to add to purchase due to quantity issues.")
	require.Equal(t, serumCatalog, h.catalog(t))
	require.Contains(t, h.invoice(t, invoice.KindSale), "No products were bought.")
}

func TestSellRejectsBadInput(t *testing.T) {
	h := newHarness(t, serumCatalog)

	require.Equal(t, 0, h.run(t, "2\nAsha\nToner\nSerum\nx\nSerum\n0\nSerum\n1\nNO\n4\n"))

	out := h.stdout.String()
	require.Contains(t, out, "Product not found.")
	require.Contains(t, out, "Invalid quantity. Please enter a number.")
	require.Contains(t, out, "Quantity must be a positive integer.")
	require.Equal(t, "Serum,Garnier,9,200.0,France\n", h.catalog(t))
}

func TestSellInvoiceFailureStillPersists(t *testing.T) {
	h := newHarness(t, serumCatalog)

	code := h.runWithInvoices(t, "2\nAsha\nSerum\n1\nno\n4\n", filepath.Join(h.dir, "missing"))

	require.Equal(t, 0, code)
	require.Contains(t, h.stdout.String(), "Error writing invoice to file:")
	require.Equal(t, "Serum,Garnier,9,200.0,France\n", h.catalog(t))
}

func TestRestockUpdatesQuantityAndCost(t *testing.T) {
	h := newHarness(t, serumCatalog)

	require.Equal(t, 0, h.run(t, "3\nGlow Supplies\nserum\n5\n220.0\n4\n"))

	require.Equal(t, "Serum,Garnier,15,220.0,France\n", h.catalog(t))
	inv := h.invoice(t, invoice.KindRestock)
	require.Contains(t, inv, "Vendor Name   : Glow Supplies")
	require.Contains(t, inv, "1     serum                     5")
	require.Contains(t, inv, "Total Amount: NPR 1100.00")
}

func TestRestockRejectsStockOverflow(t *testing.T) {
	h := newHarness(t, serumCatalog)

	require.Equal(t, 0, h.run(t, "3\nGlow\nSerum\n9223372036854775800\n1\n4\n"))

	require.Contains(t, h.stdout.String(), "stock quantity overflow")
	require.Equal(t, serumCatalog, h.catalog(t))
	_, err := os.Stat(filepath.Join(h.dir, invoice.FileName(invoice.KindRestock, fixedNow)))
	require.True(t, os.IsNotExist(err))
}

func TestRestockAbortsOnInvalidInput(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		message string
	}{
		{name: "unknown product", input: "3\nGlow\nToner\n4\n", message: "Product not found."},
		{name: "non numeric quantity", input: "3\nGlow\nSerum\nabc\n4\n", message: "Invalid quantity. Please enter a number."},
		{name: "zero quantity", input: "3\nGlow\nSerum\n0\n4\n", message: "Quantity must be a positive integer."},
		{name: "non numeric cost", input: "3\nGlow\nSerum\n5\nfree\n4\n", message: "Invalid cost price. Please enter a number."},
		{name: "negative cost", input: "3\nGlow\nSerum\n5\n-1\n4\n", message: "Cost price must be a positive number."},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, serumCatalog)

			require.Equal(t, 0, h.run(t, tc.input))

			out := h.stdout.String()
			require.Contains(t, out, tc.message)
			require.Contains(t, out, "Goodbye")
			require.Equal(t, serumCatalog, h.catalog(t))
			_, err := os.Stat(filepath.Join(h.dir, invoice.FileName(invoice.KindRestock, fixedNow)))
			require.True(t, os.IsNotExist(err))
		})
	}
}

func TestDisplayShowsSellingPrice(t *testing.T) {
	h := newHarness(t, serumCatalog)

	require.Equal(t, 0, h.run(t, "1\n4\n"))

	out := h.stdout.String()
	require.Contains(t, out, "Available Products:")
	require.Contains(t, out, strings.Repeat("-", tableWidth))
	require.Contains(t, out, "| 1     | Serum                          | Garnier")
	require.Contains(t, out, "|       452.00 |")
}

func TestInvalidMenuChoice(t *testing.T) {
	h := newHarness(t, serumCatalog)

	require.Equal(t, 0, h.run(t, "9\n4\n"))
	require.Contains(t, h.stdout.String(), "Invalid choice. Please try again.")
}

func TestEndOfInputExits(t *testing.T) {
	h := newHarness(t, serumCatalog)

	require.Equal(t, 0, h.run(t, ""))
	require.Contains(t, h.stdout.String(), "Goodbye")
}

func TestMalformedLinesAreReported(t *testing.T) {
	h := newHarness(t, "Broken\n\nSerum,Garnier,ten,200.0,France\n"+serumCatalog)

	require.Equal(t, 0, h.run(t, "4\n"))

	out := h.stdout.String()
	require.Contains(t, out, "Error: Invalid data format in line: Broken\n")
	require.Contains(t, out, "Error: Invalid data format in line: \n")
	require.Contains(t, out, "Error: Invalid quantity or cost price in line: Serum,Garnier,ten,200.0,France\n")
}

func TestMissingCatalogExits(t *testing.T) {
	h := newHarness(t, "")

	require.Equal(t, 1, h.run(t, "4\n"))

	out := h.stdout.String()
	require.Contains(t, out, "Error: File not found: "+h.catalogPath)
	require.Contains(t, out, "Could not load products.")
	require.NotContains(t, out, "Options:")
}
