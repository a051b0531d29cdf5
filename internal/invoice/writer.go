package invoice

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	pageWidth   = 100
	labelWidth  = 45
	currency    = "NPR"
	stampLayout = "20060102_150405"
	dateLayout  = "2006-01-02 15:04:05"
)

// Writer saves invoices under a directory.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter constructs Writer. An empty dir means the working directory.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	if dir == "" {
		dir = "."
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{dir: dir, logger: logger}
}

// FileName returns invoice_{kind}_{YYYYMMDD_HHMMSS}.txt.
func FileName(kind Kind, at time.Time) string {
	return fmt.Sprintf("invoice_%s_%s.txt", kind, at.Format(stampLayout))
}

// Write renders inv into a new file and returns its path. A file from the
// same second and kind is overwritten.
func (w *Writer) Write(inv Invoice) (string, error) {
	path := filepath.Join(w.dir, FileName(inv.Kind(), inv.Issued()))
	f, err := os.Create(path)
	if err != nil {
		w.logger.Error("create invoice", slog.String("path", path), slog.Any("error", err))
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	buf := bufio.NewWriter(f)
	if err := Render(buf, inv); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := buf.Flush(); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	w.logger.Info("invoice written", slog.String("kind", string(inv.Kind())), slog.String("path", path))
	return path, nil
}

// Render writes the fixed-width layout for inv.
func Render(out io.Writer, inv Invoice) error {
	p := &printer{w: out}
	switch v := inv.(type) {
	case Sale:
		renderSale(p, v)
	case *Sale:
		renderSale(p, *v)
	case Restock:
		renderRestock(p, v)
	case *Restock:
		renderRestock(p, *v)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownKind, inv)
	}
	return p.err
}

func renderSale(p *printer, s Sale) {
	header(p, s.Reference, s.IssuedAt)
	p.linef("Customer Name : %s", s.Customer)
	p.rule('-')
	if len(s.Lines) == 0 {
		p.linef("No products were bought.")
		return
	}
	p.linef("%-5s %-25s %-10s %-25s %-15s", "S.N.", "Product Name", "Quantity", "Unit Price ("+currency+")", "Total ("+currency+")")
	p.rule('-')
	for i, line := range s.Lines {
		p.linef("%-5d %-25s %-10d %-25s %-15s", i+1, line.Name, line.Quantity, money(line.UnitPrice), money(line.Total))
	}
	p.rule('-')
	summary(p, "Subtotal", s.Subtotal)
	summary(p, fmt.Sprintf("VAT (%d%%)", s.VATPercent), s.VAT)
	summary(p, "Total Amount", s.Total)
	p.rule('=')
	p.linef("Thank you for shopping!")
}

func renderRestock(p *printer, r Restock) {
	header(p, r.Reference, r.IssuedAt)
	p.linef("Vendor Name   : %s", r.Vendor)
	p.rule('-')
	p.linef("%-5s %-25s %-25s %-20s %-15s", "S.N.", "Product Name", "Quantity Restocked", "Cost Price", "Total")
	p.rule('-')
	p.linef("%-5d %-25s %-25d %-20s %-15s", 1, r.Product, r.Quantity, money(r.CostPrice), money(r.Total))
	p.rule('-')
	summary(p, "Total Amount", r.Total)
	p.rule('=')
	p.linef("Thank you for your purchase!")
}

func header(p *printer, ref string, at time.Time) {
	p.rule('=')
	p.linef("%s", center("INVOICE", pageWidth))
	p.rule('=')
	if ref != "" {
		p.linef("Invoice No.   : %s", ref)
	}
	p.linef("Date          : %s", at.Format(dateLayout))
}

func summary(p *printer, label string, amount decimal.Decimal) {
	p.linef("%*s: %s %s", labelWidth, label, currency, money(amount))
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

// printer remembers the first write error so render code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) rule(ch byte) {
	p.linef("%s", strings.Repeat(string(ch), pageWidth))
}
