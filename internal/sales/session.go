package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Sadikshya-Karki/Beauty-and-Skin-Care-Software/internal/invoice"
)

// Session accumulates purchase lines for one customer.
//
// Lines are keyed by product name. Recording a product that is already in the
// session replaces its earlier line instead of adding to it; the replaced line
// keeps its original position. The billed gross still counts every recorded
// line, replaced or not.
type Session struct {
	Customer string

	order []string
	lines map[string]invoice.Line
	gross decimal.Decimal
}

// NewSession starts an empty session for customer.
func NewSession(customer string) *Session {
	return &Session{Customer: customer, lines: make(map[string]invoice.Line)}
}

// Record stores line under its product name, overwriting any previous line.
func (s *Session) Record(line invoice.Line) {
	if _, ok := s.lines[line.Name]; !ok {
		s.order = append(s.order, line.Name)
	}
	s.lines[line.Name] = line
	s.gross = s.gross.Add(line.Total)
}

// Gross returns the VAT-inclusive sum of every recorded line.
func (s *Session) Gross() decimal.Decimal {
	return s.gross
}

// Lines returns the recorded lines in first-recorded order.
func (s *Session) Lines() []invoice.Line {
	out := make([]invoice.Line, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.lines[name])
	}
	return out
}

// Empty reports whether no line was recorded.
func (s *Session) Empty() bool {
	return len(s.order) == 0
}

// Invoice builds the sale invoice for the session. Totals come from Gross, so a
// replaced line is billed even though only its replacement is listed. An empty
// session yields an invoice with no lines and zero totals.
func (s *Session) Invoice(ref string, at time.Time) invoice.Sale {
	lines := s.Lines()
	sale := invoice.Sale{
		Reference:  ref,
		Customer:   s.Customer,
		IssuedAt:   at,
		Lines:      lines,
		VATPercent: VATPercent(),
	}
	if len(lines) == 0 {
		return sale
	}
	totals := SplitVAT(s.gross)
	sale.Subtotal = totals.Subtotal
	sale.VAT = totals.VAT
	sale.Total = totals.Total
	return sale
}
