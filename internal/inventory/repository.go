package inventory

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const catalogFields = 5

// FileStore persists the catalog as comma separated rows:
// name,brand,quantity,cost_price,country. No header, no quoting.
type FileStore struct {
	path string
}

// NewFileStore constructs FileStore for the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the catalog file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads every well-formed row in file order. Malformed rows, blank ones
// included, are returned as issues and never abort the load.
func (s *FileStore) Load(ctx context.Context) ([]Product, []LineIssue, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Product{}, nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, s.path)
		}
		return []Product{}, nil, fmt.Errorf("inventory: open catalog: %w", err)
	}
	defer f.Close()

	products := make([]Product, 0)
	var issues []LineIssue
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		product, issue, ok := parseRow(lineNo, raw)
		if !ok {
			issues = append(issues, issue)
			continue
		}
		products = append(products, product)
	}
	if err := scanner.Err(); err != nil {
		return products, issues, fmt.Errorf("inventory: read catalog: %w", err)
	}
	return products, issues, nil
}

// Save overwrites the catalog file with one row per product.
func (s *FileStore) Save(ctx context.Context, products []Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("inventory: create catalog: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, p := range products {
		if _, err := fmt.Fprintln(w, formatRow(p)); err != nil {
			_ = f.Close()
			return fmt.Errorf("inventory: write catalog: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("inventory: flush catalog: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("inventory: close catalog: %w", err)
	}
	return nil
}

func parseRow(lineNo int, raw string) (Product, LineIssue, bool) {
	fields := strings.Split(raw, ",")
	if len(fields) != catalogFields {
		return Product{}, LineIssue{
			Line:   lineNo,
			Raw:    raw,
			Reason: IssueFieldCount,
			Err:    fmt.Errorf("expected %d fields, got %d", catalogFields, len(fields)),
		}, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	qty, err := strconv.Atoi(fields[2])
	if err != nil {
		return Product{}, LineIssue{Line: lineNo, Raw: raw, Reason: IssueBadNumber, Err: fmt.Errorf("quantity: %w", err)}, false
	}
	cost, err := decimal.NewFromString(fields[3])
	if err != nil {
		return Product{}, LineIssue{Line: lineNo, Raw: raw, Reason: IssueBadNumber, Err: fmt.Errorf("cost price: %w", err)}, false
	}
	return Product{
		Name:      fields[0],
		Brand:     fields[1],
		Quantity:  qty,
		CostPrice: cost,
		Country:   fields[4],
	}, LineIssue{}, true
}

func formatRow(p Product) string {
	return strings.Join([]string{
		p.Name,
		p.Brand,
		strconv.Itoa(p.Quantity),
		formatCost(p.CostPrice),
		p.Country,
	}, ",")
}

// formatCost keeps at least one fractional digit so rewritten rows read 200.0, not 200.
func formatCost(cost decimal.Decimal) string {
	s := cost.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
