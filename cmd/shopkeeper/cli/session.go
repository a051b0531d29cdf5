package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Sadikshya-Karki/Beauty-and-Skin-Care-Software/internal/inventory"
	"github.com/Sadikshya-Karki/Beauty-and-Skin-Care-Software/internal/invoice"
)

// InvoiceWriter persists a rendered invoice and returns its location.
type InvoiceWriter interface {
	Write(inv invoice.Invoice) (string, error)
}

// Options wires a console session.
type Options struct {
	Catalog     *inventory.Catalog
	CatalogPath string
	Invoices    InvoiceWriter
	Stdin       io.Reader
	Stdout      io.Writer
	Now         func() time.Time
	NewRef      func() string
	Logger      *slog.Logger
}

// Session runs the interactive shop menu against one catalog.
type Session struct {
	catalog     *inventory.Catalog
	catalogPath string
	invoices    InvoiceWriter
	in          *bufio.Reader
	out         io.Writer
	now         func() time.Time
	newRef      func() string
	logger      *slog.Logger
	validate    *validator.Validate
}

// NewSession builds a Session, defaulting IO to the process console.
func NewSession(opts Options) *Session {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewRef == nil {
		opts.NewRef = uuid.NewString
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.CatalogPath == "" {
		opts.CatalogPath = "products.txt"
	}
	return &Session{
		catalog:     opts.Catalog,
		catalogPath: opts.CatalogPath,
		invoices:    opts.Invoices,
		in:          bufio.NewReader(opts.Stdin),
		out:         opts.Stdout,
		now:         opts.Now,
		newRef:      opts.NewRef,
		logger:      opts.Logger,
		validate:    newValidator(),
	}
}

// Run loads the catalog and serves the menu until the user exits or input
// ends. It returns the process exit code.
func (s *Session) Run(ctx context.Context) int {
	if s.catalog == nil || s.invoices == nil {
		s.println("Session is not configured.")
		return 1
	}
	if !s.load(ctx) {
		s.println("Could not load products.")
		return 1
	}
	for {
		if err := ctx.Err(); err != nil {
			s.logger.Info("session cancelled", slog.Any("error", err))
			return 0
		}
		s.printMenu()
		choice, ok := s.prompt("Enter your choice: ")
		if !ok {
			s.println("Goodbye")
			return 0
		}
		switch strings.TrimSpace(choice) {
		case "1":
			s.display()
		case "2":
			s.sell(ctx)
		case "3":
			s.restock(ctx)
		case "4":
			s.println("Goodbye")
			return 0
		default:
			s.println("Invalid choice. Please try again.")
		}
	}
}

func (s *Session) load(ctx context.Context) bool {
	issues, err := s.catalog.Load(ctx)
	for _, issue := range issues {
		switch issue.Reason {
		case inventory.IssueBadNumber:
			s.printf("Error: Invalid quantity or cost price in line: %s\n", issue.Raw)
		default:
			s.printf("Error: Invalid data format in line: %s\n", issue.Raw)
		}
	}
	if err != nil {
		if errors.Is(err, inventory.ErrCatalogNotFound) {
			s.printf("Error: File not found: %s\n", s.catalogPath)
		} else {
			s.printf("Error reading file: %v\n", err)
		}
	}
	return s.catalog.Len() > 0
}

func (s *Session) printMenu() {
	s.println("\nOptions:")
	s.println("1. Display Products")
	s.println("2. Sell Products")
	s.println("3. Restock Products")
	s.println("4. Exit")
}

func (s *Session) writeInvoice(inv invoice.Invoice) {
	path, err := s.invoices.Write(inv)
	if err != nil {
		s.printf("Error writing invoice to file: %v\n", err)
		return
	}
	s.printf("Invoice saved to %s\n", path)
}

func (s *Session) persist(ctx context.Context) {
	if err := s.catalog.Persist(ctx); err != nil {
		s.printf("Error writing to file: %v\n", err)
		return
	}
	s.printf("Product data updated in %s\n", s.catalogPath)
}

func (s *Session) println(msg string) {
	_, _ = fmt.Fprintln(s.out, msg)
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
