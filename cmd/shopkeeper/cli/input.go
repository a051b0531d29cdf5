package cli

import (
	"errors"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// quantityInput is a sell or restock quantity after numeric coercion.
type quantityInput struct {
	Quantity int `validate:"gt=0"`
}

// costInput is a restock cost price after numeric coercion. Decimals are
// validated by their sign.
type costInput struct {
	CostPrice decimal.Decimal `validate:"gt=0"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.Sign()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// prompt prints label and reads one line. ok is false once input is exhausted.
func (s *Session) prompt(label string) (string, bool) {
	s.printf("%s", label)
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (s *Session) parseQuantity(raw string) (int, string) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, "Invalid quantity. Please enter a number."
	}
	if err := s.validate.Struct(quantityInput{Quantity: n}); err != nil {
		return 0, "Quantity must be a positive integer."
	}
	return n, ""
}

func (s *Session) parseCostPrice(raw string) (decimal.Decimal, string) {
	cost, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, "Invalid cost price. Please enter a number."
	}
	if err := s.validate.Struct(costInput{CostPrice: cost}); err != nil {
		return decimal.Zero, "Cost price must be a positive number."
	}
	return cost, ""
}
