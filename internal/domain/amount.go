package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// DecimalSeparator is the only separator the keypad can produce
	DecimalSeparator = "."

	// MaxFractionDigits caps the digits typed after the separator (cents)
	MaxFractionDigits = 2
)

// AmountString represents an amount being typed on the numeric keypad.
// An empty AmountString is read as zero.
type AmountString string

// HasSeparator reports whether the decimal separator has been typed
func (a AmountString) HasSeparator() bool {
	return strings.Contains(string(a), DecimalSeparator)
}

// FractionDigits returns the number of digits typed after the separator
func (a AmountString) FractionDigits() int {
	idx := strings.Index(string(a), DecimalSeparator)
	if idx < 0 {
		return 0
	}
	return len(a) - idx - 1
}

// Decimal parses the amount.
// Empty parses to zero and a bare trailing separator ("5.") parses as its integer part.
func (a AmountString) Decimal() (decimal.Decimal, error) {
	raw := strings.TrimSuffix(string(a), DecimalSeparator)
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

// Validate ensures the amount adheres to the keypad invariants for the given ceiling
// Returns an error if validation fails
func (a AmountString) Validate(ceiling decimal.Decimal) error {
	if strings.Count(string(a), DecimalSeparator) > 1 {
		return errors.New("amount must contain at most one decimal separator")
	}

	if a.FractionDigits() > MaxFractionDigits {
		return errors.New("amount must have at most two fractional digits")
	}

	value, err := a.Decimal()
	if err != nil {
		return errors.New("amount is not a decimal number")
	}

	if value.IsNegative() {
		return errors.New("amount cannot be negative")
	}

	if value.GreaterThan(ceiling) {
		return errors.New("amount exceeds available balance")
	}

	return nil
}
