package keypad

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-wallet/internal/domain"
)

const (
	// KeyDecimal is the keypad key that types the decimal separator
	KeyDecimal = "."
	// KeyDelete is the keypad key that removes the last typed character
	KeyDelete = "delete"
)

// Layout returns the keypad grid as rendered, row by row
func Layout() [][]string {
	return [][]string{
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
		{KeyDecimal, "0", KeyDelete},
	}
}

// AppendDigit appends a digit to the amount under the ceiling
// Logic:
//  1. Reject when two fraction digits have already been typed
//  2. Tentatively append the digit
//  3. Reject when the tentative amount parses above the ceiling
//
// A rejected digit returns current unchanged. Invalid keystrokes are ignored, never reported.
func AppendDigit(current domain.AmountString, digit rune, ceiling decimal.Decimal) domain.AmountString {
	if digit < '0' || digit > '9' {
		return current
	}

	if current.HasSeparator() && current.FractionDigits() >= domain.MaxFractionDigits {
		return current
	}

	tentative := current + domain.AmountString(string(digit))
	value, err := tentative.Decimal()
	if err != nil || value.GreaterThan(ceiling) {
		return current
	}

	return tentative
}

// AppendDecimalSeparator types the separator, writing "0." on an empty amount
func AppendDecimalSeparator(current domain.AmountString) domain.AmountString {
	if current.HasSeparator() {
		return current
	}
	if current == "" {
		return "0" + domain.DecimalSeparator
	}
	return current + domain.DecimalSeparator
}

// DeleteLast removes the last typed character
func DeleteLast(current domain.AmountString) domain.AmountString {
	if current == "" {
		return current
	}
	return current[:len(current)-1]
}

// ToDisplayString renders the amount for the entry screen.
// Padding is only added when no separator was typed, so "0." is shown as typed.
func ToDisplayString(current domain.AmountString) string {
	if current == "" {
		return "0.00"
	}
	if !current.HasSeparator() {
		return string(current) + ".00"
	}
	return string(current)
}

// ToNumericValue parses the amount, reading empty as zero
func ToNumericValue(current domain.AmountString) decimal.Decimal {
	value, err := current.Decimal()
	if err != nil {
		return decimal.Zero
	}
	return value
}

// Press applies a keypad key to the amount.
// Unknown keys leave the amount unchanged.
func Press(current domain.AmountString, key string, ceiling decimal.Decimal) domain.AmountString {
	switch key {
	case KeyDelete:
		return DeleteLast(current)
	case KeyDecimal:
		return AppendDecimalSeparator(current)
	}

	if len(key) != 1 {
		return current
	}
	return AppendDigit(current, rune(key[0]), ceiling)
}
