package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatLocaleNumber renders v with en-US digit grouping and up to three fraction digits,
// e.g. 56980 -> "56,980" and 1200.5 -> "1,200.5"
func FormatLocaleNumber(v decimal.Decimal) string {
	return groupDigits(v.Round(3).String())
}

// FormatCurrency renders v as a grouped dollar amount with two decimals, e.g. "$56,980.00"
func FormatCurrency(v decimal.Decimal) string {
	return "$" + groupDigits(v.StringFixed(2))
}

// groupDigits groups the integer part of a plain decimal string, keeping the fraction as is.
// Integer parts beyond int64 are returned ungrouped.
func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, fraction, hasFraction := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return sign + s
	}

	p := message.NewPrinter(language.AmericanEnglish)
	out := sign + p.Sprintf("%d", n)
	if hasFraction {
		out += "." + fraction
	}
	return out
}
