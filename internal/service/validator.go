package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Balance validation failures. The text is user-facing and surfaced
// verbatim in form notices.
var (
	ErrBalanceFormat   = errors.New("Invalid balance format")
	ErrBalanceNegative = errors.New("Balance cannot be negative")
	ErrBalanceTooLarge = errors.New("Balance too large")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var maxBalance = decimal.NewFromInt(1_000_000)

// ValidEmail reports whether s looks like local@domain.tld. Callers
// lower-case the input before checking, so the match itself stays
// case-sensitive.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ParseBalance parses a raw balance string and rounds it to two decimal
// places, half away from zero. Values outside [0, 1,000,000] are
// rejected.
func ParseBalance(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, ErrBalanceFormat
	}
	if d.IsNegative() {
		return decimal.Decimal{}, ErrBalanceNegative
	}
	if d.GreaterThan(maxBalance) {
		return decimal.Decimal{}, ErrBalanceTooLarge
	}
	return d.Round(2), nil
}
