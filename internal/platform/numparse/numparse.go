// Package numparse is the single place where free-text feed values become
// numbers. Every function reports failure through its second return value.
package numparse

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Int parses a whole number, tolerating a trailing percent sign.
func Int(raw string) (int, bool) {
	text := strings.TrimSpace(raw)
	text = strings.TrimSpace(strings.TrimSuffix(text, "%"))
	if text == "" {
		return 0, false
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return value, true
}

// Decimal parses a decimal value and returns its canonical text form.
func Decimal(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", false
	}
	value, err := decimal.NewFromString(text)
	if err != nil {
		return "", false
	}
	return value.String(), true
}

// IntOrZero dereferences an optional feed counter.
func IntOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
