package util

import (
	"fmt"
	"math"
	"strconv"
)

// ParseMoney converts a decimal string amount ("3.50") to cents.
// Anything beyond two decimals is rounded half away from zero.
func ParseMoney(s string) (int64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return int64(math.Round(f * 100)), nil
}

// FormatMoney renders cents as a two-decimal string, e.g. 350 -> "3.50".
func FormatMoney(cent int64) string {
	return strconv.FormatFloat(float64(cent)/100.0, 'f', 2, 64)
}

// ParseQuantity converts a form quantity field to a non-negative int.
func ParseQuantity(s string) (int, error) {
	q, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse quantity %q: %w", s, err)
	}
	if q < 0 {
		return 0, fmt.Errorf("negative quantity %d", q)
	}
	return q, nil
}
