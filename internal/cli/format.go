// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney renders an integer-rounded amount with locale grouping.
// IDR gets the "Rp" prefix and dot grouping; anything else gets its
// currency code and comma grouping.
func FormatMoney(amount float64, currency string) string {
	n := int64(math.Round(amount))
	switch currency {
	case "", "IDR":
		return "Rp " + group(n, '.')
	default:
		return currency + " " + group(n, ',')
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return group(n, ',')
}

func group(n int64, sep byte) string {
	if n < 0 {
		return "-" + group(-n, sep)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(sep)
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}
