package util

import (
	"fmt"
	"strings"
)

// FormatCurrency renders a monetary amount with thousands separators,
// e.g. 12500 -> "PKR 12,500.00".
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")
	intPart := parts[0]
	decPart := parts[1]

	if len(intPart) > 3 {
		chars := []rune(intPart)
		result := []rune{}
		for i := len(chars) - 1; i >= 0; i-- {
			if len(result) > 0 && len(result)%4 == 3 {
				result = append([]rune{','}, result...)
			}
			result = append([]rune{chars[i]}, result...)
		}
		intPart = string(result)
	}

	return fmt.Sprintf("%sPKR %s.%s", sign, intPart, decPart)
}

// FormatHours renders an hour quantity, e.g. 2.5 -> "2.5 hrs".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1f hrs", hours)
}

// FormatMinutes renders a minute quantity, e.g. 150 -> "150.0 min".
func FormatMinutes(minutes float64) string {
	return fmt.Sprintf("%.1f min", minutes)
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	if len(s) <= 3 {
		return s
	}

	var result []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, digit)
	}

	return string(result)
}
