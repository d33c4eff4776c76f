// Package cli provides formatting and rendering helpers for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatAmount renders a monetary value with the given currency symbol,
// comma-grouped integer part, and two decimals. e.g., 1234.5 -> "$1,234.50"
func FormatAmount(symbol string, v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	out := symbol + groupThousands(intPart) + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatShare formats value/total as a percentage, blank when total is 0.
func FormatShare(value, total float64) string {
	if total <= 0 {
		return ""
	}
	return fmt.Sprintf("%.1f%%", value/total*100)
}
