package uiutil

import (
	"strconv"
	"strings"
)

// FormatPrice renders a price in whole dollars with thousands separators,
// e.g. 45999 -> "$45,999".
func FormatPrice(price int64) string {
	return "$" + groupThousands(price)
}

// FormatMileage renders a mileage reading with thousands separators and a
// unit suffix, e.g. 12500 -> "12,500 mi".
func FormatMileage(mileage int) string {
	return groupThousands(int64(mileage)) + " mi"
}

// groupThousands inserts commas every three digits.
func groupThousands(n int64) string {
	negative := n < 0
	if negative {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// TruncateWithEllipsis shortens text to the provided rune limit and appends an ellipsis when truncated.
func TruncateWithEllipsis(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
