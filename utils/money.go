package utils

import (
	"strconv"
	"strings"
)

// FormatFCFA formats an integer amount as a string like "12 500 FCFA".
// Uses a space as thousands separator (common in francophone Africa).
func FormatFCFA(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	if len(s) <= 3 {
		if neg {
			return "-" + s + " FCFA"
		}
		return s + " FCFA"
	}

	var b strings.Builder
	// Pre-allocate: digits + separators + suffix
	b.Grow(len(s) + len(s)/3 + 6)
	if neg {
		b.WriteByte('-')
	}

	// Insert separators from the left.
	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(' ')
		b.WriteString(s[i : i+3])
	}
	b.WriteString(" FCFA")

	return b.String()
}
