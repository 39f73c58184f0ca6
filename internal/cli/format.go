// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatMoney formats a USD amount with comma separators and no cents.
// e.g., 1234567 -> "$1,234,567"
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount)
	}
	return "$" + FormatNumber(int64(math.Round(amount)))
}

// FormatMoneyCompact abbreviates large amounts for cards and chart labels.
// e.g., 1250000 -> "$1.3M", 40000 -> "$40k"
func FormatMoneyCompact(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoneyCompact(-amount)
	}
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("$%.1fM", amount/1_000_000)
	case amount >= 1_000:
		if amount == math.Trunc(amount/1000)*1000 {
			return fmt.Sprintf("$%.0fk", amount/1000)
		}
		return fmt.Sprintf("$%.1fk", amount/1000)
	default:
		return fmt.Sprintf("$%.0f", amount)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
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
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatCount abbreviates large counts for compact display.
// e.g., 1234 -> "1.2K", 1234567 -> "1.2M"
func FormatCount(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatEventDate renders a calendar date the way event schedules read.
// e.g., "Dec 12, 2024"
func FormatEventDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDaysUntil describes distance to an event date in plain words.
func FormatDaysUntil(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%d days ago", -days)
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
