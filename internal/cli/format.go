// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a dollar amount: whole dollars stay whole, cents get
// two places, thousands get commas.
// e.g., 800 -> "$800", 1750 -> "$1,750", 12.5 -> "$12.50", -150 -> "-$150"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-" + FormatMoney(-v)
	}

	whole := math.Trunc(v)
	cents := math.Round((v - whole) * 100)
	if cents >= 100 {
		whole++
		cents = 0
	}

	if cents == 0 {
		return "$" + FormatNumber(int64(whole))
	}
	return fmt.Sprintf("$%s.%02d", FormatNumber(int64(whole)), int(cents))
}

// FormatDelta formats a remaining-budget figure with an explicit sign.
// Positive means money left, negative means overspent.
func FormatDelta(v float64) string {
	if v >= 0 {
		return "+" + FormatMoney(v)
	}
	return "-" + FormatMoney(-v)
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

// FormatPercent formats a 0-1 ratio as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatHeadcount renders the guest tally line used wherever headcount
// appears: "3 Adults + 5 Kids = 8 Total".
func FormatHeadcount(adults, children int) string {
	return fmt.Sprintf("%d Adults + %d Kids = %d Total", adults, children, adults+children)
}

// FormatBytes renders a file size with binary suffixes.
// e.g., 117248 -> "114.5 KB"
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatDuration formats seconds into a human-readable duration.
// e.g., 3725 -> "1h 2m", 125 -> "2m", 45 -> "45s"
func FormatDuration(secs int64) string {
	if secs <= 0 {
		return "0s"
	}

	hours := secs / 3600
	mins := (secs % 3600) / 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	if mins > 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%ds", secs)
}
