package render

import (
	"fmt"
	"strings"
	"time"
)

// NotProvided is the placeholder shown for optional fields that were left
// empty at record-creation time.
const NotProvided = "N/A"

// FormatAmount renders a monetary value with exactly two decimal places
// and Indian digit grouping: groups of two after the first three digits,
// e.g. 1234567.8 -> "12,34,567.80".
func FormatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	grouped := groupIndian(intPart)

	if neg {
		return "-" + grouped + "." + fracPart
	}
	return grouped + "." + fracPart
}

// groupIndian inserts commas into a plain digit string per the Indian
// convention: the last three digits form one group, the rest pair up.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(append(groups, tail), ",")
}

// FormatQuantity renders a line-item quantity with two decimal places,
// matching the fixed table layout.
func FormatQuantity(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatDate renders a date as "02 Jan 2006" for list and detail views.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return NotProvided
	}
	return t.Format("02 Jan 2006")
}

// fallback substitutes the NotProvided placeholder for empty optional fields.
func fallback(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotProvided
	}
	return s
}
