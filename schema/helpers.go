package schema

import (
	"slices"
	"strings"
	"time"
	"unicode"
)

// trimNamePart strips punctuation from both ends of a name part, keeping
// characters that commonly appear inside names.
func trimNamePart(p string) string {
	p = strings.TrimFunc(p, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-' && r != '\'' && r != '.'
	})
	return strings.TrimSuffix(p, ".")
}

// AbbreviateName formats "Samuel Huang" to "Samuel H" for compact author columns.
// Bot accounts such as "dependabot[bot]" are returned with normalized spacing only.
func AbbreviateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if strings.Contains(trimmed, "[bot]") {
		return strings.Join(strings.Fields(trimmed), " ")
	}

	var parts []string
	for _, p := range strings.Fields(strings.Trim(trimmed, "()\"'`")) {
		if cp := trimNamePart(p); cp != "" {
			parts = append(parts, cp)
		}
	}

	switch len(parts) {
	case 0:
		return trimmed
	case 1:
		return parts[0]
	}
	last := []rune(parts[len(parts)-1])
	return parts[0] + " " + string(last[0])
}

// FormatDay renders a civil day for tables; the zero time renders as "-".
func FormatDay(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DateLayout)
}

// SortedDays returns the days of a DailyActivity in ascending order.
func SortedDays(activity DailyActivity) []DailyCount {
	out := make([]DailyCount, 0, len(activity))
	for day, n := range activity {
		out = append(out, DailyCount{Date: day.Format(time.DateOnly), Commits: n})
	}
	// DateOnly strings sort chronologically.
	slices.SortFunc(out, func(a, b DailyCount) int {
		return strings.Compare(a.Date, b.Date)
	})
	return out
}
