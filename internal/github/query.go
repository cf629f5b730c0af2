package github

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by search qualifiers.
const DateLayout = "2006-01-02"

// Filters narrows a search with qualifier tokens. Zero fields are omitted.
type Filters struct {
	Language     string
	MinStars     int
	CreatedAfter time.Time
}

// IsZero reports whether no filter is set.
func (f Filters) IsZero() bool {
	return f.Language == "" && f.MinStars <= 0 && f.CreatedAfter.IsZero()
}

// Qualifiers returns the key:value tokens for the set filters, in the
// order language, stars, created.
func (f Filters) Qualifiers() []string {
	var q []string
	if f.Language != "" {
		q = append(q, "language:"+f.Language)
	}
	if f.MinStars > 0 {
		q = append(q, fmt.Sprintf("stars:>=%d", f.MinStars))
	}
	if !f.CreatedAfter.IsZero() {
		q = append(q, "created:>="+f.CreatedAfter.Format(DateLayout))
	}
	return q
}

// Compose appends the filter qualifiers to a raw query.
func (f Filters) Compose(query string) string {
	parts := append([]string{query}, f.Qualifiers()...)
	return strings.Join(parts, " ")
}

// ParseDate parses a YYYY-MM-DD calendar date. An empty string is the zero time.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}
