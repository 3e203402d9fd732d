// Package period handles YYYY-MM month keys used by budgets and reports.
package period

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const layout = "2006-01"

var (
	monthKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

	ErrInvalidMonth = errors.New("month must be in YYYY-MM format")
)

type Month struct {
	Year  int
	Month time.Month
}

// MatchesKey reports whether s has the YYYY-MM shape, without checking the month number.
func MatchesKey(s string) bool {
	return monthKeyPattern.MatchString(s)
}

func Parse(s string) (Month, error) {
	if !MatchesKey(s) {
		return Month{}, ErrInvalidMonth
	}

	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	m, err := strconv.Atoi(s[5:])
	if err != nil || m < 1 || m > 12 {
		return Month{}, fmt.Errorf("%w: month %02d out of range", ErrInvalidMonth, m)
	}

	return Month{Year: year, Month: time.Month(m)}, nil
}

// ParseOrCurrent parses s, or returns the month containing now when s is empty.
func ParseOrCurrent(s string, now time.Time) (Month, error) {
	if s == "" {
		return Of(now), nil
	}
	return Parse(s)
}

func Of(t time.Time) Month {
	t = t.UTC()
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return m.Start().Format(layout)
}

// Start is midnight UTC of the first calendar day.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the exclusive upper bound: midnight UTC of the next month's first day.
// [Start, End) covers every instant of the last calendar day.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

func (m Month) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(m.Start()) && t.Before(m.End())
}
