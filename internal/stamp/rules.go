package stamp

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Layout identifies which digit grouping a filename stamp uses.
type Layout string

const (
	LayoutYearFirst Layout = "YYYY_MM_DD_HH_MM_SS" // Layout A.
	LayoutDayFirst  Layout = "DD_MM_YYYY_HH_MM_SS" // Layout B.
)

// fields are the calendar components pulled out of a stamp, before validation.
type fields struct {
	year, month, day, hour, minute, second int
}

// Rule pairs a compiled regex with a function that maps its submatches to
// calendar fields. Rules are evaluated in order by [FromFilename]; first
// match wins.
type Rule struct {
	Layout  Layout
	Pattern *regexp.Regexp
	Shape   *regexp.Regexp
	Extract func(m []string) fields
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// --- Compiled rule patterns (order matters) ---

var (
	reYearFirst = regexp.MustCompile(`(\d{4})_(\d{2})_(\d{2})_(\d{2})_(\d{2})_(\d{2})`)
	reDayFirst  = regexp.MustCompile(`(\d{2})_(\d{2})_(\d{4})_(\d{2})_(\d{2})_(\d{2})`)

	// Capture-free variants used for the scanner's existence check.
	shapeYearFirst = regexp.MustCompile(`\d{4}_\d{2}_\d{2}_\d{2}_\d{2}_\d{2}`)
	shapeDayFirst  = regexp.MustCompile(`\d{2}_\d{2}_\d{4}_\d{2}_\d{2}_\d{2}`)
)

// Rules is the ordered layout table. Layout A is tried before Layout B; if a
// name contains both shapes, Layout A decides the result even when its digits
// are not a valid date.
var Rules = []Rule{
	{
		Layout:  LayoutYearFirst,
		Pattern: reYearFirst,
		Shape:   shapeYearFirst,
		Extract: func(m []string) fields {
			return fields{atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4]), atoi(m[5]), atoi(m[6])}
		},
	},
	{
		Layout:  LayoutDayFirst,
		Pattern: reDayFirst,
		Shape:   shapeDayFirst,
		Extract: func(m []string) fields {
			return fields{atoi(m[3]), atoi(m[2]), atoi(m[1]), atoi(m[4]), atoi(m[5]), atoi(m[6])}
		},
	},
}

// instant builds the UTC time for f, rejecting anything time.Date would
// silently normalize (month 13, Feb 30, hour 24, ...).
func (f fields) instant() (time.Time, bool) {
	if f.year < 1 || f.month < 1 || f.month > 12 || f.day < 1 ||
		f.hour > 23 || f.minute > 59 || f.second > 59 {
		return time.Time{}, false
	}
	t := time.Date(f.year, time.Month(f.month), f.day, f.hour, f.minute, f.second, 0, time.UTC)
	if t.Day() != f.day || int(t.Month()) != f.month {
		return time.Time{}, false
	}
	return t, true
}

// Format renders t in the given layout, e.g. "2024_10_15_12_34_56". t is
// converted to UTC first.
func Format(t time.Time, layout Layout) string {
	t = t.UTC()
	if layout == LayoutDayFirst {
		return fmt.Sprintf("%02d_%02d_%04d_%02d_%02d_%02d",
			t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute(), t.Second())
	}
	return fmt.Sprintf("%04d_%02d_%02d_%02d_%02d_%02d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}
