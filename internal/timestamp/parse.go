// Package timestamp normalizes heterogeneous timestamp inputs (date strings,
// epoch numbers) into a single comparable instant.
//
// Every instant returned by this package is in UTC and carries no monotonic
// clock reading, so two inputs denoting the same moment compare equal with ==
// and can be used directly as map keys.
//
// Failure to parse is an expected outcome, reported as a false second return
// value rather than an error.
package timestamp

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Valid calendar years for an instant. Epoch values outside this range are
// treated as unparseable.
const (
	minYear = 1
	maxYear = 9999
)

// Parse converts v into a UTC instant. Strings go through [ParseString];
// integer and float kinds are seconds since the Unix epoch; json.Number is
// handled as a string; a time.Time is normalized to UTC. Any other type
// fails.
func Parse(v any) (time.Time, bool) {
	switch x := v.(type) {
	case string:
		return ParseString(x)
	case json.Number:
		return ParseString(x.String())
	case time.Time:
		return normalize(x)
	case float64:
		return ParseEpoch(x)
	case float32:
		return ParseEpoch(float64(x))
	case int:
		return fromUnixSeconds(int64(x))
	case int8:
		return fromUnixSeconds(int64(x))
	case int16:
		return fromUnixSeconds(int64(x))
	case int32:
		return fromUnixSeconds(int64(x))
	case int64:
		return fromUnixSeconds(x)
	case uint:
		return fromUnsigned(uint64(x))
	case uint8:
		return fromUnixSeconds(int64(x))
	case uint16:
		return fromUnixSeconds(int64(x))
	case uint32:
		return fromUnixSeconds(int64(x))
	case uint64:
		return fromUnsigned(x)
	}
	return time.Time{}, false
}

// ParseString parses a date/time string in any format dateparse understands
// (ISO-8601, RFC 2822/1123, "15 Oct 2024 12:34:56", ...). Strings without a
// zone are read as UTC; an explicit offset is converted to UTC. When the
// general parse fails the string is retried as epoch seconds, which covers
// stringified integers and fractional epochs.
func ParseString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	// Fractional epochs ("1728995696.25") are never dates, and dateparse
	// reads 13, 16 and 19 digit integers as milli, micro and nanoseconds.
	// Both are epoch seconds here.
	if isFractionalNumber(s) || isSubSecondInteger(s) {
		f, _ := strconv.ParseFloat(s, 64)
		return ParseEpoch(f)
	}
	if t, err := parseDate(s); err == nil {
		if inst, ok := normalize(t); ok {
			return inst, true
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, false
	}
	return ParseEpoch(f)
}

// parseDate wraps dateparse, which panics on some malformed inputs.
func parseDate(s string) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dateparse: %v", r)
		}
	}()
	return dateparse.ParseIn(s, time.UTC)
}

// isFractionalNumber reports whether s is a plain decimal like "-12.5": an
// optional sign, digits, exactly one dot with digits on both sides.
func isFractionalNumber(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	whole, frac, found := strings.Cut(s, ".")
	return found && isDigits(whole) && isDigits(frac)
}

// isSubSecondInteger reports whether s is an optionally signed integer with
// as many digits as a millisecond, microsecond or nanosecond timestamp.
func isSubSecondInteger(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	switch len(s) {
	case 13, 16, 19:
		return isDigits(s)
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseEpoch converts seconds since the Unix epoch (integer or fractional)
// into a UTC instant. NaN, infinities and values outside years 1..9999 fail.
// Fractions are rounded to the nearest microsecond.
func ParseEpoch(sec float64) (time.Time, bool) {
	if math.IsNaN(sec) || math.IsInf(sec, 0) {
		return time.Time{}, false
	}
	whole, frac := math.Modf(sec)
	// Reject before converting: int64(whole) is undefined for huge floats.
	if whole < float64(minUnix) || whole > float64(maxUnix) {
		return time.Time{}, false
	}
	micros := math.Round(frac * 1e6)
	t := time.Unix(int64(whole), int64(micros)*int64(time.Microsecond))
	return normalize(t)
}

// Unix bounds of 0001-01-01T00:00:00Z and 9999-12-31T23:59:59Z.
var (
	minUnix = time.Date(minYear, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxUnix = time.Date(maxYear, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

func fromUnixSeconds(sec int64) (time.Time, bool) {
	if sec < minUnix || sec > maxUnix {
		return time.Time{}, false
	}
	return normalize(time.Unix(sec, 0))
}

func fromUnsigned(sec uint64) (time.Time, bool) {
	if sec > uint64(maxUnix) {
		return time.Time{}, false
	}
	return fromUnixSeconds(int64(sec))
}

// normalize converts t to UTC, strips the monotonic reading and enforces the
// supported year range.
func normalize(t time.Time) (time.Time, bool) {
	t = t.UTC().Round(0)
	if y := t.Year(); y < minYear || y > maxYear {
		return time.Time{}, false
	}
	return t, true
}
