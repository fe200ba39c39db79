package display

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ErrNegativeSize is returned by [FormatSize] for a negative byte count.
var ErrNegativeSize = errors.New("size cannot be negative")

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize returns a human-readable size using base 1024 and two decimals,
// e.g. "1.00 GB". The unit is the largest one whose scaled value is at least
// 1, up to TB. Zero is the literal "0B".
func FormatSize(bytes int64) (string, error) {
	if bytes < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeSize, bytes)
	}
	if bytes == 0 {
		return "0B", nil
	}
	exp := 0
	div := int64(1)
	for exp < len(sizeUnits)-1 && bytes/div >= 1024 {
		div *= 1024
		exp++
	}
	return fmt.Sprintf("%.2f %s", float64(bytes)/float64(div), sizeUnits[exp]), nil
}

// ParseSize reads a byte count from CLI input. Plain integers are taken as
// bytes ("-1" stays negative so FormatSize can reject it); anything else is
// handed to humanize, which accepts "1.5 MB", "1GiB", "512k", ...
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	neg := strings.HasPrefix(s, "-")
	body := strings.TrimPrefix(s, "-")
	if neg && (strings.HasPrefix(body, "-") || strings.HasPrefix(body, "+")) {
		return 0, fmt.Errorf("invalid size %q: more than one sign", s)
	}
	n, err := humanize.ParseBytes(body)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if n > 1<<63-1 {
		return 0, fmt.Errorf("invalid size %q: too large", s)
	}
	if neg {
		return -int64(n), nil
	}
	return int64(n), nil
}
