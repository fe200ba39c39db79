package stamp

import (
	"path/filepath"
	"time"
)

// Match describes the stamp found in a filename.
type Match struct {
	Layout  Layout
	Text    string    // Matched substring, e.g. "15_10_2024_12_34_56".
	Instant time.Time // Zero when Valid is false.
	Valid   bool      // Digits form a real calendar date/time.
}

// Find runs the rule table against the basename of name and returns the
// first rule that matches, valid or not. ok is false when no layout's digit
// shape occurs in the name at all.
func Find(name string) (m Match, ok bool) {
	base := filepath.Base(name)
	for _, rule := range Rules {
		sm := rule.Pattern.FindStringSubmatch(base)
		if sm == nil {
			continue
		}
		t, valid := rule.Extract(sm).instant()
		return Match{Layout: rule.Layout, Text: sm[0], Instant: t, Valid: valid}, true
	}
	return Match{}, false
}

// FromFilename extracts the UTC instant embedded in the basename of name.
// It fails when no layout matches or the first matching layout's digits are
// not a valid date/time.
func FromFilename(name string) (time.Time, bool) {
	m, ok := Find(name)
	if !ok || !m.Valid {
		return time.Time{}, false
	}
	return m.Instant, true
}

// HasStamp reports whether the basename of name contains either layout's
// digit shape. No calendar validation is done.
func HasStamp(name string) bool {
	base := filepath.Base(name)
	for _, rule := range Rules {
		if rule.Shape.MatchString(base) {
			return true
		}
	}
	return false
}
