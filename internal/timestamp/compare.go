package timestamp

import "time"

// Result is one element of a [Unify] batch. OK is false when the input at the
// same position could not be parsed; Instant is then the zero time.
type Result struct {
	Instant time.Time
	OK      bool
}

// Unify parses every value in vs. The output has the same length and order as
// the input, so a failed element stays at its original index.
func Unify(vs []any) []Result {
	out := make([]Result, len(vs))
	for i, v := range vs {
		t, ok := Parse(v)
		out[i] = Result{Instant: t, OK: ok}
	}
	return out
}

// Compare parses a and b and orders them: -1 if a is before b, 0 if they are
// the same instant, +1 if a is after b. The second return value is false
// (incomparable) when either side fails to parse.
func Compare(a, b any) (int, bool) {
	ta, ok := Parse(a)
	if !ok {
		return 0, false
	}
	tb, ok := Parse(b)
	if !ok {
		return 0, false
	}
	return ta.Compare(tb), true
}
