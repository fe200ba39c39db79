package timestamp

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-10-15T12:34:56Z
const refEpoch = 1728995696

var refInstant = time.Date(2024, time.October, 15, 12, 34, 56, 0, time.UTC)

func TestParseString(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"iso naive", "2024-10-15T12:34:56"},
		{"iso zulu", "2024-10-15T12:34:56Z"},
		{"iso positive offset", "2024-10-15T14:34:56+02:00"},
		{"iso negative offset", "2024-10-15T07:34:56-05:00"},
		{"iso space separator", "2024-10-15 12:34:56"},
		{"rfc 2822", "Tue, 15 Oct 2024 12:34:56 +0000"},
		{"rfc 2822 with offset", "Tue, 15 Oct 2024 13:34:56 +0100"},
		{"human", "15 Oct 2024 12:34:56"},
		{"stringified epoch", "1728995696"},
		{"padded", "  2024-10-15T12:34:56Z  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseString(tt.in)
			require.True(t, ok, "ParseString(%q) failed", tt.in)
			assert.Equal(t, refInstant, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseString_Failures(t *testing.T) {
	for _, in := range []string{
		"", "   ", "invalid", "invalid-garbage", "not a date at all", "NaN", "inf",
		// Seconds beyond year 9999, whatever unit the digit count suggests.
		"1700000000000", "1700000000000000", "1700000000000000000", "-1700000000000", "+1700000000000",
	} {
		t.Run(in, func(t *testing.T) {
			got, ok := ParseString(in)
			assert.False(t, ok, "ParseString(%q) = %v, want failure", in, got)
			assert.True(t, got.IsZero())
		})
	}
}

func TestParseString_FractionalEpochFallback(t *testing.T) {
	got, ok := ParseString("1728995696.25")
	require.True(t, ok)
	assert.Equal(t, refInstant.Add(250*time.Millisecond), got)
}

func TestParseString_LongIntegersAreSeconds(t *testing.T) {
	for _, v := range []int64{1700000000000, 1700000000000000, 1700000000000000000} {
		fromString, okString := ParseString(strconv.FormatInt(v, 10))
		fromNumber, okNumber := Parse(v)
		assert.Equal(t, okNumber, okString, "%d", v)
		assert.Equal(t, fromNumber, fromString, "%d", v)
	}
}

func TestParseEpoch(t *testing.T) {
	tests := []struct {
		name   string
		in     float64
		want   time.Time
		wantOK bool
	}{
		{"epoch zero", 0, time.Unix(0, 0).UTC(), true},
		{"reference", refEpoch, refInstant, true},
		{"fractional", refEpoch + 0.5, refInstant.Add(500 * time.Millisecond), true},
		{"microsecond rounding", refEpoch + 0.0000004, refInstant, true},
		{"negative", -86400, time.Date(1969, time.December, 31, 0, 0, 0, 0, time.UTC), true},
		{"NaN", math.NaN(), time.Time{}, false},
		{"+Inf", math.Inf(1), time.Time{}, false},
		{"-Inf", math.Inf(-1), time.Time{}, false},
		{"beyond year 9999", 1e12, time.Time{}, false},
		{"before year 1", -1e12, time.Time{}, false},
		{"huge", 1e300, time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEpoch(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Types(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"int", refEpoch},
		{"int64", int64(refEpoch)},
		{"int32", int32(refEpoch)},
		{"uint", uint(refEpoch)},
		{"uint32", uint32(refEpoch)},
		{"uint64", uint64(refEpoch)},
		{"float64", float64(refEpoch)},
		{"json.Number", json.Number("1728995696")},
		{"string", "2024-10-15T12:34:56Z"},
		{"time in other zone", refInstant.In(time.FixedZone("X", 3*3600))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.in)
			require.True(t, ok)
			assert.Equal(t, refInstant, got)
		})
	}
}

func TestParse_UnsupportedTypes(t *testing.T) {
	for _, in := range []any{nil, true, []byte("2024-10-15"), struct{}{}, uint64(math.MaxUint64)} {
		_, ok := Parse(in)
		assert.False(t, ok, "Parse(%#v) should fail", in)
	}
}

// Same moment from different representations must produce == instants, so
// they can share a map key.
func TestParse_EquivalentRepresentationsAreEqual(t *testing.T) {
	iso, ok := Parse("2024-10-15T12:34:56Z")
	require.True(t, ok)
	epoch, ok := Parse(refEpoch)
	require.True(t, ok)
	human, ok := Parse("15 Oct 2024 12:34:56")
	require.True(t, ok)

	assert.True(t, iso == epoch)
	assert.True(t, iso == human)

	m := map[time.Time]int{iso: 1}
	assert.Equal(t, 1, m[epoch])
}

func TestParse_MonotonicStripped(t *testing.T) {
	now := time.Now()
	got, ok := Parse(now)
	require.True(t, ok)
	assert.True(t, got == now.UTC().Round(0))
}
