package bitpack

import (
	"testing"

	"github.com/lgbarn/chesscodec-go/internal/errors"
	"github.com/lgbarn/chesscodec-go/internal/testutil"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		bits string
		want uint64
	}{
		{"", 0},
		{"0", 0},
		{"1", 1},
		{"000", 0},
		{"101", 5},
		{"111", 7},
		{"000111", 7},
		{"111000", 56},
		{"10000000000000000000000000000000", 1 << 31},
	}

	for _, tt := range tests {
		t.Run(tt.bits, func(t *testing.T) {
			b, err := ParseBits(tt.bits)
			testutil.AssertNoError(t, err)
			if got := ToInt(b); got != tt.want {
				t.Errorf("ToInt(%s) = %d; want %d", tt.bits, got, tt.want)
			}
		})
	}
}

func TestFromInt(t *testing.T) {
	tests := []struct {
		v     uint64
		width int
		want  string
	}{
		{0, 3, "000"},
		{5, 3, "101"},
		{7, 3, "111"},
		{1, 6, "000001"},
		{0, 0, ""},
		// Overflow bits are dropped, not reported.
		{8, 3, "000"},
		{13, 3, "101"},
	}

	for _, tt := range tests {
		if got := FromInt(tt.v, tt.width).String(); got != tt.want {
			t.Errorf("FromInt(%d, %d) = %s; want %s", tt.v, tt.width, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for width := 1; width <= 12; width++ {
		for v := uint64(0); v < 1<<uint(width); v++ {
			b := FromInt(v, width)
			if len(b) != width {
				t.Fatalf("FromInt(%d, %d) has %d digits", v, width, len(b))
			}
			if got := ToInt(b); got != v {
				t.Fatalf("ToInt(FromInt(%d, %d)) = %d", v, width, got)
			}
		}
	}
}

func TestParseBitsRejectsOtherDigits(t *testing.T) {
	for _, s := range []string{"2", "01a", " 1", "1 "} {
		_, err := ParseBits(s)
		testutil.AssertErrorIs(t, err, errors.ErrFormat, "ParseBits(%q)", s)
	}
}

func TestPutGet(t *testing.T) {
	var w uint32
	w = Put(w, 0, 1, 1)
	testutil.AssertEqual(t, w, uint32(1)<<31)
	testutil.AssertEqual(t, Get(w, 0, 1), uint32(1))

	w = Put(w, 31, 1, 1)
	testutil.AssertEqual(t, w, uint32(1)<<31|1)

	w = Put(w, 9, 6, 0x2A)
	testutil.AssertEqual(t, Get(w, 9, 6), uint32(0x2A))
	testutil.AssertEqual(t, Get(w, 0, 1), uint32(1), "neighbouring field disturbed")
	testutil.AssertEqual(t, Get(w, 31, 1), uint32(1), "neighbouring field disturbed")

	// Overwrite clears previous contents.
	w = Put(w, 9, 6, 0x05)
	testutil.AssertEqual(t, Get(w, 9, 6), uint32(0x05))

	// Excess bits are masked off.
	w = Put(0, 24, 3, 0xFF)
	testutil.AssertEqual(t, w, uint32(7)<<5)

	testutil.AssertEqual(t, Get(0xDEADBEEF, 0, WordSize), uint32(0xDEADBEEF))
}

func TestPutMatchesFromInt(t *testing.T) {
	w := Put(0, 17, 6, 45)
	want := FromInt(45, 6).String()
	got := FromInt(uint64(w), WordSize).String()[17:23]
	testutil.AssertEqual(t, got, want)
}
