package testutil

import (
	"errors"
	"fmt"
	"math/big"
	"testing"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []byte{0, 1}, []byte{0, 1})
	AssertEqual(t, nil, nil)
}

func TestAssertEqual_BigInt(t *testing.T) {
	a := big.NewInt(12345)
	b := new(big.Int).SetInt64(12345)
	AssertEqual(t, a, b, "big.Int values should compare by value")
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
	AssertErrorIs(t, nil, nil)
}

func TestAssertTrueFalseNil(t *testing.T) {
	var p *int
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, len("hello") == 0)
	AssertNil(t, p)
	AssertNil(t, nil)
	AssertNoError(t, nil)
}

func TestMustBigInt(t *testing.T) {
	got := MustBigInt(t, "1606938044258990275541962092341162602522202993782792835301376")
	AssertEqual(t, got, Pow2(200))
}

func TestRandomBigInts(t *testing.T) {
	a := RandomBigInts(7, 20, 64)
	b := RandomBigInts(7, 20, 64)
	AssertEqual(t, a, b, "same seed should give same values")
	for i, v := range a {
		AssertTrue(t, v.Sign() >= 0, "value %d negative", i)
		AssertTrue(t, v.BitLen() <= 64, "value %d too wide", i)
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
