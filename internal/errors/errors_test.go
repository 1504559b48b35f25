package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that all sentinel errors are distinct and non-nil
func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrRange,
		ErrFormat,
		ErrTooLarge,
		ErrNotFound,
		ErrInvalidConfig,
	}

	for i, a := range sentinels {
		if a == nil {
			t.Fatalf("sentinel %d is nil", i)
		}
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %d matches sentinel %d", i, j)
			}
		}
	}
}

func TestCodecError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *CodecError
		contains []string
	}{
		{
			name:     "op and input",
			err:      &CodecError{Err: ErrFormat, Op: "alphabet.Decode", Input: "a b"},
			contains: []string{"alphabet.Decode", `"a b"`, "malformed input"},
		},
		{
			name:     "detail only",
			err:      &CodecError{Err: ErrRange, Detail: "needs 26 bytes"},
			contains: []string{"needs 26 bytes", "out of range"},
		},
		{
			name:     "no context",
			err:      &CodecError{Err: ErrTooLarge},
			contains: []string{"content too large"},
		},
		{
			name:     "long input truncated",
			err:      &CodecError{Err: ErrFormat, Op: "op", Input: strings.Repeat("x", 100)},
			contains: []string{strings.Repeat("x", maxInputLen) + "..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("CodecError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestCodecError_As(t *testing.T) {
	wrapped := fmt.Errorf("loading position: %w", Range("fixedwidth.Encode", "1606938044258990275541962092341162602522202993782792835301376", "needs 26 bytes"))

	if !errors.Is(wrapped, ErrRange) {
		t.Error("errors.Is(wrapped, ErrRange) = false, want true")
	}

	var codecErr *CodecError
	if !As(wrapped, &codecErr) {
		t.Fatal("As() could not extract CodecError")
	}
	if codecErr.Op != "fixedwidth.Encode" {
		t.Errorf("codecErr.Op = %q, want %q", codecErr.Op, "fixedwidth.Encode")
	}
}

func TestFormatHelper(t *testing.T) {
	err := Format("chess.DecodeSquare", "0101", "want 6 digits")
	if !Is(err, ErrFormat) {
		t.Errorf("Format() should wrap ErrFormat, got %v", err)
	}
	if Is(err, ErrRange) {
		t.Error("Format() should not match ErrRange")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrNotFound, "reading archive")

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), "reading archive") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrFormat, "record %d of %d", 3, 10)

	if !errors.Is(wrapped, ErrFormat) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), "record 3 of 10") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

func TestJoin(t *testing.T) {
	closeErr := fmt.Errorf("closing archive: %w", ErrTooLarge)
	joined := Join(ErrNotFound, closeErr)

	if !errors.Is(joined, ErrNotFound) || !errors.Is(joined, ErrTooLarge) {
		t.Errorf("Join should keep both errors, got %v", joined)
	}
	if Join(nil, nil) != nil {
		t.Error("Join(nil, nil) should return nil")
	}
	if !errors.Is(Join(ErrFormat, nil), ErrFormat) {
		t.Error("Join should drop nil errors")
	}
}
