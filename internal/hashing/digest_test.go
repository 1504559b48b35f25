package hashing

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/lgbarn/chesscodec-go/internal/errors"
	"github.com/lgbarn/chesscodec-go/internal/testutil"
)

func TestDigestParameters(t *testing.T) {
	testutil.AssertEqual(t, DigestBytes, 16)
	testutil.AssertEqual(t, MaxDigestLen, 22)
}

func TestSumKnownValues(t *testing.T) {
	tests := []struct {
		in   string
		want Digest
	}{
		{"", "6ve2WrOl3mnciB6WIL2fIa"},
		{"abc", "5frS7ZK2oCrJOLG43t7nIh"},
		{"1. e4 e5 2. Nf3 Nc6", "5RNL7szCsoiqstXnaORlxk"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			testutil.AssertEqual(t, Sum([]byte(tt.in)), tt.want)
		})
	}
}

func TestSumDeterministic(t *testing.T) {
	data := []byte("[Event \"Casual\"]\n1. d4 d5 2. c4 *")
	first := Sum(data)
	for i := 0; i < 5; i++ {
		if got := Sum(data); got != first {
			t.Fatalf("Sum changed between calls: %s != %s", got, first)
		}
	}
}

func TestSumAlphabetAndLength(t *testing.T) {
	for i := 0; i < 200; i++ {
		d := Sum([]byte(strings.Repeat("x", i)))
		if len(d) > MaxDigestLen {
			t.Fatalf("digest %q longer than %d", d, MaxDigestLen)
		}
		for j := 0; j < len(d); j++ {
			if !strings.ContainsRune(base62Digits, rune(d[j])) {
				t.Fatalf("digest %q has non base-62 character %q", d, d[j])
			}
		}
	}
}

func TestEncodeBase62(t *testing.T) {
	testutil.AssertEqual(t, encodeBase62(make([]byte, DigestBytes)), "", "zero digest renders empty")
	testutil.AssertEqual(t, encodeBase62(append(make([]byte, DigestBytes-1), 1)), "1")
	testutil.AssertEqual(t, encodeBase62([]byte{61}), "z")
	testutil.AssertEqual(t, encodeBase62([]byte{62}), "10")
	testutil.AssertEqual(t, encodeBase62(bytes.Repeat([]byte{0xFF}, DigestBytes)), "7n42DGM5Tflk9n8mt7Fhc7")
}

func TestEntryPointsAgree(t *testing.T) {
	data := bytes.Repeat([]byte("1. e4 c5 2. Nf3 d6 "), 5000) // larger than the initial buffer
	want := Sum(data)

	got, err := SumReader(bytes.NewReader(data))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, want, "SumReader")

	got, err = SumReader(iotest.OneByteReader(bytes.NewReader(data)))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, want, "one byte at a time")

	got, err = SumReader(iotest.HalfReader(bytes.NewReader(data)))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, want, "half reads")

	path := filepath.Join(t.TempDir(), "games.pgn")
	testutil.AssertNoError(t, os.WriteFile(path, data, 0600))
	got, err = SumFile(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, want, "SumFile")

	got, err = NewHasher(WithReadLimit(len(data))).SumReader(bytes.NewReader(data))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, want, "exact limit")
}

func TestReadLimit(t *testing.T) {
	h := NewHasher(WithReadLimit(10))
	testutil.AssertEqual(t, h.ReadLimit(), 10)

	_, err := h.SumReader(strings.NewReader("0123456789A"))
	testutil.AssertErrorIs(t, err, errors.ErrTooLarge)

	d, err := h.SumReader(strings.NewReader("0123456789"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, d, Sum([]byte("0123456789")))

	d, err = NewHasher(WithReadLimit(0)).SumReader(strings.NewReader(""))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, d, Sum(nil))

	testutil.AssertEqual(t, NewHasher(WithReadLimit(-1)).ReadLimit(), MaxReadLimit, "negative limit ignored")
}

func TestSumReaderPropagatesErrors(t *testing.T) {
	boom := iotest.ErrTimeout
	_, err := SumReader(iotest.TimeoutReader(iotest.OneByteReader(strings.NewReader("abc"))))
	testutil.AssertErrorIs(t, err, boom)

	_, err = SumFile(filepath.Join(t.TempDir(), "missing.pgn"))
	testutil.AssertErrorIs(t, err, os.ErrNotExist)
}

func TestDigestBytesRoundTrip(t *testing.T) {
	d := Sum([]byte("abc"))
	raw, err := d.Bytes()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, raw, truncatedSHA256([]byte("abc")))

	back, err := ParseDigest(d.String())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, back, d)
}

func TestParseDigestInvalid(t *testing.T) {
	_, err := ParseDigest("abc-def")
	testutil.AssertErrorIs(t, err, errors.ErrFormat)

	_, err = ParseDigest(strings.Repeat("z", MaxDigestLen+1))
	testutil.AssertErrorIs(t, err, errors.ErrFormat)

	_, err = ParseDigest(strings.Repeat("z", MaxDigestLen))
	testutil.AssertErrorIs(t, err, errors.ErrRange)
}

func TestParseDigestRejectsNonCanonical(t *testing.T) {
	d := Sum([]byte("abc"))

	_, err := ParseDigest("0" + d.String())
	testutil.AssertErrorIs(t, err, errors.ErrFormat, "leading zero")

	_, err = ParseDigest("05")
	testutil.AssertErrorIs(t, err, errors.ErrFormat, "short leading zero")

	_, err = ParseDigest("")
	testutil.AssertErrorIs(t, err, errors.ErrFormat, "empty")

	_, err = ParseDigest("00")
	testutil.AssertErrorIs(t, err, errors.ErrFormat, "zeros only")
}

func TestMultihashAndCID(t *testing.T) {
	d := Sum([]byte("abc"))
	mh, err := d.Multihash()
	testutil.AssertNoError(t, err)

	dec, err := multihash.Decode(mh)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, dec.Code, uint64(multihash.SHA2_256))
	testutil.AssertEqual(t, dec.Length, DigestBytes)

	c, err := d.CID()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, c.Prefix().Codec, uint64(cid.Raw))
	testutil.AssertTrue(t, bytes.Equal(c.Hash(), mh))
}
