package hashing

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// MaxReadLimit is the largest content the hasher buffers: the biggest
// array most runtimes will allocate.
const MaxReadLimit = math.MaxInt32 - 8

const initialBufferSize = 8192

// Hasher reads whole files or streams and fingerprints them.
// A Hasher is safe for concurrent use.
type Hasher struct {
	limit int
}

// HasherOption configures a Hasher.
type HasherOption func(*Hasher)

// WithReadLimit caps how many bytes a single read may buffer.
func WithReadLimit(n int) HasherOption {
	return func(h *Hasher) {
		if n >= 0 {
			h.limit = n
		}
	}
}

// NewHasher creates a Hasher. The default read limit is MaxReadLimit.
func NewHasher(opts ...HasherOption) *Hasher {
	h := &Hasher{limit: MaxReadLimit}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ReadLimit returns the configured read limit.
func (h *Hasher) ReadLimit() int {
	return h.limit
}

// Sum returns the digest of data. It is the same as the package-level Sum.
func (h *Hasher) Sum(data []byte) Digest {
	return Sum(data)
}

// ReadAll reads r to EOF under the hasher's read limit.
func (h *Hasher) ReadAll(r io.Reader) ([]byte, error) {
	return readAll(r, h.limit)
}

// SumReader reads r to EOF and returns the digest of everything read.
func (h *Hasher) SumReader(r io.Reader) (Digest, error) {
	data, err := h.ReadAll(r)
	if err != nil {
		return "", err
	}
	return Sum(data), nil
}

// SumFile returns the digest of the named file's contents.
func (h *Hasher) SumFile(path string) (Digest, error) {
	f, err := os.Open(path) //nolint:gosec // G304: hashing user-named files is the point
	if err != nil {
		return "", err
	}
	defer f.Close()

	d, err := h.SumReader(f)
	if err != nil {
		return "", errors.Wrapf(err, "hashing %s", path)
	}
	return d, nil
}

// SumReader is NewHasher().SumReader(r).
func SumReader(r io.Reader) (Digest, error) {
	return NewHasher().SumReader(r)
}

// SumFile is NewHasher().SumFile(path).
func SumFile(path string) (Digest, error) {
	return NewHasher().SumFile(path)
}

// readAll reads r to EOF into a buffer that doubles whenever it fills,
// up to limit bytes. Content beyond limit fails with errors.ErrTooLarge.
func readAll(r io.Reader, limit int) ([]byte, error) {
	size := initialBufferSize
	if size > limit {
		size = limit
	}
	buf := make([]byte, size)
	n := 0
	for {
		if n == len(buf) {
			if len(buf) >= limit {
				var extra [1]byte
				m, err := io.ReadFull(r, extra[:])
				if m > 0 {
					return nil, &errors.CodecError{Err: errors.ErrTooLarge, Op: "hashing.readAll",
						Detail: fmt.Sprintf("more than %d bytes", limit)}
				}
				if err == io.EOF {
					return buf[:n], nil
				}
				return nil, err
			}
			grown := len(buf) * 2
			if grown > limit || grown < len(buf) {
				grown = limit
			}
			next := make([]byte, grown)
			copy(next, buf[:n])
			buf = next
		}

		m, err := r.Read(buf[n:])
		n += m
		if err == io.EOF {
			return buf[:n], nil
		}
		if err != nil {
			return nil, err
		}
	}
}
