// Package store is a content-addressed archive of game text, packed move
// lists and position identifiers, kept in a pebble database.
//
// Key layout:
//
//	c/<digest>          raw content
//	m/<digest>          packed 32-bit move records, big-endian, in order
//	p/<25-byte record>  digest of the content holding that position
package store

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/lgbarn/chesscodec-go/internal/alphabet"
	"github.com/lgbarn/chesscodec-go/internal/errors"
	"github.com/lgbarn/chesscodec-go/internal/fixedwidth"
	"github.com/lgbarn/chesscodec-go/internal/hashing"
	"github.com/lgbarn/chesscodec-go/internal/movecode"
)

var (
	contentPrefix  = []byte("c/")
	movesPrefix    = []byte("m/")
	positionPrefix = []byte("p/")
)

// moveSize is the stored width of one packed move.
const moveSize = 4

// Options configures an Archive.
type Options struct {
	// FS overrides the filesystem, e.g. vfs.NewMem() in tests.
	FS vfs.FS
	// Sync forces every write to stable storage before returning.
	Sync bool
}

// Archive is safe for concurrent use.
type Archive struct {
	db        *pebble.DB
	writeOpts *pebble.WriteOptions
	// seen caches digests known to be stored, to skip rewriting content.
	seen *xsync.MapOf[hashing.Digest, struct{}]
}

// Open opens or creates the archive in dir.
func Open(dir string, opts *Options) (*Archive, error) {
	if opts == nil {
		opts = &Options{}
	}
	db, err := pebble.Open(dir, &pebble.Options{FS: opts.FS})
	if err != nil {
		return nil, errors.Wrapf(err, "opening archive %s", dir)
	}
	wo := pebble.NoSync
	if opts.Sync {
		wo = pebble.Sync
	}
	return &Archive{
		db:        db,
		writeOpts: wo,
		seen:      xsync.NewMapOf[hashing.Digest, struct{}](),
	}, nil
}

// Close releases the database.
func (a *Archive) Close() error {
	return a.db.Close()
}

func key(prefix []byte, suffix []byte) []byte {
	k := make([]byte, 0, len(prefix)+len(suffix))
	k = append(k, prefix...)
	return append(k, suffix...)
}

func (a *Archive) get(k []byte) ([]byte, error) {
	v, closer, err := a.db.Get(k)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return bytes.Clone(v), nil
}

// PutContent stores data under its digest and returns the digest.
// Storing the same content twice is a no-op.
func (a *Archive) PutContent(data []byte) (hashing.Digest, error) {
	d := hashing.Sum(data)
	if _, ok := a.seen.Load(d); ok {
		return d, nil
	}
	if err := a.db.Set(key(contentPrefix, []byte(d)), data, a.writeOpts); err != nil {
		return "", errors.Wrapf(err, "storing content %s", d)
	}
	a.seen.Store(d, struct{}{})
	return d, nil
}

// GetContent returns the content stored under d.
func (a *Archive) GetContent(d hashing.Digest) ([]byte, error) {
	v, err := a.get(key(contentPrefix, []byte(d)))
	if err != nil {
		return nil, errors.Wrapf(err, "content %s", d)
	}
	return v, nil
}

// Has reports whether content with digest d is stored.
func (a *Archive) Has(d hashing.Digest) (bool, error) {
	if _, ok := a.seen.Load(d); ok {
		return true, nil
	}
	_, err := a.get(key(contentPrefix, []byte(d)))
	if errors.Is(err, errors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	a.seen.Store(d, struct{}{})
	return true, nil
}

// Digests lists every stored content digest in key order.
func (a *Archive) Digests() ([]hashing.Digest, error) {
	iter, err := a.db.NewIter(&pebble.IterOptions{
		LowerBound: contentPrefix,
		UpperBound: []byte("c0"), // '0' follows '/'
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var out []hashing.Digest
	for iter.First(); iter.Valid(); iter.Next() {
		out = append(out, hashing.Digest(iter.Key()[len(contentPrefix):]))
	}
	return out, iter.Error()
}

// PutMoves stores the packed move list of the game with digest d.
// A nil entry is stored as 0, the "no move" marker.
func (a *Archive) PutMoves(d hashing.Digest, moves []*movecode.Record) error {
	buf := make([]byte, moveSize*len(moves))
	for i, m := range moves {
		var v uint32
		if m != nil {
			v = movecode.Encode(m)
		}
		binary.BigEndian.PutUint32(buf[i*moveSize:], v)
	}
	if err := a.db.Set(key(movesPrefix, []byte(d)), buf, a.writeOpts); err != nil {
		return errors.Wrapf(err, "storing moves for %s", d)
	}
	return nil
}

// GetMoves returns the move list stored for d. Stored zeros come back as
// nil entries.
func (a *Archive) GetMoves(d hashing.Digest) ([]*movecode.Record, error) {
	buf, err := a.get(key(movesPrefix, []byte(d)))
	if err != nil {
		return nil, errors.Wrapf(err, "moves for %s", d)
	}
	if len(buf)%moveSize != 0 {
		return nil, errors.Format("store.GetMoves", string(d), fmt.Sprintf("%d bytes is not a whole number of moves", len(buf)))
	}

	moves := make([]*movecode.Record, 0, len(buf)/moveSize)
	for i := 0; i < len(buf); i += moveSize {
		r, err := movecode.Decode(int64(binary.BigEndian.Uint32(buf[i:])))
		if err != nil {
			return nil, errors.Wrapf(err, "move %d of %s", i/moveSize+1, d)
		}
		moves = append(moves, r)
	}
	return moves, nil
}

// PutPosition records that the position with identifier id occurs in the
// content with digest d.
func (a *Archive) PutPosition(id *big.Int, d hashing.Digest) error {
	rec, err := fixedwidth.Encode(id)
	if err != nil {
		return err
	}
	if err := a.db.Set(key(positionPrefix, rec), []byte(d), a.writeOpts); err != nil {
		return errors.Wrapf(err, "storing position %s", id)
	}
	return nil
}

// GetPosition returns the digest recorded for position id.
func (a *Archive) GetPosition(id *big.Int) (hashing.Digest, error) {
	rec, err := fixedwidth.Encode(id)
	if err != nil {
		return "", err
	}
	v, err := a.get(key(positionPrefix, rec))
	if err != nil {
		return "", errors.Wrapf(err, "position %s", id)
	}
	return hashing.Digest(v), nil
}

// Positions lists every stored position identifier in ascending order.
func (a *Archive) Positions() ([]*big.Int, error) {
	iter, err := a.db.NewIter(&pebble.IterOptions{
		LowerBound: positionPrefix,
		UpperBound: []byte("p0"),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var out []*big.Int
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := fixedwidth.Decode(iter.Key()[len(positionPrefix):])
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, iter.Error()
}

// PositionKey renders a position identifier as a compact printable key,
// suitable for URLs and other whitespace-free contexts.
func PositionKey(id *big.Int) (string, error) {
	if _, err := fixedwidth.Encode(id); err != nil {
		return "", err
	}
	return alphabet.Encode(id)
}

// ParsePositionKey reverses PositionKey.
func ParsePositionKey(s string) (*big.Int, error) {
	id, err := alphabet.Decode(s)
	if err != nil {
		return nil, err
	}
	if _, err := fixedwidth.Encode(id); err != nil {
		return nil, err
	}
	return id, nil
}
