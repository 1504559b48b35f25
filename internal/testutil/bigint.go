package testutil

import (
	"math/big"
	"math/rand"
	"testing"
)

// MustBigInt parses a base-10 integer literal, failing the test on error.
func MustBigInt(t testing.TB, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("invalid integer literal %q", s)
	}
	return v
}

// Pow2 returns 2^n.
func Pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

// RandomBigInts returns n pseudo-random non-negative integers of at most
// maxBits bits each. The same seed always yields the same values.
func RandomBigInts(seed int64, n int, maxBits uint) []*big.Int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]*big.Int, 0, n)
	for i := 0; i < n; i++ {
		bitLen := uint(rng.Int63n(int64(maxBits)) + 1)
		limit := Pow2(bitLen)
		out = append(out, new(big.Int).Rand(rng, limit))
	}
	return out
}
