package alphabet

import (
	"testing"

	"github.com/lgbarn/chesscodec-go/internal/testutil"
)

func BenchmarkEncode(b *testing.B) {
	v := testutil.Pow2(200)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Encode(v)
	}
}

func BenchmarkDecode(b *testing.B) {
	s, _ := Encode(testutil.Pow2(200))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Decode(s)
	}
}
