package hash

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTriple_Deterministic(t *testing.T) {
	key := []byte("cpu.usage")

	g1, f11, f21 := Triple(42, key)
	g2, f12, f22 := Triple(42, key)

	require.Equal(t, g1, g2)
	require.Equal(t, f11, f12)
	require.Equal(t, f21, f22)
}

func TestTriple_SeedChangesAllComponents(t *testing.T) {
	key := []byte("cpu.usage")

	g1, f11, f21 := Triple(1, key)
	g2, f12, f22 := Triple(2, key)

	// A different seed should perturb every component for a typical key.
	require.NotEqual(t, [3]uint32{g1, f11, f21}, [3]uint32{g2, f12, f22})
}

func TestTriple_EmptyKey(t *testing.T) {
	g1, f11, f21 := Triple(7, nil)
	g2, f12, f22 := Triple(7, []byte{})

	require.Equal(t, g1, g2)
	require.Equal(t, f11, f12)
	require.Equal(t, f21, f22)
}

func TestTriple_Distribution(t *testing.T) {
	// Sanity check: hashing many distinct keys should produce mostly
	// distinct (f1, f2) pairs. This guards against a degenerate wiring of
	// the digests (e.g. both halves from the same hash).
	const n = 10000
	seen := make(map[uint64]struct{}, n)
	for i := range n {
		_, f1, f2 := Triple(99, fmt.Appendf(nil, "key-%d", i))
		seen[uint64(f1)<<32|uint64(f2)] = struct{}{}
	}

	require.GreaterOrEqual(t, len(seen), n-2, "too many (f1, f2) collisions")
}

func BenchmarkTriple(b *testing.B) {
	key := []byte("service.request.latency.p99")
	for range b.N {
		Triple(42, key)
	}
}
