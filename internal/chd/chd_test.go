package chd

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/arloliu/sbson/errs"
	"github.com/arloliu/sbson/internal/hash"
	"github.com/arloliu/sbson/section"
	"github.com/stretchr/testify/require"
)

// resolve replays the lookup path against a built table: bucket from g,
// displacement from the table, slot from (f1, f2, d1, d2).
func resolve(table *Table, key []byte, n int) int {
	g, f1, f2 := hash.Triple(table.Seed, key)
	b := g % uint32(len(table.Displacements))
	d1, d2 := section.UnpackDisplacement(table.Displacements[b])

	return Slot(f1, f2, d1, d2, n)
}

func randomKeys(t *testing.T, rng *rand.Rand, n int) [][]byte {
	t.Helper()

	seen := make(map[string]struct{}, n)
	keys := make([][]byte, 0, n)
	for len(keys) < n {
		key := fmt.Appendf(nil, "key-%x-%d", rng.Uint64(), len(keys))
		if _, dup := seen[string(key)]; dup {
			continue
		}
		seen[string(key)] = struct{}{}
		keys = append(keys, key)
	}

	return keys
}

func TestBuild_ResolvesEveryKey(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{1, 2, 5, 6, 17, 100, 1000, 10000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			keys := randomKeys(t, rng, n)

			table, err := Build(keys, DefaultMaxAttempts)
			require.NoError(t, err)
			require.Len(t, table.Displacements, section.CHDBucketCount(n))
			require.Len(t, table.Slots, n)

			// Slots must be a permutation of the key indexes.
			seen := make(map[int]struct{}, n)
			for _, idx := range table.Slots {
				require.GreaterOrEqual(t, idx, 0)
				require.Less(t, idx, n)
				_, dup := seen[idx]
				require.False(t, dup, "key index %d placed twice", idx)
				seen[idx] = struct{}{}
			}

			// Every key must resolve to the slot holding it.
			for i, key := range keys {
				slot := resolve(table, key, n)
				require.Equal(t, i, table.Slots[slot], "key %q resolved to the wrong slot", key)
			}
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	keys := randomKeys(t, rng, 500)

	t1, err := Build(keys, DefaultMaxAttempts)
	require.NoError(t, err)

	t2, err := Build(keys, DefaultMaxAttempts)
	require.NoError(t, err)

	require.Equal(t, t1.Seed, t2.Seed)
	require.Equal(t, t1.Displacements, t2.Displacements)
	require.Equal(t, t1.Slots, t2.Slots)
}

func TestBuild_EmptyKeySet(t *testing.T) {
	table, err := Build(nil, DefaultMaxAttempts)
	require.NoError(t, err)
	require.Empty(t, table.Displacements)
	require.Empty(t, table.Slots)
}

func TestBuild_ExhaustedCeilingFails(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	keys := randomKeys(t, rng, 64)

	_, err := Build(keys, 0)
	require.ErrorIs(t, err, errs.ErrCHDConstructionFailed)

	_, err = Build(keys, -1)
	require.ErrorIs(t, err, errs.ErrCHDConstructionFailed)
}

func TestSlot_WrapsUint32(t *testing.T) {
	// The sum is computed mod 2^32 before the final mod n; feed values that
	// overflow 32 bits to pin the wrap behavior.
	f1, f2 := uint32(0xFFFFFFFF), uint32(0xFFFFFFFF)
	d1, d2 := uint16(0xFFFF), uint16(0xFFFF)
	slot := Slot(f1, f2, d1, d2, 7)
	require.GreaterOrEqual(t, slot, 0)
	require.Less(t, slot, 7)

	manual := (uint32(d2) + f1*uint32(d1) + f2) % 7
	require.Equal(t, int(manual), slot)
}

func BenchmarkBuild10k(b *testing.B) {
	rng := rand.New(rand.NewSource(4))
	keys := make([][]byte, 10000)
	for i := range keys {
		keys[i] = fmt.Appendf(nil, "bench-key-%x-%d", rng.Uint64(), i)
	}

	b.ResetTimer()
	for range b.N {
		if _, err := Build(keys, DefaultMaxAttempts); err != nil {
			b.Fatal(err)
		}
	}
}
