package doc

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sbson/endian"
	"github.com/arloliu/sbson/errs"
	"github.com/arloliu/sbson/format"
	"github.com/arloliu/sbson/section"
)

// buildTestMap makes a map of n entries with shuffled insertion order so
// layout code cannot accidentally rely on pre-sorted input. Key i maps to
// Int32(i).
func buildTestMap(n int, rng *rand.Rand) *Map {
	order := rng.Perm(n)
	m := NewMap()
	for _, i := range order {
		m.Put(fmt.Sprintf("key-%05d", i), Int32(int32(i))) //nolint:gosec
	}

	return m
}

func TestMapStrategies_Lookup(t *testing.T) {
	strategies := []struct {
		name     string
		strategy format.MapStrategy
		kind     format.ElementType
	}{
		{"sorted array", format.StrategySortedArray, format.TypeMap},
		{"eytzinger", format.StrategyEytzinger, format.TypeMap},
		{"chd", format.StrategyCHD, format.TypeCHDMap},
	}
	sizes := []int{1, 2, 3, 7, 16, 17, 100, 1000}

	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			for _, n := range sizes {
				t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
					rng := rand.New(rand.NewSource(int64(n)))
					m := buildTestMap(n, rng)

					data, err := Encode(m, WithMapStrategy(st.strategy))
					require.NoError(t, err)

					cur, err := NewCursor(data)
					require.NoError(t, err)
					require.Equal(t, st.kind, cur.Kind())

					count, err := cur.MapLen()
					require.NoError(t, err)
					require.Equal(t, n, count)

					for i := range n {
						key := fmt.Sprintf("key-%05d", i)
						val, getErr := cur.MapGet(key)
						require.NoError(t, getErr, "key %s", key)
						v, valErr := val.Int32()
						require.NoError(t, valErr)
						require.Equal(t, int32(i), v) //nolint:gosec
					}

					for _, miss := range []string{"", "absent", "key-", "key-99999", "zzz"} {
						_, getErr := cur.MapGet(miss)
						require.ErrorIs(t, getErr, errs.ErrKeyNotFound, "miss %q", miss)
					}
				})
			}
		})
	}
}

func TestMapStrategies_IterationOrder(t *testing.T) {
	const n = 50
	rng := rand.New(rand.NewSource(42))
	m := buildTestMap(n, rng)

	wantSorted := make([]string, n)
	for i := range n {
		wantSorted[i] = fmt.Sprintf("key-%05d", i)
	}

	t.Run("sorted and eytzinger iterate in key order", func(t *testing.T) {
		for _, strategy := range []format.MapStrategy{format.StrategySortedArray, format.StrategyEytzinger} {
			data, err := Encode(m, WithMapStrategy(strategy))
			require.NoError(t, err)

			cur, err := NewCursor(data)
			require.NoError(t, err)

			var got []string
			for key := range cur.MapKeys() {
				got = append(got, key)
			}
			require.Equal(t, wantSorted, got, "strategy %v", strategy)
		}
	})

	t.Run("chd iterates every key once in stored order", func(t *testing.T) {
		data, err := Encode(m, WithMapStrategy(format.StrategyCHD))
		require.NoError(t, err)

		cur, err := NewCursor(data)
		require.NoError(t, err)

		var got []string
		for i := 0; i < n; i++ {
			key, keyErr := cur.KeyAt(i)
			require.NoError(t, keyErr)
			got = append(got, key)
		}

		var iterated []string
		for key := range cur.MapKeys() {
			iterated = append(iterated, key)
		}
		require.Equal(t, got, iterated, "MapKeys matches stored order")

		sort.Strings(got)
		require.Equal(t, wantSorted, got, "every key appears exactly once")
	})
}

func TestMapStrategies_EntriesMatchKeys(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := buildTestMap(30, rng)

	for _, strategy := range []format.MapStrategy{
		format.StrategySortedArray, format.StrategyEytzinger, format.StrategyCHD,
	} {
		data, err := Encode(m, WithMapStrategy(strategy))
		require.NoError(t, err)

		cur, err := NewCursor(data)
		require.NoError(t, err)

		seen := 0
		for key, val := range cur.MapEntries() {
			v, valErr := val.Int32()
			require.NoError(t, valErr)
			require.Equal(t, fmt.Sprintf("key-%05d", v), key)
			seen++
		}
		require.Equal(t, 30, seen)
	}
}

func TestAutoStrategy_Selection(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	layoutOf := func(t *testing.T, data []byte) (format.ElementType, format.MapLayout) {
		t.Helper()
		cur, err := NewCursor(data)
		require.NoError(t, err)
		if cur.Kind() == format.TypeCHDMap {
			return format.TypeCHDMap, 0
		}

		var header section.MapHeader
		require.NoError(t, header.Parse(data[1:], endian.GetLittleEndianEngine()))

		return format.TypeMap, header.Layout
	}

	tests := []struct {
		name       string
		n          int
		opts       []EncoderOption
		wantKind   format.ElementType
		wantLayout format.MapLayout
	}{
		{
			name:       "small map stays sorted",
			n:          5,
			opts:       []EncoderOption{WithCHDThreshold(50), WithEytzingerThreshold(8)},
			wantKind:   format.TypeMap,
			wantLayout: format.LayoutSorted,
		},
		{
			name:       "at eytzinger threshold stays sorted",
			n:          8,
			opts:       []EncoderOption{WithCHDThreshold(50), WithEytzingerThreshold(8)},
			wantKind:   format.TypeMap,
			wantLayout: format.LayoutSorted,
		},
		{
			name:       "above eytzinger threshold",
			n:          9,
			opts:       []EncoderOption{WithCHDThreshold(50), WithEytzingerThreshold(8)},
			wantKind:   format.TypeMap,
			wantLayout: format.LayoutEytzinger,
		},
		{
			name:     "at chd threshold",
			n:        50,
			opts:     []EncoderOption{WithCHDThreshold(50), WithEytzingerThreshold(8)},
			wantKind: format.TypeCHDMap,
		},
		{
			name:       "defaults keep mid-size maps on eytzinger",
			n:          100,
			wantKind:   format.TypeMap,
			wantLayout: format.LayoutEytzinger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(buildTestMap(tt.n, rng), tt.opts...)
			require.NoError(t, err)

			kind, layout := layoutOf(t, data)
			require.Equal(t, tt.wantKind, kind)
			if kind == format.TypeMap {
				require.Equal(t, tt.wantLayout, layout)
			}
		})
	}
}

func TestPerMapStrategy_OverridesEncoder(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	inner := buildTestMap(4, rng).WithStrategy(format.StrategyCHD)
	root := NewMap().
		Put("inner", inner).
		Put("plain", buildTestMap(4, rng))

	data, err := Encode(root, WithMapStrategy(format.StrategySortedArray))
	require.NoError(t, err)

	cur, err := NewCursor(data)
	require.NoError(t, err)
	require.Equal(t, format.TypeMap, cur.Kind())

	innerCur, err := cur.MapGet("inner")
	require.NoError(t, err)
	require.Equal(t, format.TypeCHDMap, innerCur.Kind())

	plainCur, err := cur.MapGet("plain")
	require.NoError(t, err)
	require.Equal(t, format.TypeMap, plainCur.Kind())
}

func TestCHDMap_Large(t *testing.T) {
	if testing.Short() {
		t.Skip("large map construction")
	}

	const n = 10000
	rng := rand.New(rand.NewSource(99))
	m := buildTestMap(n, rng)

	// At the default threshold the Auto strategy picks CHD on its own.
	data, err := Encode(m)
	require.NoError(t, err)

	cur, err := NewCursor(data)
	require.NoError(t, err)
	require.Equal(t, format.TypeCHDMap, cur.Kind())

	for i := 0; i < n; i += 37 {
		key := fmt.Sprintf("key-%05d", i)
		val, getErr := cur.MapGet(key)
		require.NoError(t, getErr)
		v, valErr := val.Int32()
		require.NoError(t, valErr)
		require.Equal(t, int32(i), v) //nolint:gosec
	}

	_, err = cur.MapGet("key-10000")
	require.ErrorIs(t, err, errs.ErrKeyNotFound)
}

func TestCHDMap_EmptyAndSingle(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		data, err := Encode(NewMap(), WithMapStrategy(format.StrategyCHD))
		require.NoError(t, err)

		cur, err := NewCursor(data)
		require.NoError(t, err)
		require.Equal(t, format.TypeCHDMap, cur.Kind())

		n, err := cur.MapLen()
		require.NoError(t, err)
		require.Zero(t, n)

		_, err = cur.MapGet("missing")
		require.ErrorIs(t, err, errs.ErrKeyNotFound)
	})

	t.Run("single entry", func(t *testing.T) {
		data, err := Encode(NewMap().Put("only", Double(1.5)), WithMapStrategy(format.StrategyCHD))
		require.NoError(t, err)

		cur, err := NewCursor(data)
		require.NoError(t, err)

		val, err := cur.MapGet("only")
		require.NoError(t, err)
		v, err := val.Double()
		require.NoError(t, err)
		require.Equal(t, 1.5, v)
	})
}
