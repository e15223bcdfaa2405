// Package chd builds the compress-hash-displace minimal perfect hash tables
// behind tag 0x20 maps.
//
// A table maps N fixed keys onto N slots with no empty slots. Keys are
// partitioned into ceil(N/5) buckets by the primary hash g; each bucket then
// searches for a displacement pair (d1, d2) under which every key in the
// bucket lands, via (d2 + f1*d1 + f2) mod N, on a still-free slot. Buckets
// are processed largest-first because big buckets are the hardest to place
// and should see the emptiest table.
//
// The displacement search is a bounded retry loop, not an open-ended one:
// each half of the pair is searched below min(N, 65535), and a whole-table
// retry with a fresh seed happens at most maxAttempts times. Exhausting the
// ceiling returns ErrCHDConstructionFailed, so construction time is bounded
// and predictable; it never hangs.
package chd

import (
	"fmt"
	"sort"

	"github.com/arloliu/sbson/errs"
	"github.com/arloliu/sbson/internal/hash"
	"github.com/arloliu/sbson/section"
)

// DefaultMaxAttempts is the default seed attempt ceiling. Random key sets
// virtually always succeed on the first seed; the headroom covers
// adversarial or degenerate distributions.
const DefaultMaxAttempts = 16

// Table is a successfully constructed perfect hash table. It carries
// everything the encoder needs to lay out a tag 0x20 map.
type Table struct {
	// Seed is the winning hash seed; it travels in the encoded header.
	Seed uint32

	// Displacements holds one packed (d1<<16 | d2) word per bucket, indexed
	// by bucket number.
	Displacements []uint32

	// Slots maps final slot positions to indexes into the key slice passed
	// to Build: the key at Slots[s] occupies slot s.
	Slots []int
}

// Slot computes the final slot of a key with slot hashes (f1, f2) under the
// displacement pair (d1, d2) in a table of n slots.
//
// The sum wraps in uint32 arithmetic; construction and lookup share this
// function so the wrap behavior can never diverge.
func Slot(f1, f2 uint32, d1, d2 uint16, n int) int {
	return int((uint32(d2) + f1*uint32(d1) + f2) % uint32(n)) //nolint:gosec
}

type bucketKey struct {
	f1, f2 uint32
	idx    int
}

// Build constructs a perfect hash table over keys.
//
// Keys must be pairwise distinct; the encoder has already rejected duplicate
// map keys before calling Build. maxAttempts bounds the number of seeds
// tried; values below 1 fail immediately.
//
// Returns:
//   - *Table: the constructed table
//   - error: ErrCHDConstructionFailed when the attempt ceiling is exhausted
func Build(keys [][]byte, maxAttempts int) (*Table, error) {
	n := len(keys)
	if n == 0 {
		return &Table{}, nil
	}

	bucketCount := section.CHDBucketCount(n)
	dLimit := min(n, section.MaxDisplacement)

	for attempt := range maxAttempts {
		seed := seedForAttempt(attempt)
		if table, ok := tryBuild(keys, seed, bucketCount, dLimit); ok {
			return table, nil
		}
	}

	return nil, fmt.Errorf("%w: no seed succeeded within %d attempts for %d keys",
		errs.ErrCHDConstructionFailed, maxAttempts, n)
}

// tryBuild attempts one full table construction under the given seed.
func tryBuild(keys [][]byte, seed uint32, bucketCount, dLimit int) (*Table, bool) {
	n := len(keys)

	buckets := make([][]bucketKey, bucketCount)
	for i, key := range keys {
		g, f1, f2 := hash.Triple(seed, key)
		b := int(g % uint32(bucketCount)) //nolint:gosec
		buckets[b] = append(buckets[b], bucketKey{f1: f1, f2: f2, idx: i})
	}

	// Two keys sharing a bucket and the full (f1, f2) pair can never be
	// separated by any displacement; only a new seed can help.
	for _, bucket := range buckets {
		for i := 1; i < len(bucket); i++ {
			for j := range i {
				if bucket[i].f1 == bucket[j].f1 && bucket[i].f2 == bucket[j].f2 {
					return nil, false
				}
			}
		}
	}

	order := make([]int, bucketCount)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(buckets[order[a]]) > len(buckets[order[b]])
	})

	table := &Table{
		Seed:          seed,
		Displacements: make([]uint32, bucketCount),
		Slots:         make([]int, n),
	}
	for i := range table.Slots {
		table.Slots[i] = -1
	}

	// claimed uses a generation counter so rolling back a failed (d1, d2)
	// try costs nothing; occupied marks slots won by finished buckets.
	occupied := make([]bool, n)
	claimed := make([]int, n)
	gen := 0
	slots := make([]int, 0, 8)

	for _, b := range order {
		bucket := buckets[b]
		if len(bucket) == 0 {
			break // order is descending by size; the rest are empty too
		}

		placed := false
	search:
		for d1 := 0; d1 < dLimit; d1++ {
			for d2 := 0; d2 < dLimit; d2++ {
				gen++
				slots = slots[:0]
				ok := true
				for _, k := range bucket {
					slot := Slot(k.f1, k.f2, uint16(d1), uint16(d2), n) //nolint:gosec
					if occupied[slot] || claimed[slot] == gen {
						ok = false
						break
					}
					claimed[slot] = gen
					slots = append(slots, slot)
				}
				if !ok {
					continue
				}

				for i, slot := range slots {
					occupied[slot] = true
					table.Slots[slot] = bucket[i].idx
				}
				table.Displacements[b] = section.PackDisplacement(uint16(d1), uint16(d2)) //nolint:gosec
				placed = true

				break search
			}
		}

		if !placed {
			return nil, false
		}
	}

	return table, true
}

// seedForAttempt derives a well-mixed seed from the attempt counter
// (splitmix64 finalizer), so construction is deterministic for a given key
// set and ceiling.
func seedForAttempt(attempt int) uint32 {
	z := uint64(attempt)*0x9E3779B97F4A7C15 + 0xD1B54A32D192ED03 //nolint:gosec
	z ^= z >> 33
	z *= 0xFF51AFD7ED558CCD
	z ^= z >> 33

	return uint32(z) //nolint:gosec
}
