// Package hash provides the keyed hash family used by CHD map construction
// and lookup.
//
// The three 32-bit values returned by Triple drive the whole perfect-hash
// scheme: g selects the bucket, and (f1, f2) combine with the bucket's
// displacement pair to select the final slot. The same seed travels in the
// encoded buffer, so construction and lookup always agree. Lookups re-verify
// key bytes after the slot computation, so the hash family only affects
// distribution, never correctness.
package hash

import "github.com/cespare/xxhash/v2"

// secondarySeedMix derives the secondary digest seed from the primary one.
// Any odd constant with well-mixed bits works; this is the 64-bit golden
// ratio used by splitmix64.
const secondarySeedMix = 0x9E3779B97F4A7C15

// Triple computes the (g, f1, f2) hash triple of key under the given seed.
//
// g and f1 are the high and low halves of a seeded xxHash64 digest of key;
// f2 is the low half of a second digest keyed with a derived seed, so the
// pair (f1, f2) is effectively 96 bits of hash material per key.
//
// The function allocates nothing; both digests live on the stack.
//
// Parameters:
//   - seed: CHD table seed (stored in the encoded buffer)
//   - key: key bytes to hash
//
// Returns:
//   - g: bucket-selection hash
//   - f1, f2: slot-selection hashes combined with the displacement pair
func Triple(seed uint32, key []byte) (g, f1, f2 uint32) {
	var d xxhash.Digest

	d.ResetWithSeed(uint64(seed))
	_, _ = d.Write(key)
	h1 := d.Sum64()

	d.ResetWithSeed(uint64(seed) ^ secondarySeedMix)
	_, _ = d.Write(key)
	h2 := d.Sum64()

	return uint32(h1 >> 32), uint32(h1), uint32(h2) //nolint:gosec
}
