package doc

import (
	"iter"

	"github.com/arloliu/sbson/format"
)

// Iterators are lazy, finite, and restartable: each range statement walks
// the buffer afresh. They silently stop at the first decode error so a
// corrupt buffer terminates iteration early instead of panicking; strict
// callers that need the error use the indexed accessors (KeyAt, EntryAt,
// ArrayAt) instead.

// MapKeys iterates the keys of a map element.
//
// Order: ascending byte-lexicographic for sorted maps and Eytzinger maps
// (an in-order traversal of the implicit tree), hash-slot order for CHD
// maps. Callers must not assume sorted iteration over a CHD map.
//
// Non-map elements yield nothing.
func (c Cursor) MapKeys() iter.Seq[string] {
	return func(yield func(string) bool) {
		meta, err := c.parseMapMeta()
		if err != nil {
			return
		}

		c.iterPositions(meta, func(p int) bool {
			key, kerr := c.keyAtPos(meta, p)
			if kerr != nil {
				return false
			}

			return yield(string(key))
		})
	}
}

// MapEntries iterates (key, value cursor) pairs of a map element, in the
// same order as MapKeys.
func (c Cursor) MapEntries() iter.Seq2[string, Cursor] {
	return func(yield func(string, Cursor) bool) {
		meta, err := c.parseMapMeta()
		if err != nil {
			return
		}

		c.iterPositions(meta, func(p int) bool {
			key, kerr := c.keyAtPos(meta, p)
			if kerr != nil {
				return false
			}
			value, verr := c.valueAtPos(meta, p)
			if verr != nil {
				return false
			}

			return yield(string(key), value)
		})
	}
}

// ArrayValues iterates (index, element cursor) pairs of an array element in
// index order. Non-array elements yield nothing.
func (c Cursor) ArrayValues() iter.Seq2[int, Cursor] {
	return func(yield func(int, Cursor) bool) {
		meta, err := c.parseArrayMeta()
		if err != nil {
			return
		}

		for i := range meta.count {
			elem, eerr := c.arrayElem(meta, i)
			if eerr != nil {
				return
			}
			if !yield(i, elem) {
				return
			}
		}
	}
}

// iterPositions walks physical descriptor positions in iteration order:
// stored order for sorted and CHD maps (which is ascending-key and
// hash-slot order respectively), in-order tree traversal for Eytzinger
// maps.
func (c Cursor) iterPositions(meta mapMeta, yield func(p int) bool) {
	if c.tag == format.TypeMap && meta.layout == format.LayoutEytzinger {
		eytzingerInorder(meta.count, yield)
		return
	}

	for p := range meta.count {
		if !yield(p) {
			return
		}
	}
}
