package doc

import (
	"bytes"
	"fmt"

	"github.com/arloliu/sbson/encoding"
	"github.com/arloliu/sbson/errs"
	"github.com/arloliu/sbson/format"
	"github.com/arloliu/sbson/internal/chd"
	"github.com/arloliu/sbson/internal/hash"
	"github.com/arloliu/sbson/section"
)

// mapMeta is the decoded header of a map element: entry count, physical
// layout, and where its descriptor table starts (container-relative).
type mapMeta struct {
	count     int
	layout    format.MapLayout // tag 0x03 only
	seed      uint32           // tag 0x20 only
	bucketLen int              // tag 0x20 only
	descStart int
}

// parseMapMeta decodes and validates the header of either map tag. It also
// verifies the full descriptor table lies inside the buffer, so per-entry
// reads only need local checks afterwards.
func (c Cursor) parseMapMeta() (mapMeta, error) {
	var meta mapMeta

	switch c.tag {
	case format.TypeMap:
		var header section.MapHeader
		if err := header.Parse(c.buf[c.offset+section.TagSize:], wireEngine); err != nil {
			return meta, err
		}
		meta.count = header.Count
		meta.layout = header.Layout
		meta.descStart = section.MapDescTableOffset

	case format.TypeCHDMap:
		var header section.CHDHeader
		if err := header.Parse(c.buf[c.offset+section.TagSize:], wireEngine); err != nil {
			return meta, err
		}
		meta.count = header.Count
		meta.seed = header.Seed
		meta.bucketLen = section.CHDBucketCount(header.Count)
		meta.descStart = section.CHDDisplacementOffset + meta.bucketLen*section.DisplacementSize

	default:
		return meta, fmt.Errorf("%w: element is %s, want a map", errs.ErrTypeMismatch, c.tag)
	}

	tableEnd := c.offset + meta.descStart + meta.count*section.DescriptorSize
	if tableEnd > len(c.buf) {
		return meta, fmt.Errorf("%w: descriptor table of %d entries ends at %d, buffer is %d bytes",
			errs.ErrTruncatedBuffer, meta.count, tableEnd, len(c.buf))
	}

	return meta, nil
}

// MapLen returns the number of entries of a map element.
//
// Fails ErrTypeMismatch on non-map elements.
func (c Cursor) MapLen() (int, error) {
	meta, err := c.parseMapMeta()
	if err != nil {
		return 0, err
	}

	return meta.count, nil
}

// MapGet looks up key and returns a cursor positioned at its value.
//
// Dispatches on the map's physical layout: binary search for sorted maps,
// tree descent for Eytzinger maps, a displacement probe plus key
// verification for CHD maps. O(log N) comparisons for the first two, O(1)
// average for CHD.
//
// Returns:
//   - Cursor: positioned at the value element
//   - error: ErrKeyNotFound if absent; ErrTypeMismatch on non-map elements;
//     decode errors on corrupt buffers
func (c Cursor) MapGet(key string) (Cursor, error) {
	meta, err := c.parseMapMeta()
	if err != nil {
		return Cursor{}, err
	}

	target := []byte(key)

	switch {
	case c.tag == format.TypeCHDMap:
		return c.chdGet(meta, target)
	case meta.layout == format.LayoutEytzinger:
		return c.eytzingerGet(meta, target)
	default:
		return c.sortedGet(meta, target)
	}
}

// sortedGet is a standard iterative binary search over descriptors stored
// in ascending key order.
func (c Cursor) sortedGet(meta mapMeta, target []byte) (Cursor, error) {
	lo, hi := 0, meta.count-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)

		key, err := c.keyAtPos(meta, mid)
		if err != nil {
			return Cursor{}, err
		}

		switch cmp := bytes.Compare(target, key); {
		case cmp == 0:
			return c.valueAtPos(meta, mid)
		case cmp < 0:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}

	return Cursor{}, fmt.Errorf("%w: %q", errs.ErrKeyNotFound, target)
}

// eytzingerGet descends the implicit BST from heap node 1. Each step moves
// to node 2k or 2k+1, i.e. a predictable, prefetchable position, which is
// the point of the layout.
func (c Cursor) eytzingerGet(meta mapMeta, target []byte) (Cursor, error) {
	k := 1
	for k <= meta.count {
		key, err := c.keyAtPos(meta, k-1)
		if err != nil {
			return Cursor{}, err
		}

		switch cmp := bytes.Compare(target, key); {
		case cmp == 0:
			return c.valueAtPos(meta, k-1)
		case cmp < 0:
			k = 2 * k
		default:
			k = 2*k + 1
		}
	}

	return Cursor{}, fmt.Errorf("%w: %q", errs.ErrKeyNotFound, target)
}

// chdGet probes the perfect hash: bucket from the primary hash, slot from
// the bucket's displacement pair, then a mandatory key-byte comparison. The
// structure is perfect only over the inserted key set, so the comparison is
// what turns a foreign key's slot hit into a clean miss.
func (c Cursor) chdGet(meta mapMeta, target []byte) (Cursor, error) {
	if meta.count == 0 {
		return Cursor{}, fmt.Errorf("%w: %q", errs.ErrKeyNotFound, target)
	}

	g, f1, f2 := hash.Triple(meta.seed, target)
	bucket := int(g % uint32(meta.bucketLen)) //nolint:gosec

	wordOff := c.offset + section.CHDDisplacementOffset + bucket*section.DisplacementSize
	word, err := encoding.ReadUint32At(c.buf, wordOff, wireEngine)
	if err != nil {
		return Cursor{}, err
	}
	d1, d2 := section.UnpackDisplacement(word)

	slot := chd.Slot(f1, f2, d1, d2, meta.count)

	key, err := c.keyAtPos(meta, slot)
	if err != nil {
		return Cursor{}, err
	}
	if !bytes.Equal(key, target) {
		return Cursor{}, fmt.Errorf("%w: %q", errs.ErrKeyNotFound, target)
	}

	return c.valueAtPos(meta, slot)
}

// descriptorAt reads the descriptor at physical position p. parseMapMeta
// already verified the table bounds.
func (c Cursor) descriptorAt(meta mapMeta, p int) (section.Descriptor, error) {
	var desc section.Descriptor
	off := c.offset + meta.descStart + p*section.DescriptorSize
	err := desc.Parse(c.buf[off:off+section.DescriptorSize], wireEngine)

	return desc, err
}

// keyAtPos resolves the key bytes at physical position p (zero copy).
func (c Cursor) keyAtPos(meta mapMeta, p int) ([]byte, error) {
	desc, err := c.descriptorAt(meta, p)
	if err != nil {
		return nil, err
	}

	return section.ResolveKey(c.buf, c.offset, desc)
}

// valueAtPos returns a cursor at the value of physical position p.
func (c Cursor) valueAtPos(meta mapMeta, p int) (Cursor, error) {
	desc, err := c.descriptorAt(meta, p)
	if err != nil {
		return Cursor{}, err
	}

	return cursorAt(c.buf, c.offset+desc.ValueOffset)
}

// KeyAt returns the key at stored position i. Stored order is a property of
// the map's physical layout (sorted, Eytzinger-permuted, or hash-slot
// order) and is documented as implementation-defined; use MapKeys for
// order-aware iteration.
//
// Fails ErrIndexOutOfRange outside [0, MapLen).
func (c Cursor) KeyAt(i int) (string, error) {
	meta, err := c.parseMapMeta()
	if err != nil {
		return "", err
	}
	if i < 0 || i >= meta.count {
		return "", fmt.Errorf("%w: entry %d of %d", errs.ErrIndexOutOfRange, i, meta.count)
	}

	key, err := c.keyAtPos(meta, i)
	if err != nil {
		return "", err
	}

	return string(key), nil
}

// EntryAt returns the key and value cursor at stored position i. See KeyAt
// for the ordering caveat.
func (c Cursor) EntryAt(i int) (string, Cursor, error) {
	meta, err := c.parseMapMeta()
	if err != nil {
		return "", Cursor{}, err
	}
	if i < 0 || i >= meta.count {
		return "", Cursor{}, fmt.Errorf("%w: entry %d of %d", errs.ErrIndexOutOfRange, i, meta.count)
	}

	key, err := c.keyAtPos(meta, i)
	if err != nil {
		return "", Cursor{}, err
	}

	value, err := c.valueAtPos(meta, i)
	if err != nil {
		return "", Cursor{}, err
	}

	return string(key), value, nil
}
