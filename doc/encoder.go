package doc

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/arloliu/sbson/encoding"
	"github.com/arloliu/sbson/endian"
	"github.com/arloliu/sbson/errs"
	"github.com/arloliu/sbson/format"
	"github.com/arloliu/sbson/internal/chd"
	"github.com/arloliu/sbson/internal/options"
	"github.com/arloliu/sbson/internal/pool"
	"github.com/arloliu/sbson/section"
)

// Encoder lays out a value tree into one contiguous encoded buffer.
//
// Encoding is bottom-up: children are staged first in a pooled scratch
// buffer, then the container's header is assembled in front of them once
// every child size, and therefore every relative offset, is known. The
// result is exact-size and handed to the caller; encoding is all-or-nothing
// and no partially built buffer ever escapes.
//
// An Encoder is single-writer: one Encode call owns the scratch state at a
// time. Encode may be called repeatedly, but not concurrently from multiple
// goroutines.
type Encoder struct {
	engine             endian.EndianEngine
	strategy           format.MapStrategy
	chdThreshold       int
	eytzingerThreshold int
	chdMaxAttempts     int
	sizeLimit          int
}

// NewEncoder creates an Encoder with the given options applied over the
// defaults: Auto map strategy, CHD above DefaultCHDThreshold entries,
// Eytzinger above DefaultEytzingerThreshold entries, no document size limit.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		engine:             endian.GetLittleEndianEngine(),
		strategy:           format.StrategyAuto,
		chdThreshold:       DefaultCHDThreshold,
		eytzingerThreshold: DefaultEytzingerThreshold,
		chdMaxAttempts:     DefaultCHDMaxAttempts,
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Encode encodes a value tree into a new immutable buffer.
//
// Ownership of the returned buffer transfers to the caller; the encoder
// retains no reference to it.
//
// Returns:
//   - []byte: the encoded document
//   - error: ErrDuplicateKey, ErrInvalidString, ErrSizeLimitExceeded, or
//     ErrCHDConstructionFailed; on error no buffer is returned
func (e *Encoder) Encode(v Value) ([]byte, error) {
	scratch := pool.GetDocBuffer()
	defer pool.PutDocBuffer(scratch)

	if err := e.encodeValue(scratch, v); err != nil {
		return nil, err
	}

	if e.sizeLimit > 0 && scratch.Len() > e.sizeLimit {
		return nil, fmt.Errorf("%w: document is %d bytes, limit is %d",
			errs.ErrSizeLimitExceeded, scratch.Len(), e.sizeLimit)
	}

	out := make([]byte, scratch.Len())
	copy(out, scratch.Bytes())

	return out, nil
}

// Encode is a convenience wrapper encoding v with a one-shot Encoder.
func Encode(v Value, opts ...EncoderOption) ([]byte, error) {
	e, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return e.Encode(v)
}

// encodeValue appends the complete encoding of v (tag plus payload) to bb.
func (e *Encoder) encodeValue(bb *pool.ByteBuffer, v Value) error {
	switch val := v.(type) {
	case nil:
		bb.B = append(bb.B, byte(format.TypeNull))
	case Null:
		bb.B = append(bb.B, byte(format.TypeNull))
	case Double:
		bb.B = append(bb.B, byte(format.TypeDouble))
		bb.B = encoding.AppendFloat64(bb.B, float64(val), e.engine)
	case String:
		bb.B = append(bb.B, byte(format.TypeString))
		next, err := encoding.AppendCString(bb.B, []byte(val))
		if err != nil {
			return err
		}
		bb.B = next
	case Binary:
		bb.B = append(bb.B, byte(format.TypeBinary))
		next, err := encoding.AppendBinary(bb.B, val, e.engine)
		if err != nil {
			return err
		}
		bb.B = next
	case Bool:
		bb.B = append(bb.B, byte(val.kind()))
	case Int32:
		bb.B = append(bb.B, byte(format.TypeInt32))
		bb.B = encoding.AppendInt32(bb.B, int32(val), e.engine)
	case Int64:
		bb.B = append(bb.B, byte(format.TypeInt64))
		bb.B = encoding.AppendInt64(bb.B, int64(val), e.engine)
	case Array:
		return e.encodeArray(bb, val)
	case Map:
		return e.encodeMap(bb, &val)
	case *Map:
		return e.encodeMap(bb, val)
	default:
		// The union is sealed; this is unreachable without a new variant.
		return fmt.Errorf("unsupported value type %T", v)
	}

	return nil
}

// encodeArray stages the element encodings, then assembles the array header
// (total size word plus one offset word per element) in front of them.
func (e *Encoder) encodeArray(bb *pool.ByteBuffer, arr Array) error {
	mark := bb.Len()
	n := len(arr)

	starts := make([]int, n)
	for i, child := range arr {
		starts[i] = bb.Len() - mark
		if err := e.encodeValue(bb, child); err != nil {
			return err
		}
	}
	bodyLen := bb.Len() - mark

	headerLen := section.ArrayOffsetTableOffset + n*section.ArrayOffsetSize
	total := headerLen + bodyLen
	if total > math.MaxUint32 {
		return fmt.Errorf("%w: array of %d bytes exceeds uint32 size word",
			errs.ErrSizeLimitExceeded, total)
	}

	// Shift the staged elements right to make room for the header. copy
	// has memmove semantics, so the overlap is safe.
	bb.ExtendOrGrow(headerLen)
	buf := bb.B
	copy(buf[mark+headerLen:], buf[mark:mark+bodyLen])

	buf[mark] = byte(format.TypeArray)
	e.engine.PutUint32(buf[mark+section.TagSize:], uint32(total)) //nolint:gosec
	for i, start := range starts {
		off := mark + section.ArrayOffsetTableOffset + i*section.ArrayOffsetSize
		e.engine.PutUint32(buf[off:], uint32(headerLen+start)) //nolint:gosec
	}

	return nil
}

// mapPlan is the per-map layout decision: which tag and physical descriptor
// order the map encodes with.
type mapPlan struct {
	tag      format.ElementType
	layout   format.MapLayout
	physical []int // physical position -> entry index
	table    *chd.Table
}

// encodeMap validates the entries, plans the physical layout, stages the
// value encodings in physical order, and assembles the header, descriptor
// table, and key block in front of them.
func (e *Encoder) encodeMap(bb *pool.ByteBuffer, m *Map) error {
	n := len(m.Entries)
	if n > section.MaxMapEntries {
		return fmt.Errorf("%w: map has %d entries, maximum is %d",
			errs.ErrSizeLimitExceeded, n, section.MaxMapEntries)
	}

	if err := validateKeys(m.Entries); err != nil {
		return err
	}

	plan, err := e.planMap(m)
	if err != nil {
		return err
	}

	// Key block in physical order, so descriptor reads touch keys in the
	// same order lookups walk descriptors.
	kb := section.NewKeyBlockBuilder(keyBytesHint(m.Entries))
	blockOffsets := make([]int, n)
	for p, idx := range plan.physical {
		off, addErr := kb.Add([]byte(m.Entries[idx].Key))
		if addErr != nil {
			return addErr
		}
		blockOffsets[p] = off
	}

	prefix := section.TagSize + section.MapHeaderWordSize
	if plan.tag == format.TypeCHDMap {
		prefix += section.SeedSize + section.CHDBucketCount(n)*section.DisplacementSize
	}
	descStart := prefix
	keyBlockStart := descStart + n*section.DescriptorSize
	valuesStart := keyBlockStart + kb.Len()

	// Key references are 24-bit container-relative offsets; the block's last
	// key byte must still be addressable.
	if n > 0 && keyBlockStart+kb.Len()-1 > section.MaxKeyOffset {
		return fmt.Errorf("%w: map key bytes end at offset %d, maximum is %d",
			errs.ErrSizeLimitExceeded, keyBlockStart+kb.Len()-1, section.MaxKeyOffset)
	}

	// Stage value encodings in physical order.
	mark := bb.Len()
	valStarts := make([]int, n)
	for p, idx := range plan.physical {
		valStarts[p] = bb.Len() - mark
		if err := e.encodeValue(bb, m.Entries[idx].Value); err != nil {
			return err
		}
	}
	bodyLen := bb.Len() - mark

	if valuesStart+bodyLen > math.MaxUint32 {
		return fmt.Errorf("%w: map of %d bytes exceeds uint32 offsets",
			errs.ErrSizeLimitExceeded, valuesStart+bodyLen)
	}

	bb.ExtendOrGrow(valuesStart)
	buf := bb.B
	copy(buf[mark+valuesStart:], buf[mark:mark+bodyLen])

	buf[mark] = byte(plan.tag)
	if plan.tag == format.TypeCHDMap {
		header := section.CHDHeader{Count: n, Seed: plan.table.Seed}
		copy(buf[mark+section.TagSize:], header.Bytes(e.engine))
		for b, word := range plan.table.Displacements {
			off := mark + section.CHDDisplacementOffset + b*section.DisplacementSize
			e.engine.PutUint32(buf[off:], word)
		}
	} else {
		header := section.MapHeader{Layout: plan.layout, Count: n}
		copy(buf[mark+section.TagSize:], header.Bytes(e.engine))
	}

	for p, idx := range plan.physical {
		desc := section.Descriptor{
			KeyLength:   len(m.Entries[idx].Key),
			KeyOffset:   keyBlockStart + blockOffsets[p],
			ValueOffset: valuesStart + valStarts[p],
		}
		desc.WriteToSlice(buf, mark+descStart+p*section.DescriptorSize, e.engine)
	}

	copy(buf[mark+keyBlockStart:], kb.Bytes())

	return nil
}

// planMap resolves the effective strategy and computes the physical
// descriptor order.
func (e *Encoder) planMap(m *Map) (mapPlan, error) {
	n := len(m.Entries)

	strategy := m.Strategy
	if strategy == format.StrategyAuto {
		strategy = e.strategy
	}
	if strategy == format.StrategyAuto {
		switch {
		case n >= e.chdThreshold:
			strategy = format.StrategyCHD
		case n > e.eytzingerThreshold:
			strategy = format.StrategyEytzinger
		default:
			strategy = format.StrategySortedArray
		}
	}

	sorted := sortedOrder(m.Entries)

	switch strategy {
	case format.StrategySortedArray:
		return mapPlan{tag: format.TypeMap, layout: format.LayoutSorted, physical: sorted}, nil

	case format.StrategyEytzinger:
		perm := eytzingerPermutation(n)
		physical := make([]int, n)
		for p, rank := range perm {
			physical[p] = sorted[rank]
		}

		return mapPlan{tag: format.TypeMap, layout: format.LayoutEytzinger, physical: physical}, nil

	case format.StrategyCHD:
		keys := make([][]byte, n)
		for i, entry := range m.Entries {
			keys[i] = []byte(entry.Key)
		}
		table, err := chd.Build(keys, e.chdMaxAttempts)
		if err != nil {
			return mapPlan{}, err
		}

		return mapPlan{tag: format.TypeCHDMap, physical: table.Slots, table: table}, nil

	default:
		return mapPlan{}, fmt.Errorf("invalid map strategy: %v", strategy)
	}
}

// validateKeys rejects duplicate keys, over-long keys, and keys containing
// NUL before any layout work happens.
func validateKeys(entries []Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if len(entry.Key) > section.MaxKeyLength {
			return fmt.Errorf("%w: key of %d bytes exceeds maximum %d",
				errs.ErrSizeLimitExceeded, len(entry.Key), section.MaxKeyLength)
		}
		if strings.IndexByte(entry.Key, 0) >= 0 {
			return fmt.Errorf("%w: map key contains embedded NUL", errs.ErrInvalidString)
		}
		if _, dup := seen[entry.Key]; dup {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateKey, entry.Key)
		}
		seen[entry.Key] = struct{}{}
	}

	return nil
}

// sortedOrder returns entry indexes sorted ascending by key bytes. Plain
// byte-lexicographic order: a shorter key that prefixes a longer one sorts
// first.
func sortedOrder(entries []Entry) []int {
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return entries[order[a]].Key < entries[order[b]].Key
	})

	return order
}

func keyBytesHint(entries []Entry) int {
	total := 0
	for _, entry := range entries {
		total += len(entry.Key) + section.CStringTermSize
	}

	return total
}
