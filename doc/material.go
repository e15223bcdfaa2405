package doc

import (
	"fmt"

	"github.com/arloliu/sbson/errs"
)

// MapMaterial is an eagerly built key index over one map element: every key
// resolved once into a Go map of value cursors, trading memory for
// repeated-lookup speed. It is worth building for a hot map that is read
// many times, particularly a CHD map whose per-lookup hashing cost would
// otherwise repeat.
//
// The material holds cursors into the original buffer, so the
// buffer-freezing contract extends to it: the buffer must stay immutable
// for as long as the material is used. The material itself is read-only
// after construction and safe for concurrent readers.
type MapMaterial struct {
	keys  []string
	index map[string]Cursor
}

// MaterializeMap walks the map once in iteration order and builds a
// MapMaterial over it.
//
// Returns:
//   - *MapMaterial: the built index
//   - error: ErrTypeMismatch on non-map elements; decode errors on corrupt
//     buffers
func (c Cursor) MaterializeMap() (*MapMaterial, error) {
	meta, err := c.parseMapMeta()
	if err != nil {
		return nil, err
	}

	m := &MapMaterial{
		keys:  make([]string, 0, meta.count),
		index: make(map[string]Cursor, meta.count),
	}

	var walkErr error
	c.iterPositions(meta, func(p int) bool {
		key, kerr := c.keyAtPos(meta, p)
		if kerr != nil {
			walkErr = kerr
			return false
		}
		value, verr := c.valueAtPos(meta, p)
		if verr != nil {
			walkErr = verr
			return false
		}

		m.keys = append(m.keys, string(key))
		m.index[string(key)] = value

		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return m, nil
}

// Get returns the value cursor of key.
//
// Fails ErrKeyNotFound if the key was not present when the material was
// built.
func (m *MapMaterial) Get(key string) (Cursor, error) {
	cur, ok := m.index[key]
	if !ok {
		return Cursor{}, fmt.Errorf("%w: %q", errs.ErrKeyNotFound, key)
	}

	return cur, nil
}

// Has reports whether key is present.
func (m *MapMaterial) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// Len returns the number of entries.
func (m *MapMaterial) Len() int {
	return len(m.index)
}

// Keys returns the keys in the map's iteration order. The returned slice is
// the material's own storage; callers must not modify it.
func (m *MapMaterial) Keys() []string {
	return m.keys
}
