package doc

import "fmt"

// PathSegment is one step of a Goto path: either a map key or an array
// index. Construct segments with Key and Index.
type PathSegment struct {
	key   string
	index int
	isKey bool
}

// Key returns a path segment that descends into a map by key.
func Key(key string) PathSegment {
	return PathSegment{key: key, isKey: true}
}

// Index returns a path segment that descends into an array by index.
func Index(i int) PathSegment {
	return PathSegment{index: i}
}

func (s PathSegment) String() string {
	if s.isKey {
		return fmt.Sprintf("%q", s.key)
	}

	return fmt.Sprintf("[%d]", s.index)
}

// Goto walks maps and arrays in one call, returning a cursor at the element
// the path leads to. It is equivalent to chaining MapGet and ArrayAt and
// returns the first error encountered, annotated with the failing segment's
// position in the path.
//
// Goto with no segments returns the cursor itself.
func (c Cursor) Goto(segments ...PathSegment) (Cursor, error) {
	cur := c
	for i, seg := range segments {
		var err error
		if seg.isKey {
			cur, err = cur.MapGet(seg.key)
		} else {
			cur, err = cur.ArrayAt(seg.index)
		}
		if err != nil {
			return Cursor{}, fmt.Errorf("path segment %d (%s): %w", i, seg, err)
		}
	}

	return cur, nil
}
