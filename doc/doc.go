// Package doc provides high-level APIs for building and reading binary
// document trees.
//
// This package is the primary interface for working with the binary document
// format. It provides an Encoder that serializes a Value tree into a single
// contiguous buffer, and a zero-copy Cursor that navigates an encoded buffer
// without decoding it up front.
//
// # Core Types
//
// **Values**: In-memory document trees
//   - Value: interface implemented by every node kind
//   - Double, Int32, Int64, Bool, String, Binary, Null: scalar leaves
//   - Array: ordered sequence of child values
//   - Map: key/value entries with an optional per-map lookup strategy
//
// **Encoder**: Serializes a Value tree
//   - Encoder: reusable encoder with configurable map strategy thresholds
//   - Encode: one-shot convenience wrapper
//
// **Cursor**: Zero-copy reads
//   - Cursor: points at one element inside an encoded buffer
//   - MapMaterial: eagerly built key index for hot, repeatedly-read maps
//
// # Encoding Workflow
//
//	// 1. Build the value tree
//	root := doc.NewMap().
//	    Put("name", doc.String("sensor-7")).
//	    Put("samples", doc.Array{doc.Int32(10), doc.Int32(20)})
//
//	// 2. Encode it
//	data, err := doc.Encode(root)
//
// # Reading Workflow
//
//	cur, err := doc.NewCursor(data)
//	name, err := cur.MapGet("name")
//	s, err := name.StringValue()
//
//	samples, err := cur.MapGet("samples")
//	for i, v := range samples.ArrayValues() {
//	    n, _ := v.Int32()
//	    ...
//	}
//
// # Map Lookup Strategies
//
// Every map is stored in one of three physical layouts, chosen at encode
// time per map:
//   - Sorted array: descriptors sorted by key, binary-searched on lookup.
//     The default for small maps.
//   - Eytzinger: descriptors in breadth-first search-tree order for a
//     cache-friendlier binary search on mid-sized maps.
//   - CHD perfect hash: two-level displacement hashing for O(1) lookups on
//     large maps, at the cost of extra work during encoding.
//
// The encoder picks a layout automatically from the entry count; callers can
// pin a strategy globally with WithMapStrategy or per map with
// Map.WithStrategy. Readers never need to know which layout was chosen:
// Cursor.MapGet dispatches on the encoded element.
//
// # Buffer Contract
//
// A Cursor holds a reference into the encoded buffer and returns sub-slices
// of it from StringBytes and Binary. The buffer must not be modified while
// any cursor or material derived from it is in use.
package doc
