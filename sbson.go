// Package sbson provides a compact binary format for tree-structured
// documents with zero-copy reads and constant-time field lookup.
//
// A document is a single contiguous buffer encoding a tree of maps, arrays,
// and scalars. Readers navigate the buffer in place: no parse step, no
// intermediate allocations, and sub-slices instead of copies for strings
// and blobs. Maps are stored in one of three lookup layouts chosen at
// encode time, so key lookup cost scales from binary search on small maps
// to a CHD perfect-hash probe on maps with thousands of keys.
//
// # Core Features
//
//   - Zero-copy cursor navigation over the encoded buffer
//   - Shared key block: each distinct key stored once per map
//   - Three map layouts: sorted array, Eytzinger, CHD perfect hash
//   - Automatic layout selection by entry count, overridable per map
//   - O(1) array indexing via per-element offset tables
//   - JSON conversion and optional whole-document compression framing
//
// # Basic Usage
//
// Building and encoding a document:
//
//	import "github.com/arloliu/sbson"
//
//	root := sbson.NewMap().
//	    Put("device", sbson.String("sensor-7")).
//	    Put("active", sbson.Bool(true)).
//	    Put("samples", sbson.Array{sbson.Double(21.5), sbson.Double(22.1)})
//
//	data, err := sbson.Encode(root)
//
// Reading it back:
//
//	cur, err := sbson.NewCursor(data)
//	device, _ := cur.MapGet("device")
//	name, _ := device.StringValue()
//
//	sample, _ := cur.Goto(sbson.Key("samples"), sbson.Index(1))
//	v, _ := sample.Double()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the doc
// package, simplifying the most common use cases. For fine-grained control
// (encoder reuse, materialized maps, layout thresholds), use the doc package
// directly; for JSON input use the convert package, and for compressed
// document framing use the compress package.
package sbson

import (
	"github.com/arloliu/sbson/convert"
	"github.com/arloliu/sbson/doc"
	"github.com/arloliu/sbson/format"
)

// Value tree types, re-exported from the doc package.
type (
	// Value is one node of a document tree.
	Value = doc.Value

	// Double is a 64-bit float value.
	Double = doc.Double

	// String is a NUL-free string value.
	String = doc.String

	// Binary is an opaque byte blob value.
	Binary = doc.Binary

	// Bool is a boolean value.
	Bool = doc.Bool

	// Null is the null value.
	Null = doc.Null

	// Int32 is a 32-bit signed integer value.
	Int32 = doc.Int32

	// Int64 is a 64-bit signed integer value.
	Int64 = doc.Int64

	// Array is an ordered list of values.
	Array = doc.Array

	// Map is an ordered list of key/value entries.
	Map = doc.Map

	// Entry is one key/value pair of a Map.
	Entry = doc.Entry

	// Cursor is a zero-copy view positioned at one element of an encoded
	// document.
	Cursor = doc.Cursor

	// PathSegment is one step of a Goto path.
	PathSegment = doc.PathSegment

	// EncoderOption configures document encoding.
	EncoderOption = doc.EncoderOption
)

// Map lookup strategies, re-exported from the format package.
const (
	// StrategyAuto picks a layout from the entry count.
	StrategyAuto = format.StrategyAuto

	// StrategySortedArray forces the sorted-array layout.
	StrategySortedArray = format.StrategySortedArray

	// StrategyEytzinger forces the Eytzinger layout.
	StrategyEytzinger = format.StrategyEytzinger

	// StrategyCHD forces the CHD perfect-hash layout.
	StrategyCHD = format.StrategyCHD
)

// NewMap creates an empty map value with the Auto strategy.
func NewMap() *Map {
	return doc.NewMap()
}

// Encode serializes a value tree into a new document buffer.
//
// Example:
//
//	data, err := sbson.Encode(root, sbson.WithMapStrategy(sbson.StrategyCHD))
func Encode(v Value, opts ...EncoderOption) ([]byte, error) {
	return doc.Encode(v, opts...)
}

// NewCursor positions a cursor at the root element of an encoded document.
func NewCursor(data []byte) (Cursor, error) {
	return doc.NewCursor(data)
}

// Key returns a path segment that descends into a map by key.
func Key(key string) PathSegment {
	return doc.Key(key)
}

// Index returns a path segment that descends into an array by index.
func Index(i int) PathSegment {
	return doc.Index(i)
}

// WithMapStrategy pins the map layout for every map without a per-map
// override. See doc.WithMapStrategy.
func WithMapStrategy(strategy format.MapStrategy) EncoderOption {
	return doc.WithMapStrategy(strategy)
}

// WithSizeLimit caps the encoded document size. See doc.WithSizeLimit.
func WithSizeLimit(limit int) EncoderOption {
	return doc.WithSizeLimit(limit)
}

// FromJSON parses JSON and encodes it as a document in one step. See the
// convert package for the number and duplicate-key mapping rules.
func FromJSON(jsonData []byte, opts ...EncoderOption) ([]byte, error) {
	return convert.DocumentFromJSON(jsonData, opts...)
}
