// Package section defines the low-level binary structures and constants of
// the sbson document format.
//
// This package provides the foundational types that define the physical
// layout of encoded containers. It handles binary serialization and parsing
// of container headers, descriptors, displacement words, and key blocks,
// ensuring consistent byte-level representation across platforms.
//
// # Overview
//
// The section package defines four categories:
//
//  1. Headers: per-container header words (MapHeader, CHDHeader)
//  2. Descriptors: fixed 8-byte map entry records (Descriptor)
//  3. Displacements: packed (d1, d2) words of CHD maps
//  4. Key blocks: the shared NUL-terminated key storage of a map
//     (KeyBlockBuilder on the build side, ResolveKey on the read side)
//
// # Container Structure
//
// Every container starts with its 1-byte element tag; all offsets stored in
// a container are relative to that tag byte, never absolute, so the buffer
// can be sliced or relocated without rewriting offsets.
//
// A tag 0x03 map:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Tag (1 byte): 0x03                                      │
//	│ Header word (4 bytes): layout<<24 | count               │
//	├─────────────────────────────────────────────────────────┤
//	│ Descriptors (N × 8 bytes)                               │
//	│  - keyRef (4 bytes): length<<24 | keyOffset             │
//	│  - valueOffset (4 bytes)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Key block (variable): NUL-terminated keys, stored once  │
//	├─────────────────────────────────────────────────────────┤
//	│ Values (variable): child element encodings              │
//	└─────────────────────────────────────────────────────────┘
//
// A tag 0x20 CHD map inserts a 4-byte seed and ceil(N/5) displacement words
// between the header word and the descriptors; its descriptors, keys, and
// values are in hash-slot order rather than key order.
//
// A tag 0x04 array stores a 4-byte total size followed by N 4-byte element
// offsets; the entry count is inferred from the first offset.
//
// # Design Principles
//
//   - Fixed-size records for O(1) random access into descriptor tables
//   - Little-endian byte order via an explicit endian.EndianEngine
//   - Parse functions validate sizes and reserved bits against errs
//     sentinels; they never index past the supplied slice
package section
