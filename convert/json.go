// Package convert builds document value trees from external formats.
//
// The only source format today is JSON. Conversion goes through the doc
// package's Value tree, so the result obeys the same key rules and layout
// strategies as hand-built documents.
package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/arloliu/sbson/doc"
)

// ValueFromJSON parses one JSON value into a doc.Value tree.
//
// Mapping rules:
//   - JSON objects become maps with the Auto strategy. Duplicate keys keep
//     the last occurrence, matching what encoding/json does on decode.
//   - JSON numbers become the narrowest fitting type: Int32, then Int64,
//     then Double. Numbers with a fraction or exponent are always Double.
//   - null, booleans, strings, and arrays map to their direct counterparts.
//
// Trailing data after the first value is an error.
func ValueFromJSON(data []byte) (doc.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("parse json: trailing data after value")
	}

	return v, nil
}

// DocumentFromJSON parses JSON and encodes it as a document in one step.
func DocumentFromJSON(data []byte, opts ...doc.EncoderOption) ([]byte, error) {
	v, err := ValueFromJSON(data)
	if err != nil {
		return nil, err
	}

	return doc.Encode(v, opts...)
}

// decodeValue consumes exactly one JSON value from dec.
func decodeValue(dec *json.Decoder) (doc.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (doc.Value, error) {
	switch t := tok.(type) {
	case nil:
		return doc.Null{}, nil
	case bool:
		return doc.Bool(t), nil
	case string:
		return doc.String(t), nil
	case json.Number:
		return numberValue(t)
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// decodeObject consumes object members up to the closing brace. A repeated
// key overwrites the earlier member in place, so member order is the order
// of first appearance.
func decodeObject(dec *json.Decoder) (doc.Value, error) {
	m := doc.NewMap()
	index := make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token %v", keyTok)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		if at, seen := index[key]; seen {
			m.Entries[at].Value = val
		} else {
			index[key] = len(m.Entries)
			m.Put(key, val)
		}
	}

	// Closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return m, nil
}

func decodeArray(dec *json.Decoder) (doc.Value, error) {
	var arr doc.Array

	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}

	// Closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return arr, nil
}

// numberValue picks the narrowest wire type that represents the literal
// exactly: Int32, then Int64, then Double.
func numberValue(num json.Number) (doc.Value, error) {
	if i, err := strconv.ParseInt(num.String(), 10, 64); err == nil {
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return doc.Int32(int32(i)), nil
		}

		return doc.Int64(i), nil
	}

	f, err := num.Float64()
	if err != nil {
		return nil, fmt.Errorf("number %q: %w", num.String(), err)
	}

	return doc.Double(f), nil
}
