// Package dynattr converts between native in-memory values and the
// tagged-union document encoding used by a remote key-value store.
//
// Native values are a closed union (see the attr package): text, numbers,
// booleans, binary, scalar sets, and recursively nested maps and lists.
// Wire values are single-tag structures whose JSON form is the store's
// document JSON (see the wire package).
//
// # Basic Usage
//
// Encoding a record:
//
//	rec := map[string]attr.Value{
//	    "k1": attr.String{Value: "v1"},
//	    "k2": attr.List{Items: []attr.Value{
//	        attr.NumberFromInt64(1),
//	        attr.NumberFromInt64(2),
//	    }},
//	}
//	doc, _ := dynattr.Marshal(rec)
//	data, _ := dynattr.MarshalJSON(rec)
//	// {"k1":{"S":"v1"},"k2":{"L":[{"N":"1"},{"N":"2"}]}}
//
// Decoding is the inverse:
//
//	rec, _ := dynattr.Unmarshal(doc)
//
// # Package Structure
//
// This package provides convenient top-level wrappers with default limits.
// For configurable encoders and decoders use the attr package; for
// schema-validated records use the schema package; for durable document
// envelopes use the snapshot package.
package dynattr

import (
	"encoding/json"

	"github.com/cespare/xxhash/v2"

	"github.com/dynattr/dynattr/attr"
	"github.com/dynattr/dynattr/wire"
)

var (
	defaultEncoder = mustEncoder()
	defaultDecoder = mustDecoder()
)

func mustEncoder() *attr.Encoder {
	enc, err := attr.NewEncoder()
	if err != nil {
		panic(err)
	}

	return enc
}

func mustDecoder() *attr.Decoder {
	dec, err := attr.NewDecoder()
	if err != nil {
		panic(err)
	}

	return dec
}

// Marshal encodes a native record into a wire document with the default
// nesting depth limit. Absent values (nil, empty string, empty set) are
// omitted from the document.
func Marshal(rec map[string]attr.Value) (wire.Document, error) {
	return defaultEncoder.EncodeDocument(rec)
}

// Unmarshal decodes a wire document into a native record with the default
// nesting depth limit.
func Unmarshal(doc wire.Document) (map[string]attr.Value, error) {
	return defaultDecoder.DecodeDocument(doc)
}

// MarshalJSON encodes a native record straight to the remote store's record
// JSON.
func MarshalJSON(rec map[string]attr.Value) ([]byte, error) {
	doc, err := Marshal(rec)
	if err != nil {
		return nil, err
	}

	return json.Marshal(doc)
}

// UnmarshalJSON decodes the remote store's record JSON into a native record.
func UnmarshalJSON(data []byte) (map[string]attr.Value, error) {
	var doc wire.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return Unmarshal(doc)
}

// Fingerprint returns the xxHash64 of a document's canonical JSON encoding.
// The encoding is deterministic (sorted map keys, canonical set order), so
// equal documents always produce equal fingerprints. Useful for cheap
// change detection before writing back to the store.
func Fingerprint(doc wire.Document) (uint64, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return 0, err
	}

	return xxhash.Sum64(data), nil
}
