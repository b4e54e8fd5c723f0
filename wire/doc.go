// Package wire defines the tagged-union document encoding exchanged with
// the remote store.
//
// A wire Value is a single type tag from a fixed enumeration (S, N, B,
// BOOL, SS, NS, BS, M, L) paired with that tag's payload. Scalar payloads
// are text: numbers travel as decimal text and binary data as base64 text.
// Composite tags (M, L) nest further wire values.
//
// The JSON form of a Value is a single-key object {tag: payload}, and the
// JSON form of a Document is the store's record JSON. Unmarshaling enforces
// the exactly-one-tag invariant and rejects tags outside the enumeration;
// payload validation beyond shape (decimal grammar, base64) is the attr
// decoder's job.
package wire
