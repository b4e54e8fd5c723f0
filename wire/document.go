package wire

// Document is a full record as exchanged with the remote store: attribute
// name to wire value. Absent attributes are simply not present; a Document
// never holds empty-string or empty-set placeholders.
//
// The JSON form is the remote store's record JSON. encoding/json emits map
// keys in sorted order, so the encoding of a Document is deterministic and
// safe to checksum, as long as set payloads are in canonical order (the attr
// encoder guarantees this).
type Document map[string]Value
