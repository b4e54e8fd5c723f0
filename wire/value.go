package wire

import (
	"encoding/json"
	"fmt"

	"github.com/dynattr/dynattr/errs"
)

// Value is a single wire-level attribute value: exactly one type tag paired
// with the payload for that tag. Only the payload field matching the tag is
// meaningful; the others are zero.
//
// The JSON form is the remote store's document JSON, a single-key object:
//
//	{"S": "hello"}
//	{"N": "42"}
//	{"BOOL": true}
//	{"M": {"k": {"S": "v"}}}
type Value struct {
	Tag Tag

	// Str carries the payload for S, N and B tags. Binary payloads are
	// already base64 text at this level.
	Str string

	// Bool carries the payload for the BOOL tag.
	Bool bool

	// Set carries the payload for SS, NS and BS tags, in encoded order.
	Set []string

	// Map carries the payload for the M tag.
	Map map[string]Value

	// List carries the payload for the L tag.
	List []Value
}

// String returns a Value tagged S.
func String(s string) Value {
	return Value{Tag: TagString, Str: s}
}

// Number returns a Value tagged N. The payload must already be canonical
// decimal text; the attr encoder produces it, and the decoder validates it.
func Number(s string) Value {
	return Value{Tag: TagNumber, Str: s}
}

// Binary returns a Value tagged B from an already base64-encoded payload.
func Binary(b64 string) Value {
	return Value{Tag: TagBinary, Str: b64}
}

// Bool returns a Value tagged BOOL.
func Bool(b bool) Value {
	return Value{Tag: TagBool, Bool: b}
}

// StringSet returns a Value tagged SS.
func StringSet(vals []string) Value {
	return Value{Tag: TagStringSet, Set: vals}
}

// NumberSet returns a Value tagged NS.
func NumberSet(vals []string) Value {
	return Value{Tag: TagNumberSet, Set: vals}
}

// BinarySet returns a Value tagged BS from already base64-encoded payloads.
func BinarySet(vals []string) Value {
	return Value{Tag: TagBinarySet, Set: vals}
}

// Map returns a Value tagged M.
func Map(entries map[string]Value) Value {
	return Value{Tag: TagMap, Map: entries}
}

// List returns a Value tagged L.
func List(items []Value) Value {
	return Value{Tag: TagList, List: items}
}

// MarshalJSON encodes the value as a single-key object {tag: payload}.
func (v Value) MarshalJSON() ([]byte, error) {
	var payload any

	switch v.Tag {
	case TagString, TagNumber, TagBinary:
		payload = v.Str
	case TagBool:
		payload = v.Bool
	case TagStringSet, TagNumberSet, TagBinarySet:
		if v.Set == nil {
			payload = []string{}
		} else {
			payload = v.Set
		}
	case TagMap:
		if v.Map == nil {
			payload = map[string]Value{}
		} else {
			payload = v.Map
		}
	case TagList:
		if v.List == nil {
			payload = []Value{}
		} else {
			payload = v.List
		}
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownTag, string(v.Tag))
	}

	return json.Marshal(map[string]any{string(v.Tag): payload})
}

// UnmarshalJSON decodes a single-key object {tag: payload}, enforcing the
// exactly-one-tag invariant and tag membership in the fixed enumeration.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrMalformedEntry, err)
	}

	if len(raw) != 1 {
		return fmt.Errorf("%w: expected 1 tag, got %d", errs.ErrMalformedEntry, len(raw))
	}

	for key, payload := range raw {
		tag := Tag(key)
		if !tag.Valid() {
			return fmt.Errorf("%w: %q", errs.ErrUnknownTag, key)
		}

		decoded := Value{Tag: tag}
		var err error

		switch tag {
		case TagString, TagNumber, TagBinary:
			err = json.Unmarshal(payload, &decoded.Str)
		case TagBool:
			err = json.Unmarshal(payload, &decoded.Bool)
		case TagStringSet, TagNumberSet, TagBinarySet:
			err = json.Unmarshal(payload, &decoded.Set)
		case TagMap:
			err = json.Unmarshal(payload, &decoded.Map)
		case TagList:
			err = json.Unmarshal(payload, &decoded.List)
		}

		if err != nil {
			return fmt.Errorf("%w: tag %s: %s", errs.ErrMalformedEntry, tag, err)
		}

		*v = decoded
	}

	return nil
}
