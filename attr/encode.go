package attr

import (
	"encoding/base64"
	"fmt"

	"github.com/dynattr/dynattr/errs"
	"github.com/dynattr/dynattr/wire"
)

// Encoder converts native values into wire values. Encoders are stateless
// and safe for concurrent use; a single Encoder can serve any number of
// goroutines.
type Encoder struct {
	maxDepth int
}

// NewEncoder creates an Encoder with the given options.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Encoder{maxDepth: cfg.maxDepth}, nil
}

// Encode converts a single native value to its wire form. The second result
// reports presence: absent values (nil, empty string, empty set) return
// false and no wire value, matching the remote store's rule that empty
// optional attributes are omitted rather than written empty.
func (e *Encoder) Encode(v Value) (wire.Value, bool, error) {
	return e.encodeValue(v, 1)
}

// EncodeDocument converts a full record, attribute name to native value,
// into a wire document. Absent values are omitted. Attribute names must be
// non-empty.
func (e *Encoder) EncodeDocument(rec map[string]Value) (wire.Document, error) {
	doc := make(wire.Document, len(rec))

	for name, v := range rec {
		if name == "" {
			return nil, fmt.Errorf("%w: empty attribute name", errs.ErrInvalidKey)
		}

		wv, present, err := e.encodeValue(v, 1)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		if !present {
			continue
		}

		doc[name] = wv
	}

	return doc, nil
}

// encodeValue dispatches on the value variant. depth counts nesting levels,
// starting at 1 for a top-level value.
func (e *Encoder) encodeValue(v Value, depth int) (wire.Value, bool, error) {
	if depth > e.maxDepth {
		return wire.Value{}, false, fmt.Errorf("%w: depth %d exceeds limit %d",
			errs.ErrDepthExceeded, depth, e.maxDepth)
	}

	switch v := v.(type) {
	case nil:
		return wire.Value{}, false, nil
	case String:
		if v.Value == "" {
			return wire.Value{}, false, nil
		}

		return wire.String(v.Value), true, nil
	case Number:
		if err := validateDecimal(v.Value); err != nil {
			return wire.Value{}, false, err
		}

		return wire.Number(v.Value), true, nil
	case Bool:
		return wire.Bool(v.Value), true, nil
	case Binary:
		return wire.Binary(base64.StdEncoding.EncodeToString(v.Value)), true, nil
	case StringSet:
		return e.encodeStringSet(v)
	case NumberSet:
		return e.encodeNumberSet(v)
	case BinarySet:
		return e.encodeBinarySet(v)
	case Map:
		return e.encodeMap(v, depth)
	case List:
		return e.encodeList(v, depth)
	default:
		return wire.Value{}, false, fmt.Errorf("%w: %T", errs.ErrUnsupportedType, v)
	}
}

func (e *Encoder) encodeStringSet(v StringSet) (wire.Value, bool, error) {
	if len(v.Values) == 0 {
		return wire.Value{}, false, nil
	}

	return wire.StringSet(canonicalStrings(v.Values)), true, nil
}

func (e *Encoder) encodeNumberSet(v NumberSet) (wire.Value, bool, error) {
	if len(v.Values) == 0 {
		return wire.Value{}, false, nil
	}

	for _, member := range v.Values {
		if err := validateDecimal(member); err != nil {
			return wire.Value{}, false, err
		}
	}

	return wire.NumberSet(canonicalNumbers(v.Values)), true, nil
}

func (e *Encoder) encodeBinarySet(v BinarySet) (wire.Value, bool, error) {
	if len(v.Values) == 0 {
		return wire.Value{}, false, nil
	}

	members := canonicalBinary(v.Values)
	encoded := make([]string, len(members))
	for i, member := range members {
		encoded[i] = base64.StdEncoding.EncodeToString(member)
	}

	return wire.BinarySet(encoded), true, nil
}

func (e *Encoder) encodeMap(v Map, depth int) (wire.Value, bool, error) {
	entries := make(map[string]wire.Value, len(v.Entries))

	for key, nested := range v.Entries {
		if key == "" {
			return wire.Value{}, false, fmt.Errorf("%w: empty key", errs.ErrInvalidKey)
		}

		wv, present, err := e.encodeValue(nested, depth+1)
		if err != nil {
			return wire.Value{}, false, fmt.Errorf("key %q: %w", key, err)
		}
		if !present {
			continue
		}

		entries[key] = wv
	}

	return wire.Map(entries), true, nil
}

func (e *Encoder) encodeList(v List, depth int) (wire.Value, bool, error) {
	items := make([]wire.Value, 0, len(v.Items))

	for i, nested := range v.Items {
		wv, present, err := e.encodeValue(nested, depth+1)
		if err != nil {
			return wire.Value{}, false, fmt.Errorf("index %d: %w", i, err)
		}
		if !present {
			return wire.Value{}, false, fmt.Errorf("%w: index %d", errs.ErrAbsentListElement, i)
		}

		items = append(items, wv)
	}

	return wire.List(items), true, nil
}
