package attr

import (
	"encoding/base64"
	"fmt"

	"github.com/dynattr/dynattr/errs"
	"github.com/dynattr/dynattr/wire"
)

// Decoder converts wire values back into native values. Decoders are
// stateless and safe for concurrent use.
type Decoder struct {
	maxDepth int
}

// NewDecoder creates a Decoder with the given options.
func NewDecoder(opts ...Option) (*Decoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Decoder{maxDepth: cfg.maxDepth}, nil
}

// Decode converts a single wire value to its native form. Scalar payloads
// are re-validated: number payloads must be decimal text and binary payloads
// valid base64. Set payloads are restored to canonical order with duplicates
// dropped, so decoding is insensitive to wire ordering.
func (d *Decoder) Decode(wv wire.Value) (Value, error) {
	return d.decodeValue(wv, 1)
}

// DecodeDocument converts a full wire document into a record of native
// values keyed by attribute name.
func (d *Decoder) DecodeDocument(doc wire.Document) (map[string]Value, error) {
	rec := make(map[string]Value, len(doc))

	for name, wv := range doc {
		if name == "" {
			return nil, fmt.Errorf("%w: empty attribute name", errs.ErrInvalidKey)
		}

		v, err := d.decodeValue(wv, 1)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}

		rec[name] = v
	}

	return rec, nil
}

// decodeValue dispatches on the wire tag. depth counts nesting levels,
// starting at 1 for a top-level value.
func (d *Decoder) decodeValue(wv wire.Value, depth int) (Value, error) {
	if depth > d.maxDepth {
		return nil, fmt.Errorf("%w: depth %d exceeds limit %d",
			errs.ErrDepthExceeded, depth, d.maxDepth)
	}

	if wv.Tag == "" {
		return nil, fmt.Errorf("%w: no tag", errs.ErrMalformedEntry)
	}

	switch wv.Tag {
	case wire.TagString:
		return String{Value: wv.Str}, nil
	case wire.TagNumber:
		if err := validateDecimal(wv.Str); err != nil {
			return nil, err
		}

		return Number{Value: wv.Str}, nil
	case wire.TagBool:
		return Bool{Value: wv.Bool}, nil
	case wire.TagBinary:
		raw, err := base64.StdEncoding.DecodeString(wv.Str)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid base64: %s", errs.ErrDecode, err)
		}

		return Binary{Value: raw}, nil
	case wire.TagStringSet:
		return StringSet{Values: canonicalStrings(wv.Set)}, nil
	case wire.TagNumberSet:
		for _, member := range wv.Set {
			if err := validateDecimal(member); err != nil {
				return nil, err
			}
		}

		return NumberSet{Values: canonicalNumbers(wv.Set)}, nil
	case wire.TagBinarySet:
		members := make([][]byte, len(wv.Set))
		for i, b64 := range wv.Set {
			raw, err := base64.StdEncoding.DecodeString(b64)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid base64 set member: %s", errs.ErrDecode, err)
			}
			members[i] = raw
		}

		return BinarySet{Values: canonicalBinary(members)}, nil
	case wire.TagMap:
		return d.decodeMap(wv.Map, depth)
	case wire.TagList:
		return d.decodeList(wv.List, depth)
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownTag, wv.Tag.String())
	}
}

func (d *Decoder) decodeMap(entries map[string]wire.Value, depth int) (Value, error) {
	native := make(map[string]Value, len(entries))

	for key, wv := range entries {
		if key == "" {
			return nil, fmt.Errorf("%w: empty key", errs.ErrInvalidKey)
		}

		v, err := d.decodeValue(wv, depth+1)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		native[key] = v
	}

	return Map{Entries: native}, nil
}

func (d *Decoder) decodeList(items []wire.Value, depth int) (Value, error) {
	native := make([]Value, len(items))

	for i, wv := range items {
		v, err := d.decodeValue(wv, depth+1)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}

		native[i] = v
	}

	return List{Items: native}, nil
}
