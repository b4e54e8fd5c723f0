package schema

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dynattr/dynattr/attr"
	"github.com/dynattr/dynattr/errs"
	"github.com/dynattr/dynattr/wire"
)

// Record is a native record: field name to native value. Absent fields are
// simply not present in the map.
type Record map[string]attr.Value

// Serialize validates a record against the schema and encodes it into a
// wire document.
//
// Validation comes first: unknown fields are rejected, defaults are applied
// for absent fields, every present value must match its declared kind, and
// required attributes (non-nullable or key attributes) must be present after
// defaulting. Values that encode to absent (empty string, empty set) are
// omitted; an explicit absent value on a required attribute is an error.
func (s *Schema) Serialize(rec Record) (wire.Document, error) {
	for field := range rec {
		if _, ok := s.byName[field]; !ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrUnknownAttribute, field)
		}
	}

	doc := make(wire.Document, len(rec))

	for _, a := range s.attrs {
		v, explicit := rec[a.Name]
		if v == nil {
			explicit = false
			v = a.Default
		}

		if v == nil {
			if required(a) {
				return nil, fmt.Errorf("%w: %q", errs.ErrMissingAttribute, a.Name)
			}

			continue
		}

		if err := checkKind(a, v); err != nil {
			return nil, err
		}

		wv, present, err := s.enc.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		if !present {
			if explicit && required(a) {
				return nil, fmt.Errorf("%w: %q", errs.ErrNullNotAllowed, a.Name)
			}
			if required(a) {
				return nil, fmt.Errorf("%w: %q", errs.ErrMissingAttribute, a.Name)
			}

			continue
		}

		doc[a.wireName()] = wv
	}

	return doc, nil
}

// Deserialize decodes a wire document into a record, mapping wire names back
// to field names. Unknown wire attributes are rejected, decoded values must
// match their declared kinds, and required attributes must be present.
func (s *Schema) Deserialize(doc wire.Document) (Record, error) {
	for wn := range doc {
		if _, ok := s.byWireName[wn]; !ok {
			return nil, fmt.Errorf("%w: wire attribute %q", errs.ErrUnknownAttribute, wn)
		}
	}

	rec := make(Record, len(doc))

	for _, a := range s.attrs {
		wv, ok := doc[a.wireName()]
		if !ok {
			if required(a) {
				return nil, fmt.Errorf("%w: %q", errs.ErrMissingAttribute, a.Name)
			}

			continue
		}

		v, err := s.dec.Decode(wv)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}

		if err := checkKind(a, v); err != nil {
			return nil, err
		}

		rec[a.Name] = v
	}

	return rec, nil
}

// checkKind validates a value against an attribute's declared kind. The
// derived text kinds additionally validate the payload: DateTime must parse
// with DateTimeLayout and JSON must be a valid JSON document. Empty text is
// exempt from payload validation since it encodes to absent.
func checkKind(a Attribute, v attr.Value) error {
	if got, want := v.Kind(), nativeKind(a.Kind); got != want {
		return fmt.Errorf("%w: attribute %q declared %s, got %s",
			errs.ErrKindMismatch, a.Name, a.Kind, got)
	}

	switch a.Kind {
	case KindDateTime:
		text := v.(attr.String).Value
		if text == "" {
			return nil
		}
		if _, err := time.Parse(DateTimeLayout, text); err != nil {
			return fmt.Errorf("%w: attribute %q: not a %s timestamp: %s",
				errs.ErrKindMismatch, a.Name, a.Kind, err)
		}
	case KindJSON:
		text := v.(attr.String).Value
		if text == "" {
			return nil
		}
		if !json.Valid([]byte(text)) {
			return fmt.Errorf("%w: attribute %q: invalid JSON payload",
				errs.ErrKindMismatch, a.Name)
		}
	}

	return nil
}

// nativeKind maps a declared kind to the native kind records must hold.
func nativeKind(k Kind) attr.Kind {
	switch k {
	case KindString, KindDateTime, KindJSON:
		return attr.KindString
	case KindNumber:
		return attr.KindNumber
	case KindBool:
		return attr.KindBool
	case KindBinary:
		return attr.KindBinary
	case KindStringSet:
		return attr.KindStringSet
	case KindNumberSet:
		return attr.KindNumberSet
	case KindBinarySet:
		return attr.KindBinarySet
	case KindMap:
		return attr.KindMap
	case KindList:
		return attr.KindList
	default:
		return 0
	}
}
