// Package schema provides schema-driven records on top of the attr codec.
//
// A Schema declares, per attribute, its record field name, wire name, kind,
// nullability, optional default and key role. Records are plain maps from
// field name to native value; Serialize and Deserialize validate them
// against the schema before handing them to the codec. There is no
// descriptor magic: the schema is explicit data, records are explicit maps.
package schema

import (
	"fmt"

	"github.com/dynattr/dynattr/attr"
	"github.com/dynattr/dynattr/errs"
)

// Kind is the declared kind of a schema attribute. It covers the native
// kinds of the attr package plus two derived text kinds restored from the
// original model layer: DateTime and JSON, both stored under the S tag.
type Kind uint8

const (
	KindString    Kind = iota + 1 // KindString is UTF-8 text.
	KindNumber                    // KindNumber is a decimal number.
	KindBool                      // KindBool is a boolean.
	KindBinary                    // KindBinary is an opaque byte sequence.
	KindStringSet                 // KindStringSet is a set of text values.
	KindNumberSet                 // KindNumberSet is a set of numbers.
	KindBinarySet                 // KindBinarySet is a set of byte sequences.
	KindMap                       // KindMap is a nested map.
	KindList                      // KindList is an ordered list.
	KindDateTime                  // KindDateTime is a UTC timestamp stored as text.
	KindJSON                      // KindJSON is a JSON document stored as text.
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindBinary:
		return "binary"
	case KindStringSet:
		return "string_set"
	case KindNumberSet:
		return "number_set"
	case KindBinarySet:
		return "binary_set"
	case KindMap:
		return "map"
	case KindList:
		return "list"
	case KindDateTime:
		return "datetime"
	case KindJSON:
		return "json"
	default:
		return "unknown"
	}
}

// valid reports whether k belongs to the declared kind enumeration.
func (k Kind) valid() bool {
	return k >= KindString && k <= KindJSON
}

// ParseKind maps a kind name, as used in YAML schema files, to its Kind.
func ParseKind(s string) (Kind, error) {
	for k := KindString; k <= KindJSON; k++ {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown kind %q", errs.ErrInvalidSchema, s)
}

// Attribute declares a single schema attribute.
type Attribute struct {
	// Name is the record field name.
	Name string

	// WireName is the attribute name on the wire. Empty means Name.
	WireName string

	// Kind is the declared kind; record values must match it.
	Kind Kind

	// Null permits the attribute to be absent from a record.
	Null bool

	// Default is applied when the attribute is absent from a record being
	// serialized. Its kind must match Kind.
	Default attr.Value

	// HashKey and RangeKey mark the attribute's key role. A schema has at
	// most one of each; key attributes are implicitly non-nullable.
	HashKey  bool
	RangeKey bool
}

// wireName resolves the effective wire name.
func (a Attribute) wireName() string {
	if a.WireName != "" {
		return a.WireName
	}

	return a.Name
}

// Schema is an immutable, validated set of attribute declarations.
type Schema struct {
	name       string
	attrs      []Attribute
	byName     map[string]int
	byWireName map[string]int
	hashKey    int
	rangeKey   int

	enc *attr.Encoder
	dec *attr.Decoder
}

// New builds a Schema from attribute declarations. The declarations are
// validated: names and wire names must be non-empty and unique, kinds must
// be known, defaults must match their attribute kind, and at most one hash
// key and one range key may be declared (a range key requires a hash key).
func New(name string, attrs ...Attribute) (*Schema, error) {
	if len(attrs) == 0 {
		return nil, fmt.Errorf("%w: no attributes", errs.ErrInvalidSchema)
	}

	s := &Schema{
		name:       name,
		attrs:      make([]Attribute, len(attrs)),
		byName:     make(map[string]int, len(attrs)),
		byWireName: make(map[string]int, len(attrs)),
		hashKey:    -1,
		rangeKey:   -1,
	}
	copy(s.attrs, attrs)

	for i, a := range s.attrs {
		if a.Name == "" {
			return nil, fmt.Errorf("%w: attribute %d has no name", errs.ErrInvalidSchema, i)
		}
		if !a.Kind.valid() {
			return nil, fmt.Errorf("%w: attribute %q has unknown kind", errs.ErrInvalidSchema, a.Name)
		}

		if _, dup := s.byName[a.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate attribute %q", errs.ErrInvalidSchema, a.Name)
		}
		s.byName[a.Name] = i

		wn := a.wireName()
		if _, dup := s.byWireName[wn]; dup {
			return nil, fmt.Errorf("%w: duplicate wire name %q", errs.ErrInvalidSchema, wn)
		}
		s.byWireName[wn] = i

		if a.Default != nil {
			if err := checkKind(a, a.Default); err != nil {
				return nil, fmt.Errorf("%w: default for %q: %s", errs.ErrInvalidSchema, a.Name, err)
			}
		}

		if a.HashKey {
			if s.hashKey >= 0 {
				return nil, fmt.Errorf("%w: multiple hash keys", errs.ErrInvalidSchema)
			}
			s.hashKey = i
		}
		if a.RangeKey {
			if s.rangeKey >= 0 {
				return nil, fmt.Errorf("%w: multiple range keys", errs.ErrInvalidSchema)
			}
			s.rangeKey = i
		}
	}

	if s.rangeKey >= 0 && s.hashKey < 0 {
		return nil, fmt.Errorf("%w: range key without hash key", errs.ErrInvalidSchema)
	}

	enc, err := attr.NewEncoder()
	if err != nil {
		return nil, err
	}
	dec, err := attr.NewDecoder()
	if err != nil {
		return nil, err
	}
	s.enc = enc
	s.dec = dec

	return s, nil
}

// Name returns the schema name, typically the table name.
func (s *Schema) Name() string {
	return s.name
}

// Attributes returns the attribute declarations in declaration order.
// The returned slice must not be modified.
func (s *Schema) Attributes() []Attribute {
	return s.attrs
}

// HashKey returns the hash key attribute, if one is declared.
func (s *Schema) HashKey() (Attribute, bool) {
	if s.hashKey < 0 {
		return Attribute{}, false
	}

	return s.attrs[s.hashKey], true
}

// RangeKey returns the range key attribute, if one is declared.
func (s *Schema) RangeKey() (Attribute, bool) {
	if s.rangeKey < 0 {
		return Attribute{}, false
	}

	return s.attrs[s.rangeKey], true
}

// required reports whether the attribute must be present after defaulting.
// Key attributes are always required.
func required(a Attribute) bool {
	return !a.Null || a.HashKey || a.RangeKey
}
