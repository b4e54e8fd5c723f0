package schema

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dynattr/dynattr/attr"
	"github.com/dynattr/dynattr/errs"
)

// yamlSchema is the YAML shape of a schema definition file:
//
//	name: Thread
//	attributes:
//	  - name: forum_name
//	    kind: string
//	    hash_key: true
//	  - name: views
//	    kind: number
//	    default: "0"
//	  - name: last_post
//	    kind: datetime
//	    "null": true
type yamlSchema struct {
	Name       string          `yaml:"name"`
	Attributes []yamlAttribute `yaml:"attributes"`
}

type yamlAttribute struct {
	Name     string  `yaml:"name"`
	WireName string  `yaml:"wire_name"`
	Kind     string  `yaml:"kind"`
	Null     bool    `yaml:"null"`
	Default  *string `yaml:"default"`
	HashKey  bool    `yaml:"hash_key"`
	RangeKey bool    `yaml:"range_key"`
}

// Load parses a YAML schema definition and builds a validated Schema.
// Defaults are given as text and converted per kind; only scalar kinds may
// carry a default in YAML.
func Load(data []byte) (*Schema, error) {
	var raw yamlSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidSchema, err)
	}

	attrs := make([]Attribute, 0, len(raw.Attributes))
	for _, ya := range raw.Attributes {
		kind, err := ParseKind(ya.Kind)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", ya.Name, err)
		}

		a := Attribute{
			Name:     ya.Name,
			WireName: ya.WireName,
			Kind:     kind,
			Null:     ya.Null,
			HashKey:  ya.HashKey,
			RangeKey: ya.RangeKey,
		}

		if ya.Default != nil {
			def, err := defaultFromText(kind, *ya.Default)
			if err != nil {
				return nil, fmt.Errorf("attribute %q: %w", ya.Name, err)
			}
			a.Default = def
		}

		attrs = append(attrs, a)
	}

	return New(raw.Name, attrs...)
}

// defaultFromText converts a YAML default, given as text, into the native
// value for the attribute kind.
func defaultFromText(kind Kind, text string) (attr.Value, error) {
	switch kind {
	case KindString, KindDateTime, KindJSON:
		return attr.String{Value: text}, nil
	case KindNumber:
		return attr.NewNumber(text)
	case KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("%w: default %q is not a bool", errs.ErrInvalidSchema, text)
		}

		return attr.Bool{Value: b}, nil
	case KindBinary:
		raw, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("%w: default %q is not base64", errs.ErrInvalidSchema, text)
		}

		return attr.Binary{Value: raw}, nil
	default:
		return nil, fmt.Errorf("%w: kind %s does not support a YAML default", errs.ErrInvalidSchema, kind)
	}
}
