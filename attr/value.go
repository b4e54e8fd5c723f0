package attr

// Kind identifies the native kind of a Value variant.
type Kind uint8

const (
	KindString    Kind = iota + 1 // KindString is UTF-8 text.
	KindNumber                    // KindNumber is a decimal number held as canonical text.
	KindBool                      // KindBool is a boolean.
	KindBinary                    // KindBinary is an opaque byte sequence.
	KindStringSet                 // KindStringSet is an unordered set of text values.
	KindNumberSet                 // KindNumberSet is an unordered set of numbers.
	KindBinarySet                 // KindBinarySet is an unordered set of byte sequences.
	KindMap                       // KindMap is a string-keyed map of nested values.
	KindList                      // KindList is an ordered list of nested values.
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindBool:
		return "Bool"
	case KindBinary:
		return "Binary"
	case KindStringSet:
		return "StringSet"
	case KindNumberSet:
		return "NumberSet"
	case KindBinarySet:
		return "BinarySet"
	case KindMap:
		return "Map"
	case KindList:
		return "List"
	default:
		return "Unknown"
	}
}

// Value is the closed union of native attribute values. The variant structs
// in this package are the only implementations; the Encoder dispatches on
// them with an exhaustive type switch instead of runtime reflection.
type Value interface {
	Kind() Kind

	// isValue seals the interface to this package's variants.
	isValue()
}

// String is a text value. The empty string is treated as absent during
// encoding: the remote store does not accept empty text attributes.
type String struct {
	Value string
}

// Number is a decimal number held as canonical text, preserving precision
// beyond float64. Use NewNumber, NumberFromInt64 or NumberFromFloat64 to
// construct one with a validated payload.
type Number struct {
	Value string
}

// Bool is a boolean value. Booleans encode with the dedicated BOOL tag
// everywhere, including nested inside maps and lists.
type Bool struct {
	Value bool
}

// Binary is an opaque byte sequence, carried on the wire as base64 text.
type Binary struct {
	Value []byte
}

// StringSet is an unordered set of text values. Encoding sorts members
// lexicographically and drops duplicates, so the wire form is deterministic.
// An empty set is treated as absent during encoding.
type StringSet struct {
	Values []string
}

// NumberSet is an unordered set of decimal numbers held as canonical text.
// Encoding sorts members by numeric order and drops numerically equal
// duplicates. An empty set is treated as absent during encoding.
type NumberSet struct {
	Values []string
}

// BinarySet is an unordered set of byte sequences. Encoding sorts members
// by byte order and drops duplicates. An empty set is treated as absent
// during encoding.
type BinarySet struct {
	Values [][]byte
}

// Map is a string-keyed map of nested values. Keys must be non-empty.
// Entries whose value is absent (nil, empty string, empty set) are omitted
// from the encoded form.
type Map struct {
	Entries map[string]Value
}

// List is an ordered list of nested values. Order is preserved exactly;
// absent values are rejected rather than silently dropped, since omission
// would shift the indices of later elements.
type List struct {
	Items []Value
}

func (String) Kind() Kind    { return KindString }
func (Number) Kind() Kind    { return KindNumber }
func (Bool) Kind() Kind      { return KindBool }
func (Binary) Kind() Kind    { return KindBinary }
func (StringSet) Kind() Kind { return KindStringSet }
func (NumberSet) Kind() Kind { return KindNumberSet }
func (BinarySet) Kind() Kind { return KindBinarySet }
func (Map) Kind() Kind       { return KindMap }
func (List) Kind() Kind      { return KindList }

func (String) isValue()    {}
func (Number) isValue()    {}
func (Bool) isValue()      {}
func (Binary) isValue()    {}
func (StringSet) isValue() {}
func (NumberSet) isValue() {}
func (BinarySet) isValue() {}
func (Map) isValue()       {}
func (List) isValue()      {}
