package wire

// Tag identifies the wire-level type of a Value. The enumeration is fixed by
// the remote store's document format; a Value carrying any other tag is
// rejected during decoding.
type Tag string

const (
	TagString    Tag = "S"    // TagString represents a UTF-8 text payload.
	TagNumber    Tag = "N"    // TagNumber represents a decimal number as text.
	TagBinary    Tag = "B"    // TagBinary represents binary data as base64 text.
	TagBool      Tag = "BOOL" // TagBool represents a boolean payload.
	TagStringSet Tag = "SS"   // TagStringSet represents a set of text payloads.
	TagNumberSet Tag = "NS"   // TagNumberSet represents a set of decimal-text payloads.
	TagBinarySet Tag = "BS"   // TagBinarySet represents a set of base64-text payloads.
	TagMap       Tag = "M"    // TagMap represents a nested map of wire values.
	TagList      Tag = "L"    // TagList represents an ordered list of wire values.
)

// Valid reports whether the tag belongs to the fixed enumeration.
func (t Tag) Valid() bool {
	switch t {
	case TagString, TagNumber, TagBinary, TagBool,
		TagStringSet, TagNumberSet, TagBinarySet,
		TagMap, TagList:
		return true
	default:
		return false
	}
}

// Composite reports whether the tag nests further wire values (M or L).
func (t Tag) Composite() bool {
	return t == TagMap || t == TagList
}

// IsSet reports whether the tag is one of the multi-value scalar set tags.
func (t Tag) IsSet() bool {
	return t == TagStringSet || t == TagNumberSet || t == TagBinarySet
}

func (t Tag) String() string {
	return string(t)
}
