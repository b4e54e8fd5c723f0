// Package errs defines the sentinel errors returned by dynattr packages.
//
// All errors are plain sentinel values so callers can classify failures with
// errors.Is. Failure sites wrap them with fmt.Errorf("%w: ...") to attach
// context such as the offending key, tag or type name.
package errs

import "errors"

// Codec errors, returned by the attr encoder/decoder.
var (
	// ErrUnsupportedType indicates a native value has no codec assigned to
	// its kind (e.g. a nil Value passed where a concrete variant is needed).
	ErrUnsupportedType = errors.New("unsupported value type")

	// ErrTypeMismatch indicates an input disagrees with the shape a codec
	// requires, such as a non-map value handed to the map codec.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidKey indicates a map entry key is empty. Wire map keys must
	// be non-empty strings.
	ErrInvalidKey = errors.New("invalid map key")

	// ErrMalformedEntry indicates a wire value does not carry exactly one
	// type tag.
	ErrMalformedEntry = errors.New("malformed wire entry")

	// ErrUnknownTag indicates a wire tag outside the fixed enumeration.
	ErrUnknownTag = errors.New("unknown wire tag")

	// ErrParse indicates a scalar wire payload failed to parse, such as a
	// non-decimal number payload.
	ErrParse = errors.New("payload parse failed")

	// ErrDecode indicates a scalar wire payload failed to decode, such as
	// invalid base64 in a binary payload.
	ErrDecode = errors.New("payload decode failed")

	// ErrDepthExceeded indicates nesting beyond the configured maximum
	// depth during encode or decode.
	ErrDepthExceeded = errors.New("nesting depth exceeded")

	// ErrAbsentListElement indicates an absent value (empty string, empty
	// set or nil) inside a list, where omission would shift element order.
	ErrAbsentListElement = errors.New("absent value in list")
)

// Schema errors, returned by the schema package.
var (
	// ErrUnknownAttribute indicates a record field or wire attribute that
	// the schema does not declare.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrMissingAttribute indicates a non-nullable attribute absent from a
	// record after defaults were applied.
	ErrMissingAttribute = errors.New("missing required attribute")

	// ErrNullNotAllowed indicates an explicit absent value for an attribute
	// declared non-nullable.
	ErrNullNotAllowed = errors.New("null not allowed")

	// ErrKindMismatch indicates a record value whose kind disagrees with
	// the attribute's declared kind.
	ErrKindMismatch = errors.New("attribute kind mismatch")

	// ErrInvalidSchema indicates a schema definition that fails validation,
	// such as a duplicate attribute name or a missing hash key.
	ErrInvalidSchema = errors.New("invalid schema")
)

// Snapshot errors, returned by the snapshot package.
var (
	// ErrInvalidEnvelope indicates snapshot data that is not a valid
	// envelope, or an envelope with an unsupported version.
	ErrInvalidEnvelope = errors.New("invalid snapshot envelope")

	// ErrChecksumMismatch indicates snapshot payload corruption detected by
	// the checksum.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")
)
