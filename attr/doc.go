// Package attr implements the native value model and the recursive codec
// between native values and wire values.
//
// # Value Model
//
// Native values form a closed tagged union: String, Number, Bool, Binary,
// StringSet, NumberSet, BinarySet, Map and List. The Encoder dispatches on
// the variant with an exhaustive type switch; there is no reflection and no
// way to extend the union from outside the package.
//
// Numbers are decimal text, not float64, so precision survives a round trip
// through the wire format. Use NumberFromInt64, NumberFromFloat64 or
// NewNumber to construct them.
//
// # Encoding Rules
//
//   - String encodes under the S tag; the empty string is absent.
//   - Number encodes under the N tag as validated decimal text.
//   - Bool encodes under the dedicated BOOL tag, also when nested inside
//     maps and lists.
//   - Binary encodes under the B tag as base64 text.
//   - Sets encode under SS, NS or BS as deterministic sorted sequences with
//     duplicates dropped; an empty set is absent.
//   - Map encodes under the M tag, recursing per entry; absent entry values
//     are omitted and empty keys are rejected.
//   - List encodes under the L tag, recursing per element with order
//     preserved exactly; absent elements are rejected.
//
// Absent values never reach the wire: EncodeDocument omits them, and Encode
// reports them through its presence result.
//
// # Recursion Guard
//
// Encode and decode recursion is bounded by a configurable depth limit
// (default DefaultMaxDepth) and fails with errs.ErrDepthExceeded beyond it,
// keeping adversarial nesting from growing the call stack without bound.
//
// # Concurrency
//
// Encoders and Decoders hold no per-call state. All operations are pure and
// reentrant; a single instance may be shared across goroutines.
package attr
