package attr

import (
	"bytes"
	"sort"
)

// NewStringSet builds a StringSet in canonical order: members sorted
// lexicographically with duplicates dropped.
func NewStringSet(vals ...string) StringSet {
	return StringSet{Values: canonicalStrings(vals)}
}

// NewNumberSet builds a NumberSet from decimal text members, validating
// each and canonicalizing to numeric order with numerically equal
// duplicates dropped.
func NewNumberSet(vals ...string) (NumberSet, error) {
	for _, v := range vals {
		if err := validateDecimal(v); err != nil {
			return NumberSet{}, err
		}
	}

	return NumberSet{Values: canonicalNumbers(vals)}, nil
}

// NewBinarySet builds a BinarySet in canonical order: members sorted by
// byte order with duplicates dropped. Member slices are not copied.
func NewBinarySet(vals ...[]byte) BinarySet {
	return BinarySet{Values: canonicalBinary(vals)}
}

// canonicalStrings returns a sorted, de-duplicated copy of vals.
func canonicalStrings(vals []string) []string {
	if len(vals) == 0 {
		return nil
	}

	out := make([]string, len(vals))
	copy(out, vals)
	sort.Strings(out)

	return dedupe(out, func(a, b string) bool { return a == b })
}

// canonicalNumbers returns a copy of vals sorted by numeric order, with
// numerically equal members collapsed to the first occurrence. Members must
// already be validated decimal text.
func canonicalNumbers(vals []string) []string {
	if len(vals) == 0 {
		return nil
	}

	out := make([]string, len(vals))
	copy(out, vals)
	sort.SliceStable(out, func(i, j int) bool {
		return compareDecimal(out[i], out[j]) < 0
	})

	return dedupe(out, func(a, b string) bool { return compareDecimal(a, b) == 0 })
}

// canonicalBinary returns a copy of vals sorted by byte order with
// duplicates dropped. The member slices themselves are shared, not copied.
func canonicalBinary(vals [][]byte) [][]byte {
	if len(vals) == 0 {
		return nil
	}

	out := make([][]byte, len(vals))
	copy(out, vals)
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i], out[j]) < 0
	})

	return dedupe(out, func(a, b []byte) bool { return bytes.Equal(a, b) })
}

// dedupe removes adjacent equal members from a sorted slice in place.
func dedupe[T any](sorted []T, eq func(a, b T) bool) []T {
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if !eq(out[len(out)-1], v) {
			out = append(out, v)
		}
	}

	return out
}
