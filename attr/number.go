package attr

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/dynattr/dynattr/errs"
)

// NewNumber builds a Number from decimal text, validating the payload.
// The accepted grammar is the remote store's number format: an optional
// sign, a digit sequence with at most one decimal point, and an optional
// exponent. Infinities, NaN and hex floats are rejected.
func NewNumber(text string) (Number, error) {
	if err := validateDecimal(text); err != nil {
		return Number{}, err
	}

	return Number{Value: text}, nil
}

// NumberFromInt64 builds a Number from an integer.
func NumberFromInt64(n int64) Number {
	return Number{Value: strconv.FormatInt(n, 10)}
}

// NumberFromFloat64 builds a Number from a float, using the shortest text
// that round-trips the value. The exponent marker is normalized to lower
// case and negative zero collapses to zero.
func NumberFromFloat64(f float64) Number {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	s = strings.ReplaceAll(s, "E", "e")
	if s == "-0" {
		s = "0"
	}

	return Number{Value: s}
}

// validateDecimal checks that s matches the wire number grammar:
//
//	[sign] digits [. digits] [(e|E) [sign] digits]
//
// A decimal point requires at least one digit on one side.
func validateDecimal(s string) error {
	rest := s
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		rest = rest[1:]
	}

	intDigits := countDigits(rest)
	rest = rest[intDigits:]

	fracDigits := 0
	if len(rest) > 0 && rest[0] == '.' {
		rest = rest[1:]
		fracDigits = countDigits(rest)
		rest = rest[fracDigits:]
	}

	if intDigits+fracDigits == 0 {
		return fmt.Errorf("%w: %q is not a decimal number", errs.ErrParse, s)
	}

	if len(rest) > 0 && (rest[0] == 'e' || rest[0] == 'E') {
		rest = rest[1:]
		if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
			rest = rest[1:]
		}

		expDigits := countDigits(rest)
		if expDigits == 0 {
			return fmt.Errorf("%w: %q has an empty exponent", errs.ErrParse, s)
		}
		rest = rest[expDigits:]
	}

	if len(rest) > 0 {
		return fmt.Errorf("%w: %q is not a decimal number", errs.ErrParse, s)
	}

	return nil
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}

	return n
}

// numberCmpPrec is the mantissa precision used when comparing numbers for
// set ordering. 256 bits covers the remote store's 38 significant decimal
// digits with ample headroom.
const numberCmpPrec = 256

// compareDecimal orders two validated decimal strings numerically.
func compareDecimal(a, b string) int {
	fa, _, errA := big.ParseFloat(a, 10, numberCmpPrec, big.ToNearestEven)
	fb, _, errB := big.ParseFloat(b, 10, numberCmpPrec, big.ToNearestEven)
	if errA != nil || errB != nil {
		// Both operands are pre-validated; fall back to text order if
		// parsing fails anyway.
		return strings.Compare(a, b)
	}

	return fa.Cmp(fb)
}
