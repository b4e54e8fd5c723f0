package attr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dynattr/dynattr/errs"
)

func TestNewStringSet(t *testing.T) {
	s := NewStringSet("c", "a", "b", "a")
	require.Equal(t, []string{"a", "b", "c"}, s.Values)

	empty := NewStringSet()
	require.Nil(t, empty.Values)
}

func TestNewNumberSet(t *testing.T) {
	s, err := NewNumberSet("3", "1.0", "1", "-2")
	require.NoError(t, err)
	require.Equal(t, []string{"-2", "1.0", "3"}, s.Values)

	_, err = NewNumberSet("1", "nope")
	require.ErrorIs(t, err, errs.ErrParse)
}

func TestNewBinarySet(t *testing.T) {
	s := NewBinarySet([]byte{0x02}, []byte{0x01}, []byte{0x02})
	require.Equal(t, [][]byte{{0x01}, {0x02}}, s.Values)
}

func TestCanonicalStrings_DoesNotMutateInput(t *testing.T) {
	in := []string{"b", "a"}
	out := canonicalStrings(in)
	require.Equal(t, []string{"a", "b"}, out)
	require.Equal(t, []string{"b", "a"}, in)
}

func TestCanonicalNumbers_StableFirstOccurrence(t *testing.T) {
	// Numerically equal members collapse to the first occurrence in the
	// sorted sequence.
	out := canonicalNumbers([]string{"1.0", "1", "1.00"})
	require.Len(t, out, 1)
	require.Equal(t, "1.0", out[0])
}
