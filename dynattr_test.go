package dynattr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/dynattr/dynattr/attr"
	"github.com/dynattr/dynattr/errs"
	"github.com/dynattr/dynattr/wire"
)

func TestMarshalJSON_Golden(t *testing.T) {
	rec := map[string]attr.Value{
		"k1": attr.String{Value: "v1"},
		"k2": attr.List{Items: []attr.Value{
			attr.NumberFromInt64(1),
			attr.NumberFromInt64(2),
		}},
	}

	data, err := MarshalJSON(rec)
	require.NoError(t, err)
	require.JSONEq(t, `{"k1":{"S":"v1"},"k2":{"L":[{"N":"1"},{"N":"2"}]}}`, string(data))
}

func TestMarshalJSON_SortedSet(t *testing.T) {
	data, err := MarshalJSON(map[string]attr.Value{
		"s": attr.StringSet{Values: []string{"b", "a"}},
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"s":{"SS":["a","b"]}}`, string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	rec, err := UnmarshalJSON([]byte(`{"x":{"N":"5"}}`))
	require.NoError(t, err)
	require.Equal(t, map[string]attr.Value{"x": attr.Number{Value: "5"}}, rec)
}

func TestUnmarshalJSON_Rejections(t *testing.T) {
	_, err := UnmarshalJSON([]byte(`{"x":{"S":"a","N":"1"}}`))
	require.ErrorIs(t, err, errs.ErrMalformedEntry)

	_, err = UnmarshalJSON([]byte(`{"x":{"X":"a"}}`))
	require.ErrorIs(t, err, errs.ErrUnknownTag)
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	rec := map[string]attr.Value{
		"name": attr.String{Value: "thing"},
		"nested": attr.Map{Entries: map[string]attr.Value{
			"list": attr.List{Items: []attr.Value{
				attr.Bool{Value: true},
				attr.Binary{Value: []byte{1, 2, 3}},
			}},
		}},
	}

	doc, err := Marshal(rec)
	require.NoError(t, err)

	back, err := Unmarshal(doc)
	require.NoError(t, err)

	if diff := cmp.Diff(rec, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFingerprint(t *testing.T) {
	docA := wire.Document{
		"a": wire.Number("1"),
		"b": wire.StringSet([]string{"x", "y"}),
	}
	docB := wire.Document{
		"b": wire.StringSet([]string{"x", "y"}),
		"a": wire.Number("1"),
	}

	fpA, err := Fingerprint(docA)
	require.NoError(t, err)
	fpB, err := Fingerprint(docB)
	require.NoError(t, err)
	require.Equal(t, fpA, fpB, "equal documents must fingerprint equally")

	docB["a"] = wire.Number("2")
	fpC, err := Fingerprint(docB)
	require.NoError(t, err)
	require.NotEqual(t, fpA, fpC)
}
