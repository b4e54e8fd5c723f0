package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dynattr/dynattr/attr"
	"github.com/dynattr/dynattr/errs"
)

func TestDateTime_RoundTrip(t *testing.T) {
	in := time.Date(2026, 8, 26, 15, 4, 5, 123456000, time.FixedZone("CEST", 2*3600))

	v := DateTime(in)
	require.Equal(t, "2026-08-26T13:04:05.123456+0000", v.Value)

	out, err := ParseDateTime(v)
	require.NoError(t, err)
	require.True(t, in.Equal(out))
}

func TestParseDateTime_Errors(t *testing.T) {
	_, err := ParseDateTime(attr.String{Value: "yesterday"})
	require.ErrorIs(t, err, errs.ErrParse)

	_, err = ParseDateTime(attr.Bool{Value: true})
	require.ErrorIs(t, err, errs.ErrKindMismatch)
}

func TestJSON_RoundTrip(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	v, err := JSON(payload{Name: "x", Count: 3})
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"x","count":3}`, v.Value)

	var out payload
	require.NoError(t, ParseJSON(v, &out))
	require.Equal(t, payload{Name: "x", Count: 3}, out)
}

func TestParseJSON_Errors(t *testing.T) {
	var out map[string]any

	err := ParseJSON(attr.String{Value: "{broken"}, &out)
	require.ErrorIs(t, err, errs.ErrParse)

	err = ParseJSON(attr.NumberFromInt64(1), &out)
	require.ErrorIs(t, err, errs.ErrKindMismatch)
}
