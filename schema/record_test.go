package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dynattr/dynattr/attr"
	"github.com/dynattr/dynattr/errs"
	"github.com/dynattr/dynattr/wire"
)

func TestSchema_Serialize(t *testing.T) {
	s := threadSchema(t)

	doc, err := s.Serialize(Record{
		"forum_name": attr.String{Value: "gophers"},
		"subject":    attr.String{Value: "generics"},
		"tags":       attr.NewStringSet("b", "a"),
		"public":     attr.Bool{Value: true},
	})
	require.NoError(t, err)

	require.Equal(t, wire.Document{
		"forum_name": wire.String("gophers"),
		"subject":    wire.String("generics"),
		"views":      wire.Number("0"), // default applied
		"tags":       wire.StringSet([]string{"a", "b"}),
		"public":     wire.Bool(true),
	}, doc)
}

func TestSchema_Serialize_MissingRequired(t *testing.T) {
	s := threadSchema(t)

	_, err := s.Serialize(Record{"forum_name": attr.String{Value: "gophers"}})
	require.ErrorIs(t, err, errs.ErrMissingAttribute)
}

func TestSchema_Serialize_ExplicitEmptyRequired(t *testing.T) {
	s := threadSchema(t)

	_, err := s.Serialize(Record{
		"forum_name": attr.String{Value: "gophers"},
		"subject":    attr.String{Value: ""},
	})
	require.ErrorIs(t, err, errs.ErrNullNotAllowed)
}

func TestSchema_Serialize_UnknownField(t *testing.T) {
	s := threadSchema(t)

	_, err := s.Serialize(Record{"bogus": attr.Bool{Value: true}})
	require.ErrorIs(t, err, errs.ErrUnknownAttribute)
}

func TestSchema_Serialize_KindMismatch(t *testing.T) {
	s := threadSchema(t)

	_, err := s.Serialize(Record{
		"forum_name": attr.String{Value: "gophers"},
		"subject":    attr.String{Value: "generics"},
		"views":      attr.String{Value: "not a number"},
	})
	require.ErrorIs(t, err, errs.ErrKindMismatch)
}

func TestSchema_Serialize_NullableOmitted(t *testing.T) {
	s := threadSchema(t)

	doc, err := s.Serialize(Record{
		"forum_name": attr.String{Value: "gophers"},
		"subject":    attr.String{Value: "generics"},
		"tags":       attr.StringSet{}, // empty set on a nullable attribute
	})
	require.NoError(t, err)

	_, present := doc["tags"]
	require.False(t, present)
}

func TestSchema_Serialize_DateTimeValidation(t *testing.T) {
	s := threadSchema(t)

	base := Record{
		"forum_name": attr.String{Value: "gophers"},
		"subject":    attr.String{Value: "generics"},
	}

	base["last_post"] = attr.String{Value: "not a timestamp"}
	_, err := s.Serialize(base)
	require.ErrorIs(t, err, errs.ErrKindMismatch)

	base["last_post"] = DateTime(time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC))
	doc, err := s.Serialize(base)
	require.NoError(t, err)
	require.Equal(t, wire.String("2026-08-26T12:00:00.000000+0000"), doc["last_post"])
}

func TestSchema_Serialize_WireNameMapping(t *testing.T) {
	s, err := New("aliased",
		Attribute{Name: "user_id", WireName: "uid", Kind: KindString, HashKey: true},
	)
	require.NoError(t, err)

	doc, err := s.Serialize(Record{"user_id": attr.String{Value: "u1"}})
	require.NoError(t, err)

	require.Equal(t, wire.Document{"uid": wire.String("u1")}, doc)

	rec, err := s.Deserialize(doc)
	require.NoError(t, err)
	require.Equal(t, Record{"user_id": attr.String{Value: "u1"}}, rec)
}

func TestSchema_Deserialize(t *testing.T) {
	s := threadSchema(t)

	rec, err := s.Deserialize(wire.Document{
		"forum_name": wire.String("gophers"),
		"subject":    wire.String("generics"),
		"views":      wire.Number("7"),
		"meta": wire.Map(map[string]wire.Value{
			"pinned": wire.Bool(true),
		}),
	})
	require.NoError(t, err)

	require.Equal(t, Record{
		"forum_name": attr.String{Value: "gophers"},
		"subject":    attr.String{Value: "generics"},
		"views":      attr.Number{Value: "7"},
		"meta": attr.Map{Entries: map[string]attr.Value{
			"pinned": attr.Bool{Value: true},
		}},
	}, rec)
}

func TestSchema_Deserialize_Errors(t *testing.T) {
	s := threadSchema(t)

	_, err := s.Deserialize(wire.Document{"bogus": wire.Bool(true)})
	require.ErrorIs(t, err, errs.ErrUnknownAttribute)

	_, err = s.Deserialize(wire.Document{"forum_name": wire.String("gophers")})
	require.ErrorIs(t, err, errs.ErrMissingAttribute)

	_, err = s.Deserialize(wire.Document{
		"forum_name": wire.String("gophers"),
		"subject":    wire.String("generics"),
		"views":      wire.String("7"), // wrong tag for declared kind
	})
	require.ErrorIs(t, err, errs.ErrKindMismatch)
}

func TestSchema_RoundTrip(t *testing.T) {
	s := threadSchema(t)

	original := Record{
		"forum_name": attr.String{Value: "gophers"},
		"subject":    attr.String{Value: "generics"},
		"views":      attr.NumberFromInt64(12),
		"tags":       attr.NewStringSet("go", "types"),
		"last_post":  DateTime(time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)),
		"public":     attr.Bool{Value: false},
	}

	doc, err := s.Serialize(original)
	require.NoError(t, err)

	back, err := s.Deserialize(doc)
	require.NoError(t, err)
	require.Equal(t, original, back)
}
