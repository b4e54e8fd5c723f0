package schema

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dynattr/dynattr/attr"
	"github.com/dynattr/dynattr/errs"
)

// DateTimeLayout is the textual form of DateTime attributes: UTC with
// microsecond precision and a numeric zone offset.
const DateTimeLayout = "2006-01-02T15:04:05.000000-0700"

// DateTime converts a timestamp into its text attribute form, normalized
// to UTC.
func DateTime(t time.Time) attr.String {
	return attr.String{Value: t.UTC().Format(DateTimeLayout)}
}

// ParseDateTime converts a DateTime text attribute back into a timestamp.
func ParseDateTime(v attr.Value) (time.Time, error) {
	s, ok := v.(attr.String)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: expected String, got %s", errs.ErrKindMismatch, v.Kind())
	}

	t, err := time.Parse(DateTimeLayout, s.Value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", errs.ErrParse, err)
	}

	return t, nil
}

// JSON marshals an arbitrary Go value into a JSON text attribute.
func JSON(v any) (attr.String, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return attr.String{}, err
	}

	return attr.String{Value: string(data)}, nil
}

// ParseJSON unmarshals a JSON text attribute into out.
func ParseJSON(v attr.Value, out any) error {
	s, ok := v.(attr.String)
	if !ok {
		return fmt.Errorf("%w: expected String, got %s", errs.ErrKindMismatch, v.Kind())
	}

	if err := json.Unmarshal([]byte(s.Value), out); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrParse, err)
	}

	return nil
}
