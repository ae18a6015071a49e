package ewpayload

import (
	"fmt"

	"github.com/jRubio4/EW-Payload-Plotter/internal/records"
)

// FieldSet offers typed helpers on top of the decoded record.
type FieldSet struct {
	rec *records.Record
}

// FieldSet returns a FieldSet wrapper for the result's fields.
func (r Result) FieldSet() FieldSet {
	return FieldSet{rec: r.Fields}
}

// Names lists the field names in display order.
func (fs FieldSet) Names() []string {
	return fs.rec.Names()
}

// Map exposes the fields as plain Go values for callers that need raw access.
func (fs FieldSet) Map() map[string]any {
	return fs.rec.Map()
}

// Raw returns the stored value without conversions.
func (fs FieldSet) Raw(key string) (any, bool) {
	v, ok := fs.rec.Get(key)
	if !ok {
		return nil, false
	}
	return v.Interface(), true
}

// Float returns a numeric field as float64.
func (fs FieldSet) Float(key string) (float64, error) {
	v, ok := fs.rec.Get(key)
	if !ok {
		return 0, fmt.Errorf("field %q missing", key)
	}
	f, ok := v.Float64()
	if !ok {
		return 0, fmt.Errorf("field %q is not numeric (%s)", key, v.Kind())
	}
	return f, nil
}

// Int returns an integer field as int64.
func (fs FieldSet) Int(key string) (int64, error) {
	v, ok := fs.rec.Get(key)
	if !ok {
		return 0, fmt.Errorf("field %q missing", key)
	}
	i, ok := v.Int64()
	if !ok {
		return 0, fmt.Errorf("field %q is not integer (%s)", key, v.Kind())
	}
	return i, nil
}

// String returns the field as a string, without units.
func (fs FieldSet) String(key string) (string, error) {
	v, ok := fs.rec.Get(key)
	if !ok {
		return "", fmt.Errorf("field %q missing", key)
	}
	return v.String(), nil
}

// Display returns the field rendered with its unit, e.g. "3.6 V".
func (fs FieldSet) Display(key string) (string, error) {
	v, ok := fs.rec.Get(key)
	if !ok {
		return "", fmt.Errorf("field %q missing", key)
	}
	return records.Field{Name: key, Value: v}.Display(), nil
}

// IsNotUsed reports whether the product variant left the field empty.
func (fs FieldSet) IsNotUsed(key string) bool {
	v, ok := fs.rec.Get(key)
	return ok && v.IsNotUsed()
}
