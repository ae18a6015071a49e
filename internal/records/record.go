// Package records holds the ordered field record produced by the product
// drivers and the typed values stored in it.
package records

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Field is one labelled value of a decoded uplink.
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Value Value  `json:"value" yaml:"value"`
}

// Record keeps fields in the order the driver emitted them.
type Record struct {
	fields []Field
	index  map[string]int
	notes  []string
}

// New returns an empty record.
func New() *Record {
	return &Record{index: make(map[string]int)}
}

// Set appends the field, or replaces the value in place when the name is
// already present.
func (r *Record) Set(name string, v Value) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[name]; ok {
		r.fields[i].Value = v
		return
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, Field{Name: name, Value: v})
}

// Get returns the value stored under name.
func (r *Record) Get(name string) (Value, bool) {
	if r == nil {
		return Value{}, false
	}
	i, ok := r.index[name]
	if !ok {
		return Value{}, false
	}
	return r.fields[i].Value, true
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fields)
}

// Fields returns a copy of the fields in emission order.
func (r *Record) Fields() []Field {
	if r == nil {
		return nil
	}
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Names lists field names in emission order.
func (r *Record) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

// Note attaches a decoding remark that is not itself a field, such as a
// truncated measurement block.
func (r *Record) Note(msg string) {
	r.notes = append(r.notes, msg)
}

// Notes returns the remarks attached while decoding.
func (r *Record) Notes() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.notes...)
}

// Map flattens the record into an unordered map of plain Go values.
func (r *Record) Map() map[string]any {
	out := make(map[string]any, r.Len())
	if r == nil {
		return out
	}
	for _, f := range r.fields {
		out[f.Name] = f.Value.Interface()
	}
	return out
}

// MarshalJSON renders the record as a JSON object preserving field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if r != nil {
		for i, f := range r.fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(f.Name)
			if err != nil {
				return nil, err
			}
			val, err := f.Value.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the record as an ordered mapping node.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	if r == nil {
		return node, nil
	}
	for _, f := range r.fields {
		var key, val yaml.Node
		if err := key.Encode(f.Name); err != nil {
			return nil, err
		}
		if err := val.Encode(f.Value.Interface()); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}
