// Copyright 2025 The Jettison Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jettison

import (
	"encoding/binary"
	"fmt"
)

// Definition is an ordered set of bound fields that encodes map values
// to a compact wire image and back. The wire image carries no keys, no
// tags, and no padding: layout comes entirely from the definition, so
// both sides of the wire must hold the same one.
//
// A Definition never changes after construction and is safe for
// concurrent use.
type Definition struct {
	name   string
	id     uint64
	order  binary.ByteOrder
	fields []boundField
	fixed  int // wire size when every field is fixed-width, else -1
}

// NewDefinition validates fields, binds their codecs, and returns a
// standalone definition. When every field is fixed-width the wire size
// is computed here, once, and encoding skips per-value measurement.
//
// Standalone definitions have no name and no id; use [Schema.Define] for
// dispatchable messages.
func NewDefinition(fields []Field, opts ...DefinitionOption) (*Definition, error) {
	o := definitionOptions{order: binary.BigEndian}
	for _, opt := range opts {
		opt(&o)
	}
	return newDefinition("", 0, fields, o.order)
}

func newDefinition(name string, id uint64, fields []Field, order binary.ByteOrder) (*Definition, error) {
	d := &Definition{
		name:   name,
		id:     id,
		order:  order,
		fields: make([]boundField, 0, len(fields)),
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		bf, err := bindField(f)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[bf.key]; dup {
			return nil, fmt.Errorf("field %q: %w", bf.key, ErrDuplicateFieldKey)
		}
		seen[bf.key] = struct{}{}
		d.fields = append(d.fields, bf)
		if d.fixed >= 0 {
			if w := bf.codec.fixedSize(); w >= 0 {
				d.fixed += w
			} else {
				d.fixed = -1
			}
		}
	}
	return d, nil
}

// Name returns the message name. Standalone definitions have none.
func (d *Definition) Name() string {
	return d.name
}

// ID returns the schema-assigned message id. Standalone definitions
// return 0; schema ids start at 1.
func (d *Definition) ID() uint64 {
	return d.id
}

// ByteOrder returns the order fixed-width fields encode in.
func (d *Definition) ByteOrder() binary.ByteOrder {
	return d.order
}

// Fixed returns the precomputed wire size and true when every field is
// fixed-width, or 0 and false when the size depends on values.
func (d *Definition) Fixed() (int, bool) {
	if d.fixed >= 0 {
		return d.fixed, true
	}
	return 0, false
}

// Fields returns the field descriptors in declared order.
func (d *Definition) Fields() []Field {
	out := make([]Field, len(d.fields))
	for i, f := range d.fields {
		out[i] = Field{Key: f.key, Type: f.typ, Elem: f.elem}
	}
	return out
}

// Size returns the number of bytes Encode will produce for value.
// Fixed-width definitions answer without reading the value.
func (d *Definition) Size(value map[string]any) (int, error) {
	if d.fixed >= 0 {
		return d.fixed, nil
	}
	total := 0
	for i := range d.fields {
		f := &d.fields[i]
		n, err := f.codec.size(value[f.key])
		if err != nil {
			return 0, &ValueError{Key: f.key, Type: f.typ, Value: value[f.key], Err: err}
		}
		total += n
	}
	return total, nil
}

// Encode writes value field by field in declared order to a fresh buffer
// of exactly the encoded size. Keys missing from value encode as the
// field's zero value; keys the definition does not know are ignored. A
// value of an un-coercible Go type fails with a [*ValueError].
func (d *Definition) Encode(value map[string]any) ([]byte, error) {
	n, err := d.Size(value)
	if err != nil {
		return nil, err
	}
	view := NewStreamView(n)
	if err := d.encodeTo(view, value); err != nil {
		return nil, err
	}
	return view.Bytes(), nil
}

// encodeTo writes value at the view's cursor. Schema encoding reuses it
// after the id prefix.
func (d *Definition) encodeTo(view *StreamView, value map[string]any) error {
	for i := range d.fields {
		f := &d.fields[i]
		if err := f.codec.encode(view, d.order, value[f.key]); err != nil {
			return &ValueError{Key: f.key, Type: f.typ, Value: value[f.key], Err: err}
		}
	}
	return nil
}

// Decode reads one value image from the start of data. Every field is
// read in declared order; bytes past the last field are ignored. Data
// shorter than the layout demands fails with [ErrOutOfRange].
func (d *Definition) Decode(data []byte) (map[string]any, error) {
	return d.decodeFrom(WrapStreamView(data))
}

// decodeFrom reads one value image at the view's cursor.
func (d *Definition) decodeFrom(view *StreamView) (map[string]any, error) {
	out := make(map[string]any, len(d.fields))
	for i := range d.fields {
		f := &d.fields[i]
		v, err := f.codec.decode(view, d.order)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.key, err)
		}
		out[f.key] = v
	}
	return out, nil
}
