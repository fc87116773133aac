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

// Schema is a registry of named message definitions with sequentially
// assigned ids. Encoded messages carry the id first, so the receiving
// side dispatches to the right definition with a single read.
//
// Ids follow registration order, starting at 1. Both sides of the wire
// must define the same messages in the same order; nothing on the wire
// describes the layout. Defining is not safe concurrently with encoding
// or decoding, but a fully built schema is safe for concurrent use.
type Schema struct {
	order   binary.ByteOrder
	idType  Type
	idCodec codec
	idMax   uint64 // highest usable id; 0 means unbounded
	byName  map[string]*Definition
	byID    map[uint64]*Definition
	names   []string
	nextID  uint64
}

// NewSchema returns an empty schema. Ids encode as [Uint8] and
// definitions default to big-endian unless options say otherwise.
func NewSchema(opts ...SchemaOption) (*Schema, error) {
	o := schemaOptions{idType: Uint8, order: binary.BigEndian}
	for _, opt := range opts {
		opt(&o)
	}
	var idMax uint64
	switch o.idType {
	case Uint8:
		idMax = 1<<8 - 1
	case Uint16:
		idMax = 1<<16 - 1
	case Uint32:
		idMax = 1<<32 - 1
	case VarUint:
		idMax = 0
	default:
		return nil, fmt.Errorf("%s: %w", o.idType, ErrInvalidIDType)
	}
	return &Schema{
		order:   o.order,
		idType:  o.idType,
		idCodec: codecs[o.idType],
		idMax:   idMax,
		byName:  make(map[string]*Definition),
		byID:    make(map[uint64]*Definition),
		nextID:  1,
	}, nil
}

// MustSchema is like [NewSchema] but panics on invalid options. Use it
// for package-level schemas built from constants.
func MustSchema(opts ...SchemaOption) *Schema {
	s, err := NewSchema(opts...)
	if err != nil {
		panic(fmt.Sprintf("jettison.MustSchema: %v", err))
	}
	return s
}

// Define registers a message under the next unused id and returns its
// definition. Names must be unique and non-empty. When a fixed-width id
// type runs out of ids, Define fails with [ErrSchemaFull] rather than
// letting ids collide.
func (s *Schema) Define(name string, fields []Field, opts ...DefinitionOption) (*Definition, error) {
	if name == "" {
		return nil, ErrEmptyMessageName
	}
	if _, ok := s.byName[name]; ok {
		return nil, fmt.Errorf("%q: %w", name, ErrDuplicateMessage)
	}
	if s.idMax != 0 && s.nextID > s.idMax {
		return nil, fmt.Errorf("%q would take id %d but %s ids end at %d: %w",
			name, s.nextID, s.idType, s.idMax, ErrSchemaFull)
	}
	o := definitionOptions{order: s.order}
	for _, opt := range opts {
		opt(&o)
	}
	def, err := newDefinition(name, s.nextID, fields, o.order)
	if err != nil {
		return nil, fmt.Errorf("define %q: %w", name, err)
	}
	s.byName[name] = def
	s.byID[def.id] = def
	s.names = append(s.names, name)
	s.nextID++
	return def, nil
}

// MustDefine is like [Define] but panics on error. Use it for
// package-level schemas built from constants.
func (s *Schema) MustDefine(name string, fields []Field, opts ...DefinitionOption) *Definition {
	def, err := s.Define(name, fields, opts...)
	if err != nil {
		panic(fmt.Sprintf("jettison.MustDefine: %v", err))
	}
	return def
}

// Encode serializes value as the named message: the id through the id
// codec, then the definition's fields. Unknown names fail with
// [ErrUnknownMessage].
func (s *Schema) Encode(name string, value map[string]any) ([]byte, error) {
	def, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("encode %q: %w", name, ErrUnknownMessage)
	}
	idLen, err := s.idCodec.size(def.id)
	if err != nil {
		return nil, err
	}
	bodyLen, err := def.Size(value)
	if err != nil {
		return nil, err
	}
	view := NewStreamView(idLen + bodyLen)
	if err := s.idCodec.encode(view, s.order, def.id); err != nil {
		return nil, err
	}
	if err := def.encodeTo(view, value); err != nil {
		return nil, err
	}
	return view.Bytes(), nil
}

// Decode reads the id from the front of data, dispatches to the
// registered definition, and returns the message name with the decoded
// value. An id nothing was defined for fails with [ErrUnknownMessage];
// the caller decides whether that is fatal.
func (s *Schema) Decode(data []byte) (string, map[string]any, error) {
	view := WrapStreamView(data)
	raw, err := s.idCodec.decode(view, s.order)
	if err != nil {
		return "", nil, fmt.Errorf("message id: %w", err)
	}
	var id uint64
	switch n := raw.(type) {
	case int64:
		id = uint64(n)
	case uint64:
		id = n
	}
	def, ok := s.byID[id]
	if !ok {
		return "", nil, fmt.Errorf("message id %d: %w", id, ErrUnknownMessage)
	}
	value, err := def.decodeFrom(view)
	if err != nil {
		return "", nil, fmt.Errorf("message %q: %w", def.name, err)
	}
	return def.name, value, nil
}

// Size returns the encoded size of the named message, id prefix
// included. Callers framing their own transport can use it to reserve
// space before encoding.
func (s *Schema) Size(name string, value map[string]any) (int, error) {
	def, ok := s.byName[name]
	if !ok {
		return 0, fmt.Errorf("size %q: %w", name, ErrUnknownMessage)
	}
	idLen, err := s.idCodec.size(def.id)
	if err != nil {
		return 0, err
	}
	bodyLen, err := def.Size(value)
	if err != nil {
		return 0, err
	}
	return idLen + bodyLen, nil
}

// Names returns the registered message names in definition order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Definition returns the named definition, or false when the name was
// never defined.
func (s *Schema) Definition(name string) (*Definition, bool) {
	def, ok := s.byName[name]
	return def, ok
}

// Len returns the number of registered messages.
func (s *Schema) Len() int {
	return len(s.names)
}
