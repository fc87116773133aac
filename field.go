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

import "fmt"

// Field describes one value slot in a definition: a key, a wire type,
// and for arrays an element type. Fields are plain data; they are
// validated and bound to codecs when a definition is constructed, and a
// bad field fails the whole construction.
type Field struct {
	// Key names the field in encoded and decoded maps. It must be
	// non-empty and unique within a definition.
	Key string

	// Type selects the wire codec.
	Type Type

	// Elem is the element type for Array fields, and must be left zero
	// for every other type. Fixed-width types and VarUint qualify;
	// strings and arrays do not nest.
	Elem Type
}

// boundField is a validated field with its codec resolved. Definitions
// hold bound fields; they never change after construction.
type boundField struct {
	key   string
	typ   Type
	elem  Type
	codec codec
}

// bindField validates f and resolves its codec. Primitive codecs are
// shared instances; array codecs are built fresh around the element's
// shared codec.
func bindField(f Field) (boundField, error) {
	if f.Key == "" {
		return boundField{}, ErrEmptyFieldKey
	}
	if f.Type == Array {
		if f.Elem == TypeInvalid {
			return boundField{}, fmt.Errorf("field %q: %w", f.Key, ErrMissingElementType)
		}
		if !elementType(f.Elem) {
			return boundField{}, fmt.Errorf("field %q: %s elements: %w", f.Key, f.Elem, ErrInvalidElementType)
		}
		return boundField{key: f.Key, typ: f.Type, elem: f.Elem, codec: arrayCodec{elem: codecs[f.Elem]}}, nil
	}
	if f.Elem != TypeInvalid {
		return boundField{}, fmt.Errorf("field %q: %w", f.Key, ErrUnexpectedElementType)
	}
	c, ok := codecs[f.Type]
	if !ok {
		return boundField{}, fmt.Errorf("field %q: %s: %w", f.Key, f.Type, ErrUnknownType)
	}
	return boundField{key: f.Key, typ: f.Type, codec: c}, nil
}

// elementType reports whether t can be an array element.
func elementType(t Type) bool {
	switch t {
	case Bool, Int8, Uint8, Int16, Uint16, Int32, Uint32, Float32, Float64, VarUint:
		return true
	default:
		return false
	}
}
