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

import "encoding/binary"

// codec encodes and decodes values of one wire type. Implementations are
// stateless: the shared instances below serve every definition, and array
// codecs are built per field around a shared element codec.
type codec interface {
	// fixedSize returns the wire size in bytes when it does not depend on
	// the value, or -1 for length-prefixed encodings.
	fixedSize() int

	// size returns the encoded size of value in bytes.
	size(value any) (int, error)

	// encode writes value at the view's cursor in the given byte order.
	encode(view *StreamView, order binary.ByteOrder, value any) error

	// decode reads one value at the view's cursor in the given byte order.
	decode(view *StreamView, order binary.ByteOrder) (any, error)
}

// codecs holds the shared codec for every type except Array, which needs
// an element type and is constructed in bindField.
var codecs = map[Type]codec{
	Bool:      boolCodec{},
	Int8:      newIntCodec(1, true),
	Uint8:     newIntCodec(1, false),
	Int16:     newIntCodec(2, true),
	Uint16:    newIntCodec(2, false),
	Int32:     newIntCodec(4, true),
	Uint32:    newIntCodec(4, false),
	Float32:   floatCodec{width: 4},
	Float64:   floatCodec{width: 8},
	VarUint:   varUintCodec{},
	String:    stringCodec{},
	BoolArray: boolArrayCodec{},
}
