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

// Type identifies a wire codec. The set is closed: every field resolves to
// a codec from this set exactly once, when its definition is constructed.
type Type uint8

const (
	// TypeInvalid is the zero value. No valid field carries it.
	TypeInvalid Type = iota

	// Bool is a single byte: 1 for true, 0 for false. Any nonzero byte
	// decodes as true.
	Bool

	// Int8 is a signed 8-bit integer. Out-of-range values clamp to the
	// nearest representable value.
	Int8

	// Uint8 is an unsigned 8-bit integer.
	Uint8

	// Int16 is a signed 16-bit integer.
	Int16

	// Uint16 is an unsigned 16-bit integer.
	Uint16

	// Int32 is a signed 32-bit integer.
	Int32

	// Uint32 is an unsigned 32-bit integer.
	Uint32

	// Float32 is an IEEE 754 single-precision float. Floats never clamp;
	// narrowing only rounds precision away.
	Float32

	// Float64 is an IEEE 754 double-precision float.
	Float64

	// VarUint is a base-128 variable-length unsigned integer: seven bits
	// per byte, so small values stay small on the wire.
	VarUint

	// String is UTF-8 text prefixed with its byte count as a varuint.
	String

	// BoolArray is a bit-packed boolean sequence: a varuint count
	// followed by one bit per element.
	BoolArray

	// Array is a uniform sequence: a varuint count followed by one
	// element encoding each. Array fields must set [Field.Elem].
	Array
)

// String returns the descriptor name for the type, e.g. "uint16".
func (t Type) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case VarUint:
		return "varuint"
	case String:
		return "string"
	case BoolArray:
		return "boolarray"
	case Array:
		return "array"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// ParseType resolves a descriptor name to its Type. It accepts the names
// produced by [Type.String], plus the long-form aliases "boolean" and
// "booleanarray".
func ParseType(name string) (Type, error) {
	switch name {
	case "bool", "boolean":
		return Bool, nil
	case "int8":
		return Int8, nil
	case "uint8":
		return Uint8, nil
	case "int16":
		return Int16, nil
	case "uint16":
		return Uint16, nil
	case "int32":
		return Int32, nil
	case "uint32":
		return Uint32, nil
	case "float32":
		return Float32, nil
	case "float64":
		return Float64, nil
	case "varuint":
		return VarUint, nil
	case "string":
		return String, nil
	case "boolarray", "booleanarray":
		return BoolArray, nil
	case "array":
		return Array, nil
	default:
		return TypeInvalid, fmt.Errorf("%q: %w", name, ErrUnknownType)
	}
}
