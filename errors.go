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
	"errors"
	"fmt"
)

// Static errors for construction, encoding, and decoding.
var (
	ErrOutOfRange            = errors.New("access beyond end of buffer")
	ErrUnknownMessage        = errors.New("message not defined in schema")
	ErrEmptyMessageName      = errors.New("message name is empty")
	ErrDuplicateMessage      = errors.New("message already defined")
	ErrSchemaFull            = errors.New("message id space exhausted")
	ErrInvalidIDType         = errors.New("id type must be uint8, uint16, uint32, or varuint")
	ErrEmptyFieldKey         = errors.New("field key is empty")
	ErrDuplicateFieldKey     = errors.New("duplicate field key")
	ErrUnknownType           = errors.New("unknown type")
	ErrMissingElementType    = errors.New("array field requires an element type")
	ErrUnexpectedElementType = errors.New("element type is only valid for array fields")
	ErrInvalidElementType    = errors.New("arrays and strings do not nest")
	ErrUnsupportedValue      = errors.New("unsupported value type")
	ErrVarintOverflow        = errors.New("varuint overflows 64 bits")
)

// ValueError reports a value that could not be encoded for a field.
// It carries the field key, the wire type, and the rejected value.
//
// Use [errors.As] to check for ValueError:
//
//	var valErr *jettison.ValueError
//	if errors.As(err, &valErr) {
//	    fmt.Printf("Field: %s, Type: %s\n", valErr.Key, valErr.Type)
//	}
type ValueError struct {
	Key   string // Field key that rejected the value
	Type  Type   // Wire type of the field
	Value any    // The value that failed to encode
	Err   error  // Underlying error
}

// Error returns a formatted error message with field context.
func (e *ValueError) Error() string {
	return fmt.Sprintf("encoding field %q (%s): %v", e.Key, e.Type, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *ValueError) Unwrap() error {
	return e.Err
}

// errUnsupported builds the codec-level error for a value of the wrong Go
// type. Field context is attached one layer up, where the key is known.
func errUnsupported(value any) error {
	return fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
}
