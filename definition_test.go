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

//go:build !integration

package jettison

import (
	"encoding/binary"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefinitionValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fields  []Field
		wantErr error
	}{
		{
			name:    "empty key",
			fields:  []Field{{Key: "", Type: Uint8}},
			wantErr: ErrEmptyFieldKey,
		},
		{
			name:    "duplicate key",
			fields:  []Field{{Key: "x", Type: Uint8}, {Key: "x", Type: Int16}},
			wantErr: ErrDuplicateFieldKey,
		},
		{
			name:    "zero type",
			fields:  []Field{{Key: "x"}},
			wantErr: ErrUnknownType,
		},
		{
			name:    "unknown type",
			fields:  []Field{{Key: "x", Type: Type(200)}},
			wantErr: ErrUnknownType,
		},
		{
			name:    "array without element type",
			fields:  []Field{{Key: "x", Type: Array}},
			wantErr: ErrMissingElementType,
		},
		{
			name:    "array of strings",
			fields:  []Field{{Key: "x", Type: Array, Elem: String}},
			wantErr: ErrInvalidElementType,
		},
		{
			name:    "array of arrays",
			fields:  []Field{{Key: "x", Type: Array, Elem: Array}},
			wantErr: ErrInvalidElementType,
		},
		{
			name:    "array of boolean arrays",
			fields:  []Field{{Key: "x", Type: Array, Elem: BoolArray}},
			wantErr: ErrInvalidElementType,
		},
		{
			name:    "array of unknown elements",
			fields:  []Field{{Key: "x", Type: Array, Elem: Type(200)}},
			wantErr: ErrInvalidElementType,
		},
		{
			name:    "element type on a scalar field",
			fields:  []Field{{Key: "x", Type: Uint8, Elem: Uint8}},
			wantErr: ErrUnexpectedElementType,
		},
		{
			name:    "valid field after a bad one still fails",
			fields:  []Field{{Key: "ok", Type: Uint8}, {Key: "", Type: Uint8}},
			wantErr: ErrEmptyFieldKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewDefinition(tt.fields)
			require.ErrorIs(t, err, tt.wantErr, "Expected construction to fail for %s", tt.name)
		})
	}
}

func TestNewDefinitionAcceptsEveryElementType(t *testing.T) {
	t.Parallel()

	for _, elem := range []Type{Bool, Int8, Uint8, Int16, Uint16, Int32, Uint32, Float32, Float64, VarUint} {
		_, err := NewDefinition([]Field{{Key: "a", Type: Array, Elem: elem}})
		require.NoError(t, err, "Expected %s elements to be accepted", elem)
	}
}

func TestDefinitionFieldOrder(t *testing.T) {
	t.Parallel()

	def, err := NewDefinition([]Field{
		{Key: "x", Type: Int16},
		{Key: "y", Type: Int16},
		{Key: "hp", Type: Uint8},
	})
	require.NoError(t, err)

	data, err := def.Encode(map[string]any{"x": 120, "y": -45, "hp": 87})
	require.NoError(t, err)

	// Declared order, big-endian, no tags and no padding.
	assert.Equal(t, []byte{
		0x00, 0x78, // x = 120
		0xFF, 0xD3, // y = -45
		0x57, // hp = 87
	}, data)

	decoded, err := def.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": int64(120), "y": int64(-45), "hp": int64(87)}, decoded)
}

func TestDefinitionFixedSize(t *testing.T) {
	t.Parallel()

	def, err := NewDefinition([]Field{
		{Key: "a", Type: Uint8},
		{Key: "b", Type: Int32},
		{Key: "c", Type: Float64},
	})
	require.NoError(t, err)

	size, fixed := def.Fixed()
	assert.True(t, fixed, "All-fixed-width definitions know their size up front")
	assert.Equal(t, 13, size)

	// Size ignores the value entirely for fixed layouts.
	n, err := def.Size(nil)
	require.NoError(t, err)
	assert.Equal(t, 13, n)

	n, err = def.Size(map[string]any{"a": 1, "b": 2, "c": 3.0})
	require.NoError(t, err)
	assert.Equal(t, 13, n)
}

func TestDefinitionDynamicSize(t *testing.T) {
	t.Parallel()

	def, err := NewDefinition([]Field{
		{Key: "id", Type: Uint8},
		{Key: "name", Type: String},
	})
	require.NoError(t, err)

	_, fixed := def.Fixed()
	assert.False(t, fixed, "A string field makes the layout value-dependent")

	n, err := def.Size(map[string]any{"id": 1, "name": "abc"})
	require.NoError(t, err)
	assert.Equal(t, 1+1+3, n)

	data, err := def.Encode(map[string]any{"id": 1, "name": "abc"})
	require.NoError(t, err)
	assert.Len(t, data, n, "Encode must allocate exactly Size bytes")
}

func TestDefinitionMissingKeysEncodeZero(t *testing.T) {
	t.Parallel()

	def, err := NewDefinition([]Field{
		{Key: "n", Type: Int32},
		{Key: "f", Type: Float64},
		{Key: "ok", Type: Bool},
		{Key: "s", Type: String},
	})
	require.NoError(t, err)

	data, err := def.Encode(map[string]any{})
	require.NoError(t, err)

	decoded, err := def.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"n":  int64(0),
		"f":  float64(0),
		"ok": false,
		"s":  "",
	}, decoded)
}

func TestDefinitionUnknownKeysIgnored(t *testing.T) {
	t.Parallel()

	def, err := NewDefinition([]Field{{Key: "x", Type: Uint8}})
	require.NoError(t, err)

	data, err := def.Encode(map[string]any{"x": 1, "stray": "ignored"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, data, "Keys the definition does not know contribute nothing")
}

func TestDefinitionByteOrder(t *testing.T) {
	t.Parallel()

	fields := []Field{{Key: "a", Type: Uint16}, {Key: "b", Type: Uint32}}
	value := map[string]any{"a": 0x0102, "b": 0x0A0B0C0D}

	be, err := NewDefinition(fields)
	require.NoError(t, err)
	beData, err := be.Encode(value)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x0A, 0x0B, 0x0C, 0x0D}, beData)

	le, err := NewDefinition(fields, WithByteOrder(binary.LittleEndian))
	require.NoError(t, err)
	leData, err := le.Encode(value)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x01, 0x0D, 0x0C, 0x0B, 0x0A}, leData)

	// Each side only reads its own order correctly.
	decoded, err := le.Decode(leData)
	require.NoError(t, err)
	assert.Equal(t, int64(0x0102), decoded["a"])
}

func TestDefinitionEmptyFieldList(t *testing.T) {
	t.Parallel()

	def, err := NewDefinition(nil)
	require.NoError(t, err)

	size, fixed := def.Fixed()
	assert.True(t, fixed)
	assert.Zero(t, size)

	data, err := def.Encode(nil)
	require.NoError(t, err)
	assert.Empty(t, data, "No fields means zero wire bytes")

	decoded, err := def.Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDefinitionDecodeShortBuffer(t *testing.T) {
	t.Parallel()

	def, err := NewDefinition([]Field{
		{Key: "a", Type: Uint32},
		{Key: "b", Type: Uint32},
	})
	require.NoError(t, err)

	_, err = def.Decode([]byte{0x00, 0x00, 0x00, 0x01, 0x00})
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorContains(t, err, `field "b"`, "The error should name the field that ran out of bytes")
}

func TestDefinitionDecodeTrailingBytesIgnored(t *testing.T) {
	t.Parallel()

	def, err := NewDefinition([]Field{{Key: "a", Type: Uint8}})
	require.NoError(t, err)

	decoded, err := def.Decode([]byte{0x07, 0xAA, 0xBB})
	require.NoError(t, err)
	assert.Equal(t, int64(7), decoded["a"])
}

func TestDefinitionValueError(t *testing.T) {
	t.Parallel()

	def, err := NewDefinition([]Field{{Key: "hp", Type: Uint16}})
	require.NoError(t, err)

	_, err = def.Encode(map[string]any{"hp": "full"})
	require.Error(t, err)

	var valErr *ValueError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "hp", valErr.Key)
	assert.Equal(t, Uint16, valErr.Type)
	assert.Equal(t, "full", valErr.Value)
	assert.True(t, errors.Is(err, ErrUnsupportedValue))
	assert.ErrorContains(t, err, `field "hp"`)
}

func TestDefinitionAccessors(t *testing.T) {
	t.Parallel()

	fields := []Field{
		{Key: "a", Type: Uint8},
		{Key: "b", Type: Array, Elem: Float32},
	}
	def, err := NewDefinition(fields)
	require.NoError(t, err)

	assert.Empty(t, def.Name(), "Standalone definitions have no name")
	assert.Zero(t, def.ID(), "Standalone definitions have no id")
	assert.Equal(t, binary.BigEndian, def.ByteOrder())
	assert.Equal(t, fields, def.Fields())
}

func TestDefinitionConcurrentUse(t *testing.T) {
	t.Parallel()

	def, err := NewDefinition([]Field{
		{Key: "seq", Type: VarUint},
		{Key: "payload", Type: String},
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seq int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				data, err := def.Encode(map[string]any{"seq": seq, "payload": "tick"})
				assert.NoError(t, err)
				decoded, err := def.Decode(data)
				assert.NoError(t, err)
				assert.Equal(t, uint64(seq), decoded["seq"])
			}
		}(i)
	}
	wg.Wait()
}
