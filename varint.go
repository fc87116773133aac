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
	"math/bits"
)

// maxVarUintLen is the largest encoded size of a 64-bit value: ten groups
// of seven bits.
const maxVarUintLen = 10

// varUintCodec encodes unsigned integers in base 128: seven bits per
// byte, least significant group first, high bit set on every byte except
// the last. The layout matches encoding/binary's unsigned varint, so
// values up to 127 take one byte, up to 16383 two, and so on. Byte order
// does not apply; the group order is part of the format.
type varUintCodec struct{}

func (varUintCodec) fixedSize() int {
	return -1
}

func (varUintCodec) size(value any) (int, error) {
	u, ok := toUint64(value)
	if !ok {
		return 0, errUnsupported(value)
	}
	return uvarintLen(u), nil
}

func (varUintCodec) encode(view *StreamView, _ binary.ByteOrder, value any) error {
	u, ok := toUint64(value)
	if !ok {
		return errUnsupported(value)
	}
	return writeUvarint(view, u)
}

func (varUintCodec) decode(view *StreamView, _ binary.ByteOrder) (any, error) {
	u, err := readUvarint(view)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// uvarintLen returns the encoded size of u: one byte per started group of
// seven bits. Zero still occupies one byte.
func uvarintLen(u uint64) int {
	if u == 0 {
		return 1
	}
	return (bits.Len64(u) + 6) / 7
}

// writeUvarint writes the base-128 encoding of u at the cursor.
func writeUvarint(view *StreamView, u uint64) error {
	for u >= 0x80 {
		if err := view.WriteUint8(uint8(u) | 0x80); err != nil {
			return err
		}
		u >>= 7
	}
	return view.WriteUint8(uint8(u))
}

// readUvarint reads a base-128 value at the cursor. It fails with
// [ErrVarintOverflow] when the encoding does not fit in 64 bits, and
// with [ErrOutOfRange] when the buffer ends mid-value.
func readUvarint(view *StreamView) (uint64, error) {
	var u uint64
	var shift uint
	for i := 0; i < maxVarUintLen; i++ {
		b, err := view.ReadUint8()
		if err != nil {
			return 0, err
		}
		if b < 0x80 {
			if i == maxVarUintLen-1 && b > 1 {
				return 0, ErrVarintOverflow
			}
			return u | uint64(b)<<shift, nil
		}
		u |= uint64(b&0x7f) << shift
		shift += 7
	}
	return 0, ErrVarintOverflow
}
