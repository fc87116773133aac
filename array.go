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

// arrayCodec encodes a uniform sequence as a varuint count followed by
// the element encodings back to back. The element codec is fixed per
// field; elements do not carry type information.
type arrayCodec struct {
	elem codec
}

func (c arrayCodec) fixedSize() int {
	return -1
}

func (c arrayCodec) size(value any) (int, error) {
	length, at, ok := sliceInfo(value)
	if !ok {
		return 0, errUnsupported(value)
	}
	total := uvarintLen(uint64(length))
	if w := c.elem.fixedSize(); w >= 0 {
		return total + length*w, nil
	}
	for i := 0; i < length; i++ {
		n, err := c.elem.size(at(i))
		if err != nil {
			return 0, fmt.Errorf("element %d: %w", i, err)
		}
		total += n
	}
	return total, nil
}

func (c arrayCodec) encode(view *StreamView, order binary.ByteOrder, value any) error {
	length, at, ok := sliceInfo(value)
	if !ok {
		return errUnsupported(value)
	}
	if err := writeUvarint(view, uint64(length)); err != nil {
		return err
	}
	for i := 0; i < length; i++ {
		if err := c.elem.encode(view, order, at(i)); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func (c arrayCodec) decode(view *StreamView, order binary.ByteOrder) (any, error) {
	n, err := readUvarint(view)
	if err != nil {
		return nil, err
	}
	// Even the smallest element is at least one byte, so a count beyond
	// the remaining bytes cannot be satisfied. Checking up front keeps a
	// corrupt count from sizing the output slice.
	elemWidth := uint64(1)
	if w := c.elem.fixedSize(); w > 0 {
		elemWidth = uint64(w)
	}
	if n > uint64(view.Remaining())/elemWidth {
		return nil, fmt.Errorf("%w: %d elements with %d bytes remaining", ErrOutOfRange, n, view.Remaining())
	}
	out := make([]any, 0, n)
	for i := uint64(0); i < n; i++ {
		elem, err := c.elem.decode(view, order)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, elem)
	}
	return out, nil
}

// boolArrayCodec encodes booleans bit-packed: a varuint count followed by
// ceil(count/8) bytes, least significant bit first within each byte.
// Padding bits in the final byte write as zero and are ignored on decode.
type boolArrayCodec struct{}

func (boolArrayCodec) fixedSize() int {
	return -1
}

func (boolArrayCodec) size(value any) (int, error) {
	length, _, ok := sliceInfo(value)
	if !ok {
		return 0, errUnsupported(value)
	}
	return uvarintLen(uint64(length)) + (length+7)/8, nil
}

func (boolArrayCodec) encode(view *StreamView, _ binary.ByteOrder, value any) error {
	length, at, ok := sliceInfo(value)
	if !ok {
		return errUnsupported(value)
	}
	if err := writeUvarint(view, uint64(length)); err != nil {
		return err
	}
	var packed uint8
	for i := 0; i < length; i++ {
		b, ok := toBool(at(i))
		if !ok {
			return fmt.Errorf("element %d: %w", i, errUnsupported(at(i)))
		}
		if b {
			packed |= 1 << (i % 8)
		}
		if i%8 == 7 {
			if err := view.WriteUint8(packed); err != nil {
				return err
			}
			packed = 0
		}
	}
	if length%8 != 0 {
		return view.WriteUint8(packed)
	}
	return nil
}

func (boolArrayCodec) decode(view *StreamView, _ binary.ByteOrder) (any, error) {
	n, err := readUvarint(view)
	if err != nil {
		return nil, err
	}
	byteLen := n / 8
	if n%8 != 0 {
		byteLen++
	}
	if byteLen > uint64(view.Remaining()) {
		return nil, fmt.Errorf("%w: %d packed booleans with %d bytes remaining", ErrOutOfRange, n, view.Remaining())
	}
	b, err := view.ReadBytes(int(byteLen))
	if err != nil {
		return nil, err
	}
	out := make([]bool, n)
	for i := range out {
		out[i] = b[i/8]&(1<<(i%8)) != 0
	}
	return out, nil
}
