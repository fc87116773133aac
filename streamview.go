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
	"math"
)

// StreamView is a fixed-size byte buffer with a moving cursor. Every
// successful read or write advances the cursor by the access width; an
// access that would cross the end of the buffer fails with
// [ErrOutOfRange] and leaves the cursor where it was. The buffer never
// grows.
//
// Multibyte accessors take the byte order per call, so one view can mix
// orders. A StreamView is not safe for concurrent use.
type StreamView struct {
	buf []byte
	off int
}

// NewStreamView returns a view over a fresh zero-filled buffer of size
// bytes, with the cursor at offset 0. It panics if size is negative.
func NewStreamView(size int) *StreamView {
	if size < 0 {
		panic(fmt.Sprintf("jettison.NewStreamView: negative size %d", size))
	}
	return &StreamView{buf: make([]byte, size)}
}

// WrapStreamView returns a view reading and writing data in place, with
// the cursor at offset 0. The buffer is not copied.
func WrapStreamView(data []byte) *StreamView {
	return &StreamView{buf: data}
}

// ensure fails when n bytes are not available at the cursor.
func (v *StreamView) ensure(n int) error {
	if n < 0 || n > len(v.buf)-v.off {
		return fmt.Errorf("%w: %d bytes at offset %d of %d", ErrOutOfRange, n, v.off, len(v.buf))
	}
	return nil
}

// Offset returns the cursor position in bytes from the start of the buffer.
func (v *StreamView) Offset() int {
	return v.off
}

// Size returns the buffer size in bytes.
func (v *StreamView) Size() int {
	return len(v.buf)
}

// Remaining returns the number of bytes between the cursor and the end.
func (v *StreamView) Remaining() int {
	return len(v.buf) - v.off
}

// Bytes returns the whole underlying buffer regardless of the cursor
// position. The slice aliases the view's storage.
func (v *StreamView) Bytes() []byte {
	return v.buf
}

// ReadUint8 returns the byte at the cursor.
func (v *StreamView) ReadUint8() (uint8, error) {
	if err := v.ensure(1); err != nil {
		return 0, err
	}
	b := v.buf[v.off]
	v.off++
	return b, nil
}

// WriteUint8 writes one byte at the cursor.
func (v *StreamView) WriteUint8(u uint8) error {
	if err := v.ensure(1); err != nil {
		return err
	}
	v.buf[v.off] = u
	v.off++
	return nil
}

// ReadInt8 returns the byte at the cursor as a signed integer.
func (v *StreamView) ReadInt8() (int8, error) {
	u, err := v.ReadUint8()
	return int8(u), err
}

// WriteInt8 writes one signed byte at the cursor.
func (v *StreamView) WriteInt8(i int8) error {
	return v.WriteUint8(uint8(i))
}

// ReadUint16 reads two bytes at the cursor in the given order.
func (v *StreamView) ReadUint16(order binary.ByteOrder) (uint16, error) {
	if err := v.ensure(2); err != nil {
		return 0, err
	}
	u := order.Uint16(v.buf[v.off:])
	v.off += 2
	return u, nil
}

// WriteUint16 writes two bytes at the cursor in the given order.
func (v *StreamView) WriteUint16(u uint16, order binary.ByteOrder) error {
	if err := v.ensure(2); err != nil {
		return err
	}
	order.PutUint16(v.buf[v.off:], u)
	v.off += 2
	return nil
}

// ReadInt16 reads a signed 16-bit integer at the cursor.
func (v *StreamView) ReadInt16(order binary.ByteOrder) (int16, error) {
	u, err := v.ReadUint16(order)
	return int16(u), err
}

// WriteInt16 writes a signed 16-bit integer at the cursor.
func (v *StreamView) WriteInt16(i int16, order binary.ByteOrder) error {
	return v.WriteUint16(uint16(i), order)
}

// ReadUint32 reads four bytes at the cursor in the given order.
func (v *StreamView) ReadUint32(order binary.ByteOrder) (uint32, error) {
	if err := v.ensure(4); err != nil {
		return 0, err
	}
	u := order.Uint32(v.buf[v.off:])
	v.off += 4
	return u, nil
}

// WriteUint32 writes four bytes at the cursor in the given order.
func (v *StreamView) WriteUint32(u uint32, order binary.ByteOrder) error {
	if err := v.ensure(4); err != nil {
		return err
	}
	order.PutUint32(v.buf[v.off:], u)
	v.off += 4
	return nil
}

// ReadInt32 reads a signed 32-bit integer at the cursor.
func (v *StreamView) ReadInt32(order binary.ByteOrder) (int32, error) {
	u, err := v.ReadUint32(order)
	return int32(u), err
}

// WriteInt32 writes a signed 32-bit integer at the cursor.
func (v *StreamView) WriteInt32(i int32, order binary.ByteOrder) error {
	return v.WriteUint32(uint32(i), order)
}

// ReadFloat32 reads an IEEE 754 single-precision float at the cursor.
func (v *StreamView) ReadFloat32(order binary.ByteOrder) (float32, error) {
	u, err := v.ReadUint32(order)
	return math.Float32frombits(u), err
}

// WriteFloat32 writes an IEEE 754 single-precision float at the cursor.
func (v *StreamView) WriteFloat32(f float32, order binary.ByteOrder) error {
	return v.WriteUint32(math.Float32bits(f), order)
}

// ReadFloat64 reads an IEEE 754 double-precision float at the cursor.
func (v *StreamView) ReadFloat64(order binary.ByteOrder) (float64, error) {
	if err := v.ensure(8); err != nil {
		return 0, err
	}
	f := math.Float64frombits(order.Uint64(v.buf[v.off:]))
	v.off += 8
	return f, nil
}

// WriteFloat64 writes an IEEE 754 double-precision float at the cursor.
func (v *StreamView) WriteFloat64(f float64, order binary.ByteOrder) error {
	if err := v.ensure(8); err != nil {
		return err
	}
	order.PutUint64(v.buf[v.off:], math.Float64bits(f))
	v.off += 8
	return nil
}

// ReadBytes returns the next n bytes at the cursor. The slice aliases the
// view's storage; copy it to keep it past the buffer's lifetime.
func (v *StreamView) ReadBytes(n int) ([]byte, error) {
	if err := v.ensure(n); err != nil {
		return nil, err
	}
	b := v.buf[v.off : v.off+n : v.off+n]
	v.off += n
	return b, nil
}

// WriteBytes copies p into the buffer at the cursor.
func (v *StreamView) WriteBytes(p []byte) error {
	if err := v.ensure(len(p)); err != nil {
		return err
	}
	copy(v.buf[v.off:], p)
	v.off += len(p)
	return nil
}

// WriteString copies s into the buffer at the cursor without converting
// it to a byte slice first.
func (v *StreamView) WriteString(s string) error {
	if err := v.ensure(len(s)); err != nil {
		return err
	}
	copy(v.buf[v.off:], s)
	v.off += len(s)
	return nil
}
