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

// boolCodec encodes a boolean as one byte: 1 for true, 0 for false. Any
// nonzero byte decodes as true.
type boolCodec struct{}

func (boolCodec) fixedSize() int {
	return 1
}

func (boolCodec) size(any) (int, error) {
	return 1, nil
}

func (boolCodec) encode(view *StreamView, _ binary.ByteOrder, value any) error {
	b, ok := toBool(value)
	if !ok {
		return errUnsupported(value)
	}
	var u uint8
	if b {
		u = 1
	}
	return view.WriteUint8(u)
}

func (boolCodec) decode(view *StreamView, _ binary.ByteOrder) (any, error) {
	u, err := view.ReadUint8()
	if err != nil {
		return nil, err
	}
	return u != 0, nil
}

// intCodec encodes fixed-width integers at 1, 2, or 4 bytes. The width
// and signedness fix the representable range; values outside it clamp
// silently to the nearest bound. Decoded values are always int64.
type intCodec struct {
	width  int
	signed bool
	min    int64
	max    int64
}

// newIntCodec derives the codec for a width in bytes and a signedness.
func newIntCodec(width int, signed bool) intCodec {
	bits := uint(width) * 8
	c := intCodec{width: width, signed: signed}
	if signed {
		c.min = -(int64(1) << (bits - 1))
		c.max = int64(1)<<(bits-1) - 1
	} else {
		c.max = int64(1)<<bits - 1
	}
	return c
}

func (c intCodec) fixedSize() int {
	return c.width
}

func (c intCodec) size(any) (int, error) {
	return c.width, nil
}

// clamp saturates n at the codec's range.
func (c intCodec) clamp(n int64) int64 {
	if n < c.min {
		return c.min
	}
	if n > c.max {
		return c.max
	}
	return n
}

func (c intCodec) encode(view *StreamView, order binary.ByteOrder, value any) error {
	n, ok := toInt64(value)
	if !ok {
		return errUnsupported(value)
	}
	n = c.clamp(n)
	switch c.width {
	case 1:
		return view.WriteUint8(uint8(n))
	case 2:
		return view.WriteUint16(uint16(n), order)
	default:
		return view.WriteUint32(uint32(n), order)
	}
}

func (c intCodec) decode(view *StreamView, order binary.ByteOrder) (any, error) {
	switch c.width {
	case 1:
		u, err := view.ReadUint8()
		if err != nil {
			return nil, err
		}
		if c.signed {
			return int64(int8(u)), nil
		}
		return int64(u), nil
	case 2:
		u, err := view.ReadUint16(order)
		if err != nil {
			return nil, err
		}
		if c.signed {
			return int64(int16(u)), nil
		}
		return int64(u), nil
	default:
		u, err := view.ReadUint32(order)
		if err != nil {
			return nil, err
		}
		if c.signed {
			return int64(int32(u)), nil
		}
		return int64(u), nil
	}
}

// floatCodec encodes IEEE 754 floats at 4 or 8 bytes. Floats never clamp;
// narrowing to 32 bits rounds precision away silently. Decoded values are
// always float64.
type floatCodec struct {
	width int
}

func (c floatCodec) fixedSize() int {
	return c.width
}

func (c floatCodec) size(any) (int, error) {
	return c.width, nil
}

func (c floatCodec) encode(view *StreamView, order binary.ByteOrder, value any) error {
	f, ok := toFloat64(value)
	if !ok {
		return errUnsupported(value)
	}
	if c.width == 4 {
		return view.WriteFloat32(float32(f), order)
	}
	return view.WriteFloat64(f, order)
}

func (c floatCodec) decode(view *StreamView, order binary.ByteOrder) (any, error) {
	if c.width == 4 {
		f, err := view.ReadFloat32(order)
		if err != nil {
			return nil, err
		}
		return float64(f), nil
	}
	f, err := view.ReadFloat64(order)
	if err != nil {
		return nil, err
	}
	return f, nil
}
