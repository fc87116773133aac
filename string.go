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

// stringCodec encodes UTF-8 text as a varuint byte count followed by the
// raw bytes. The count is bytes, not characters: multibyte runes occupy
// their full UTF-8 width. An empty string is the single byte 0x00.
type stringCodec struct{}

func (stringCodec) fixedSize() int {
	return -1
}

func (stringCodec) size(value any) (int, error) {
	s, ok := toString(value)
	if !ok {
		return 0, errUnsupported(value)
	}
	return uvarintLen(uint64(len(s))) + len(s), nil
}

func (stringCodec) encode(view *StreamView, _ binary.ByteOrder, value any) error {
	s, ok := toString(value)
	if !ok {
		return errUnsupported(value)
	}
	if err := writeUvarint(view, uint64(len(s))); err != nil {
		return err
	}
	return view.WriteString(s)
}

func (stringCodec) decode(view *StreamView, _ binary.ByteOrder) (any, error) {
	n, err := readUvarint(view)
	if err != nil {
		return nil, err
	}
	if n > uint64(view.Remaining()) {
		return nil, fmt.Errorf("%w: string of %d bytes with %d remaining", ErrOutOfRange, n, view.Remaining())
	}
	b, err := view.ReadBytes(int(n))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
