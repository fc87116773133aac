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
	"testing"
)

// FuzzSchemaDecode feeds arbitrary bytes to the dispatch path. Decoding
// must return a value or an error, never panic, and anything it accepts
// must survive a value-level round trip.
func FuzzSchemaDecode(f *testing.F) {
	schema := MustSchema()
	schema.MustDefine("ping", nil)
	schema.MustDefine("state", []Field{
		{Key: "x", Type: Int16},
		{Key: "hp", Type: Uint8},
		{Key: "name", Type: String},
		{Key: "samples", Type: Array, Elem: VarUint},
		{Key: "flags", Type: BoolArray},
	})

	// Seed corpus: valid messages plus shapes that poke known edges.
	valid, err := schema.Encode("state", map[string]any{
		"x": -7, "hp": 200, "name": "seed", "samples": []any{1, 300}, "flags": []bool{true, false, true},
	})
	if err != nil {
		f.Fatal(err)
	}
	f.Add(valid)
	f.Add([]byte{0x01})                         // ping
	f.Add([]byte{})                             // no id at all
	f.Add([]byte{0x09})                         // unknown id
	f.Add([]byte{0x02, 0x00})                   // truncated state
	f.Add([]byte{0x02, 0x00, 0x01, 0x05, 0xFF}) // string count runs past the end

	f.Add([]byte{0x02, 0x00, 0x01, 0x05, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0x0F}) // huge array count
	f.Add([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}) // varint noise

	f.Fuzz(func(t *testing.T, data []byte) {
		name, value, err := schema.Decode(data)
		if err != nil {
			return
		}
		// Whatever decoded must re-encode: decoded values are canonical
		// by construction.
		reencoded, err := schema.Encode(name, value)
		if err != nil {
			t.Fatalf("decoded %q but re-encode failed: %v", name, err)
		}
		// And the re-encoded image must decode to the same value.
		name2, value2, err := schema.Decode(reencoded)
		if err != nil {
			t.Fatalf("re-encoded %q but second decode failed: %v", name, err)
		}
		if name2 != name {
			t.Fatalf("round trip changed message from %q to %q", name, name2)
		}
		if len(value2) != len(value) {
			t.Fatalf("round trip changed field count from %d to %d", len(value), len(value2))
		}
	})
}

// FuzzDefinitionDecode drives the field walk without the id prefix.
func FuzzDefinitionDecode(f *testing.F) {
	def, err := NewDefinition([]Field{
		{Key: "seq", Type: VarUint},
		{Key: "note", Type: String},
		{Key: "ok", Type: Bool},
	})
	if err != nil {
		f.Fatal(err)
	}

	seed, err := def.Encode(map[string]any{"seq": 90210, "note": "checkpoint", "ok": true})
	if err != nil {
		f.Fatal(err)
	}
	f.Add(seed)
	f.Add([]byte{0x00, 0x00, 0x00})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x02})

	f.Fuzz(func(t *testing.T, data []byte) {
		value, err := def.Decode(data)
		if err != nil {
			return
		}
		if _, err := def.Encode(value); err != nil {
			t.Fatalf("decoded value failed to re-encode: %v", err)
		}
	})
}

// FuzzUvarintRoundTrip checks the varint against the stdlib encoding for
// every value the fuzzer finds.
func FuzzUvarintRoundTrip(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(127))
	f.Add(uint64(128))
	f.Add(uint64(16383))
	f.Add(uint64(16384))
	f.Add(uint64(1) << 42)
	f.Add(^uint64(0))

	f.Fuzz(func(t *testing.T, value uint64) {
		view := NewStreamView(uvarintLen(value))
		if err := writeUvarint(view, value); err != nil {
			t.Fatalf("writeUvarint(%d): %v", value, err)
		}
		if view.Remaining() != 0 {
			t.Fatalf("uvarintLen(%d) = %d but wrote %d bytes", value, view.Size(), view.Offset())
		}

		want := binary.AppendUvarint(nil, value)
		got := view.Bytes()
		if len(got) != len(want) {
			t.Fatalf("encoding of %d is %d bytes, stdlib uses %d", value, len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("encoding of %d differs from stdlib at byte %d", value, i)
			}
		}

		back, err := readUvarint(WrapStreamView(got))
		if err != nil {
			t.Fatalf("readUvarint of %d: %v", value, err)
		}
		if back != value {
			t.Fatalf("round trip of %d produced %d", value, back)
		}
	})
}

// FuzzStringRoundTrip checks arbitrary byte content survives the string
// codec unchanged, counted in bytes rather than runes.
func FuzzStringRoundTrip(f *testing.F) {
	f.Add("")
	f.Add("plain")
	f.Add("héllo 日本語 🚀")
	f.Add(string([]byte{0xFF, 0xFE, 0x00}))

	def, err := NewDefinition([]Field{{Key: "s", Type: String}})
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, s string) {
		data, err := def.Encode(map[string]any{"s": s})
		if err != nil {
			t.Fatalf("encode %q: %v", s, err)
		}
		if len(data) != uvarintLen(uint64(len(s)))+len(s) {
			t.Fatalf("wire size %d does not match count prefix plus %d bytes", len(data), len(s))
		}
		decoded, err := def.Decode(data)
		if err != nil {
			t.Fatalf("decode %q: %v", s, err)
		}
		if decoded["s"] != s {
			t.Fatalf("round trip changed %q to %q", s, decoded["s"])
		}
	})
}
