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

import "testing"

// TestSchema creates a schema with one message per wire type, for
// exercising encode and decode paths in tests.
//
// Example:
//
//	func TestMyTransport(t *testing.T) {
//	    schema := jettison.TestSchema(t)
//	    data, _ := schema.Encode("scalars", map[string]any{"u8": 7})
//	    // feed data through the transport under test
//	}
func TestSchema(t *testing.T, opts ...SchemaOption) *Schema {
	t.Helper()

	s, err := NewSchema(opts...)
	if err != nil {
		t.Fatalf("TestSchema: failed to create schema: %v", err)
	}

	messages := []struct {
		name   string
		fields []Field
	}{
		{"empty", nil},
		{"scalars", []Field{
			{Key: "ok", Type: Bool},
			{Key: "i8", Type: Int8},
			{Key: "u8", Type: Uint8},
			{Key: "i16", Type: Int16},
			{Key: "u16", Type: Uint16},
			{Key: "i32", Type: Int32},
			{Key: "u32", Type: Uint32},
			{Key: "f32", Type: Float32},
			{Key: "f64", Type: Float64},
		}},
		{"dynamic", []Field{
			{Key: "seq", Type: VarUint},
			{Key: "note", Type: String},
			{Key: "samples", Type: Array, Elem: Uint16},
			{Key: "flags", Type: BoolArray},
		}},
	}
	for _, m := range messages {
		if _, err := s.Define(m.name, m.fields); err != nil {
			t.Fatalf("TestSchema: failed to define %q: %v", m.name, err)
		}
	}
	return s
}

// TestRoundTrip encodes value as the named message and decodes it back,
// failing the test on either error. It returns the decoded value for
// further assertions.
func TestRoundTrip(t *testing.T, s *Schema, name string, value map[string]any) map[string]any {
	t.Helper()

	data, err := s.Encode(name, value)
	if err != nil {
		t.Fatalf("TestRoundTrip: encode %q: %v", name, err)
	}
	gotName, got, err := s.Decode(data)
	if err != nil {
		t.Fatalf("TestRoundTrip: decode %q: %v", name, err)
	}
	if gotName != name {
		t.Fatalf("TestRoundTrip: decoded message %q, want %q", gotName, name)
	}
	return got
}
