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

// Package jettison provides compact schema-driven binary serialization.
//
// Both ends of a connection hold the same schema, so messages travel as
// raw values with no keys, no type tags, and no padding: a single id
// byte picks the message, and every field sits at the position the
// schema dictates. A message that serializes to 60+ bytes of JSON
// typically fits in a handful of bytes, which is the difference that
// matters when state updates go out many times per second.
//
// # Quick Start
//
// Define messages on a schema, in the same order on both sides:
//
//	schema := jettison.MustSchema()
//	schema.MustDefine("ping", nil)
//	schema.MustDefine("state", []jettison.Field{
//	    {Key: "x", Type: jettison.Int16},
//	    {Key: "y", Type: jettison.Int16},
//	    {Key: "hp", Type: jettison.Uint8},
//	})
//
//	data, err := schema.Encode("state", map[string]any{
//	    "x": 120, "y": -45, "hp": 87,
//	})
//	// data is 6 bytes: 1 id + 2 + 2 + 1
//
//	name, value, err := schema.Decode(data)
//	// name == "state", value["x"] == int64(120)
//
// # Standalone Definitions
//
// When dispatch is not needed, a definition works on its own and the
// wire image carries no id:
//
//	def, err := jettison.NewDefinition([]jettison.Field{
//	    {Key: "seq", Type: jettison.VarUint},
//	    {Key: "note", Type: jettison.String},
//	})
//	data, err := def.Encode(map[string]any{"seq": 7, "note": "hi"})
//
// # Types
//
// Fixed-width types encode at their declared width in the definition's
// byte order: [Bool], [Int8], [Uint8], [Int16], [Uint16], [Int32],
// [Uint32], [Float32], [Float64]. Integer values outside the declared
// range clamp silently to the nearest bound; floats never clamp.
//
// Variable-width types prefix their content with a base-128 varuint:
// [VarUint] itself, [String] (UTF-8 bytes), [Array] (uniform elements,
// element type in [Field.Elem]), and [BoolArray] (bit-packed, one bit
// per element). Arrays and strings do not nest.
//
// # Values
//
// Values cross the API as map[string]any. Encoding is lenient about
// concrete Go types: any integer or float kind feeds a numeric field,
// any slice feeds an array field, and missing keys encode as zero
// values. Decoding is canonical: fixed integers come back as int64,
// varuints as uint64, floats as float64, arrays as []any, boolean
// arrays as []bool.
//
// # Byte Order
//
// Definitions encode fixed-width fields big-endian unless constructed
// with [WithByteOrder]; a schema-wide default comes from
// [WithDefaultByteOrder]. Varuints, strings, and bit-packed booleans
// are byte-order independent.
//
// # Error Handling
//
// Failures wrap sentinel errors for errors.Is: [ErrOutOfRange] for
// truncated or undersized buffers, [ErrUnknownMessage] for names and
// ids the schema does not know, [ErrVarintOverflow] for corrupt
// varuints, and the construction sentinels for invalid fields. Encoding
// a value of the wrong Go type fails with a [*ValueError] carrying the
// field key.
//
// # Concurrency
//
// Definitions are immutable after construction. Define all messages
// first; afterwards a schema may encode and decode from any number of
// goroutines. Defining concurrently with use is not safe.
package jettison
