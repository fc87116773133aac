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

// SchemaOption configures a schema at construction.
type SchemaOption func(*schemaOptions)

type schemaOptions struct {
	idType Type
	order  binary.ByteOrder
}

// WithIDType selects the codec for message ids. [Uint8], the default,
// dispatches up to 255 messages; [Uint16], [Uint32], or [VarUint] extend
// the space. [NewSchema] fails for any other type.
func WithIDType(t Type) SchemaOption {
	return func(o *schemaOptions) {
		o.idType = t
	}
}

// WithDefaultByteOrder sets the byte order definitions inherit when
// Define is not given an explicit [WithByteOrder]. The id prefix uses
// this order as well. Schemas start out big-endian.
func WithDefaultByteOrder(order binary.ByteOrder) SchemaOption {
	return func(o *schemaOptions) {
		o.order = order
	}
}

// DefinitionOption configures a single definition.
type DefinitionOption func(*definitionOptions)

type definitionOptions struct {
	order binary.ByteOrder
}

// WithByteOrder sets the byte order for every fixed-width field in the
// definition. Both sides of the wire must agree on it, the same way they
// agree on the fields. Standalone definitions default to big-endian;
// definitions made through a schema default to the schema's order.
func WithByteOrder(order binary.ByteOrder) DefinitionOption {
	return func(o *definitionOptions) {
		o.order = order
	}
}
