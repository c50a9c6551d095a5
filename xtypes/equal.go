// Copyright 2026 The dds-fmu Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xtypes

import "github.com/dnv-opensource/dds-fmu/idl"

// Equal reports whether d and other carry the same values, recursively.
// It is used by the round-trip tests the type converter and data mapper
// both rely on (mirroring a sample through the middleware's own dynamic
// data and back must reproduce the original values exactly). Equal does
// not compare Type identity, only resolved kind and shape, so a leaf typed
// through an alias compares equal to one typed directly.
func (d *Data) Equal(other *Data) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.kind != other.kind {
		return false
	}
	switch d.kind {
	case idl.KindStruct:
		if len(d.Fields) != len(other.Fields) {
			return false
		}
		for i := range d.Fields {
			if !d.Fields[i].Equal(other.Fields[i]) {
				return false
			}
		}
		return true
	case idl.KindArray:
		if len(d.Elems) != len(other.Elems) {
			return false
		}
		for i := range d.Elems {
			if !d.Elems[i].Equal(other.Elems[i]) {
				return false
			}
		}
		return true
	case idl.KindUnion:
		if d.ActiveCase != other.ActiveCase {
			return false
		}
		return d.Payload.Equal(other.Payload)
	case idl.KindBool:
		return d.leaf.b == other.leaf.b
	case idl.KindInt8, idl.KindInt16, idl.KindInt32, idl.KindInt64:
		return d.leaf.i64 == other.leaf.i64
	case idl.KindUint8, idl.KindUint16, idl.KindUint32, idl.KindUint64:
		return d.leaf.u64 == other.leaf.u64
	case idl.KindFloat32:
		return d.leaf.f32 == other.leaf.f32
	case idl.KindFloat64:
		return d.leaf.f64 == other.leaf.f64
	case idl.KindEnum:
		return d.leaf.enum == other.leaf.enum
	case idl.KindString, idl.KindChar8:
		return d.leaf.str == other.leaf.str
	default:
		return true
	}
}
