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

import (
	"fmt"

	"github.com/dnv-opensource/dds-fmu/idl"
)

// CopyInto is the Type Converter's core bidirectional copy (§4.3's
// xtypes_to_fastdds and fastdds_to_xtypes are the same algorithm run in
// opposite directions). No DDS/RTPS client library appears anywhere in
// the retrieval pack (see DESIGN.md), so this rewrite models the
// middleware's wire-side dynamic data with the same *Data tree the
// in-memory side uses; a real integration plugs a pubsub.Transport that
// encodes/decodes actual wire bytes on either side of this call. src and
// dst must have been built from the same (or a structurally identical)
// [idl.Type] by [New]; CopyInto never allocates new struct/array shape,
// it only ever overwrites leaves and selects union cases.
func CopyInto(src, dst *Data) error {
	if src == nil || dst == nil {
		return fmt.Errorf("xtypes: CopyInto on nil Data")
	}
	if src.kind != dst.kind {
		return fmt.Errorf("xtypes: CopyInto kind mismatch: %v vs %v", src.kind, dst.kind)
	}
	switch src.kind {
	case idl.KindStruct:
		if len(src.Fields) != len(dst.Fields) {
			return fmt.Errorf("xtypes: CopyInto struct member count mismatch: %d vs %d", len(src.Fields), len(dst.Fields))
		}
		for i := range src.Fields {
			if err := CopyInto(src.Fields[i], dst.Fields[i]); err != nil {
				return err
			}
		}
		return nil
	case idl.KindArray:
		if len(src.Elems) != len(dst.Elems) {
			return fmt.Errorf("xtypes: CopyInto array extent mismatch: %d vs %d", len(src.Elems), len(dst.Elems))
		}
		for i := range src.Elems {
			if err := CopyInto(src.Elems[i], dst.Elems[i]); err != nil {
				return err
			}
		}
		return nil
	case idl.KindUnion:
		// The discriminator value selects the active case on the
		// destination side before the payload is copied, mirroring
		// fastdds_to_xtypes's "discovering which union case is active
		// from the wire value" (§4.3).
		if err := dst.SelectCase(src.ActiveCase); err != nil {
			return fmt.Errorf("xtypes: CopyInto union: %w", err)
		}
		return CopyInto(src.Payload, dst.Payload)
	case idl.KindBool:
		dst.leaf.b = src.leaf.b
	case idl.KindInt8, idl.KindInt16, idl.KindInt32, idl.KindInt64:
		dst.leaf.i64 = src.leaf.i64
	case idl.KindUint8, idl.KindUint16, idl.KindUint32, idl.KindUint64:
		dst.leaf.u64 = src.leaf.u64
	case idl.KindFloat32:
		dst.leaf.f32 = src.leaf.f32
	case idl.KindFloat64:
		dst.leaf.f64 = src.leaf.f64
	case idl.KindEnum:
		dst.leaf.enum = src.leaf.enum
	case idl.KindString, idl.KindChar8:
		dst.leaf.str = src.leaf.str
	default:
		return fmt.Errorf("xtypes: CopyInto: %v has no wire representation", src.kind)
	}
	return nil
}

// Clone returns a new Data tree built from d's type with d's values
// copied in, independent of d thereafter. The in-process transport uses
// it to hand each subscriber its own copy of a written sample.
func Clone(d *Data) *Data {
	out := New(d.Type)
	// Clone is only ever called with d itself as the source of truth for
	// shape, so the CopyInto below cannot hit a mismatch.
	_ = CopyInto(d, out)
	return out
}
