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

// LeafFunc is called once per leaf node reached by [Walk], in the same
// depth-first, struct-members-in-declaration-order, row-major-array order
// that [idl.WalkLeaves] uses over the type tree alone. path mirrors the
// idl.Path naming rule exactly, since both walks share the same traversal
// shape.
type LeafFunc func(path idl.Path, leaf *Data) error

// Walk visits every leaf of d's tree, skipping union payload branches the
// same way idl.WalkLeaves skips unions: only the struct/array shape
// contributes to the path, and a union's currently active case is not
// walked automatically (callers that need to reach into a union do so
// explicitly via d.Payload, since FMI has no signal for a data-dependent
// active member).
func Walk(d *Data, visit LeafFunc) error {
	return walk(d, idl.Path{}, visit)
}

func walk(d *Data, path idl.Path, visit LeafFunc) error {
	switch d.kind {
	case idl.KindStruct:
		rt := idl.Resolve(d.Type)
		for i, m := range rt.Struct.Members {
			seg := idl.Segment{Member: m.Name}
			if err := walk(d.Fields[i], appendSegment(path, seg), visit); err != nil {
				return err
			}
		}
		return nil
	case idl.KindArray:
		rt := idl.Resolve(d.Type)
		idxs := multiIndices(rt.Array.Dims)
		base := path
		lastSeg := idl.Segment{}
		if len(base) > 0 {
			lastSeg = base[len(base)-1]
			base = base[:len(base)-1]
		}
		for i, idx := range idxs {
			seg := lastSeg
			seg.Indices = idx
			if err := walk(d.Elems[i], appendSegment(base, seg), visit); err != nil {
				return err
			}
		}
		return nil
	case idl.KindUnion:
		// Active payload is reachable via d.Payload but is not itself a
		// named path segment: FMI has no signal for a data-dependent
		// active member.
		return nil
	default:
		return visit(path, d)
	}
}

func appendSegment(p idl.Path, seg idl.Segment) idl.Path {
	out := make(idl.Path, len(p)+1)
	copy(out, p)
	out[len(p)] = seg
	return out
}
