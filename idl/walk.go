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

package idl

import (
	"strconv"
	"strings"
)

// Segment is one step of a [Path]: a member name, plus the array indices
// (if any) selected directly underneath it. Indices is non-empty only when
// the member's type is (or resolves to) an array.
type Segment struct {
	Member  string
	Indices []int
}

// Path is the chain of [Segment]s from the root of a structured type down
// to a leaf, in root-to-leaf order. This is the Name Generator of §4.1: a
// Path is produced by a pure, stateless recursive walk -- nothing about it
// depends on data, only on type shape and, for arrays, which index is
// currently being visited.
type Path []Segment

// String renders a Path the way §3's naming rule specifies: "." between
// members, "[i]" for a 1-D array index and "[i1,i2,...]" for an N-D one,
// with no trailing separator.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.Member)
		if len(seg.Indices) > 0 {
			b.WriteByte('[')
			for j, idx := range seg.Indices {
				if j > 0 {
					b.WriteByte(',')
				}
				b.WriteString(strconv.Itoa(idx))
			}
			b.WriteByte(']')
		}
	}
	return b.String()
}

// append returns a copy of p with seg appended; Path is treated as
// persistent so that sibling recursive calls never see each other's
// mutations.
func (p Path) append(seg Segment) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = seg
	return out
}

// LeafVisitor is called by [WalkLeaves] once per signal-eligible leaf.
// member is the struct member (or union case) the leaf was reached
// through; it is nil only when t itself (the root) is a bare primitive
// with no containing struct, which §4.1 never actually hands to a real
// topic type but which this package still handles for completeness.
// isKey is true when member, or any ancestor member on path, carries
// @key -- a @key annotation on a struct-typed member marks every leaf
// beneath it, not just a direct scalar member (demonstrated by
// original_source/tests/keyed_members.cpp).
type LeafVisitor func(path Path, member *Member, leaf *Type, isKey bool) error

// UnsupportedVisitor is invoked once for every subtree WalkLeaves skips
// because its kind can never map to an FMI scalar, or because it is a
// union (unions have a data-dependent active member and so cannot back a
// fixed FMI value reference).
type UnsupportedVisitor func(path Path, kind Kind)

// WalkLeaves performs the depth-first traversal §3 and §4.1 require:
// within a struct, members are visited in declaration order; within an
// array, indices are visited in row-major order (outermost dimension
// slowest); a leaf contributes iff [Kind.IsPrimitiveLeaf] is true for its
// resolved kind.
func WalkLeaves(t *Type, visit LeafVisitor, onUnsupported UnsupportedVisitor) error {
	return walkLeaves(t, nil, false, Path{}, visit, onUnsupported)
}

func walkLeaves(t *Type, member *Member, inheritedKey bool, path Path, visit LeafVisitor, onUnsupported UnsupportedVisitor) error {
	rt := Resolve(t)
	if rt == nil {
		return nil
	}
	isKey := inheritedKey || (member != nil && member.IsKey)
	switch {
	case rt.Kind.IsPrimitiveLeaf():
		return visit(path, member, rt, isKey)
	case rt.Kind == KindStruct:
		for i := range rt.Struct.Members {
			m := &rt.Struct.Members[i]
			childPath := path.append(Segment{Member: m.Name})
			if err := walkLeaves(m.Type, m, isKey, childPath, visit, onUnsupported); err != nil {
				return err
			}
		}
		return nil
	case rt.Kind == KindArray:
		return walkArray(rt.Array, member, isKey, path, visit, onUnsupported)
	case rt.Kind == KindUnion:
		if onUnsupported != nil {
			onUnsupported(path, rt.Kind)
		}
		return nil
	default:
		if onUnsupported != nil {
			onUnsupported(path, rt.Kind)
		}
		return nil
	}
}

// walkArray iterates every index of a (possibly multidimensional) array in
// row-major order, attaching the full index tuple to the last struct
// member segment on the path (per §3's naming rule, the indices are
// appended directly to the member name, not inserted as their own
// segment).
func walkArray(arr *ArrayType, member *Member, isKey bool, path Path, visit LeafVisitor, onUnsupported UnsupportedVisitor) error {
	indices := make([]int, len(arr.Dims))
	var rec func(dim int) error
	rec = func(dim int) error {
		if dim == len(arr.Dims) {
			withIdx := append(Path{}, path...)
			if len(withIdx) > 0 {
				last := withIdx[len(withIdx)-1]
				last.Indices = append([]int{}, indices...)
				withIdx[len(withIdx)-1] = last
			}
			return walkLeaves(arr.Element, member, isKey, withIdx, visit, onUnsupported)
		}
		for i := 0; i < arr.Dims[dim]; i++ {
			indices[dim] = i
			if err := rec(dim + 1); err != nil {
				return err
			}
		}
		return nil
	}
	return rec(0)
}

// KeyLeaves returns the @key leaves of a structured type, in the same
// depth-first order WalkLeaves would visit them, ignoring every
// non-key member (§4.1's PARAMETER cardinality rule; §4.4's per-reader
// key comparison order; demonstrated with more than one key member by
// original_source/tests/keyed_members.cpp).
func KeyLeaves(t *Type) ([]Path, []*Type, error) {
	var paths []Path
	var leaves []*Type
	err := WalkLeaves(t, func(path Path, member *Member, leaf *Type, isKey bool) error {
		if isKey {
			paths = append(paths, path)
			leaves = append(leaves, leaf)
		}
		return nil
	}, nil)
	return paths, leaves, err
}
