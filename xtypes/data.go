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

// leafValue holds the scalar payload of a leaf [Data] node. Only the field
// matching the node's resolved [idl.Kind] is meaningful; the rest sit at
// their zero value. This mirrors the archetype-table approach the teacher
// uses for per-kind storage (field_singular.go's singularFields), just
// without the unsafe layout -- nothing in this domain parses wire bytes at
// a rate that would justify it (see DESIGN.md).
type leafValue struct {
	b    bool
	i64  int64
	u64  uint64
	f32  float32
	f64  float64
	str  string
	enum uint32
}

// Data is one node of a structured-data tree. Depending on its resolved
// Kind, it is a scalar leaf, a struct (Fields), an array (Elems) or a
// union (ActiveCase/Payload).
type Data struct {
	Type *idl.Type // as declared; may be KindAlias
	kind idl.Kind  // Type resolved through aliases

	leaf leafValue

	Fields   []*Data // populated 1:1 with idl.Resolve(Type).Struct.Members, for KindStruct
	memberOf map[string]int

	Elems []*Data // flattened row-major, for KindArray

	ActiveCase int // index into idl.Resolve(Type).Union.Cases, -1 if unset, for KindUnion
	Payload    *Data

	parent     *Data
	fromMember *idl.Member
	fromIndex  []int
}

// New allocates a Data tree for t with every leaf at its default value
// (§3's "every reachable leaf has a defined value" invariant).
func New(t *idl.Type) *Data {
	return build(t, nil, nil, nil)
}

func build(t *idl.Type, parent *Data, fromMember *idl.Member, fromIndex []int) *Data {
	rt := idl.Resolve(t)
	d := &Data{Type: t, kind: rt.Kind, parent: parent, fromMember: fromMember, fromIndex: fromIndex, ActiveCase: -1}

	switch rt.Kind {
	case idl.KindStruct:
		d.memberOf = make(map[string]int, len(rt.Struct.Members))
		for i := range rt.Struct.Members {
			m := &rt.Struct.Members[i]
			d.memberOf[m.Name] = i
			d.Fields = append(d.Fields, build(m.Type, d, m, nil))
		}
	case idl.KindArray:
		total := 1
		for _, dim := range rt.Array.Dims {
			total *= dim
		}
		idxs := multiIndices(rt.Array.Dims)
		d.Elems = make([]*Data, total)
		for i, idx := range idxs {
			d.Elems[i] = build(rt.Array.Element, d, fromMember, idx)
		}
	case idl.KindUnion:
		if len(rt.Union.Cases) > 0 {
			d.ActiveCase = 0
			d.Payload = build(rt.Union.Cases[0].Member.Type, d, &rt.Union.Cases[0].Member, nil)
		}
	case idl.KindEnum:
		if rt.Enum != nil && len(rt.Enum.Enumerators) > 0 {
			d.leaf.enum = rt.Enum.Enumerators[0].Value
		}
	default:
		// Scalar and string kinds default-zero already.
	}
	return d
}

// multiIndices enumerates every index tuple of a (possibly
// multidimensional) shape in row-major order.
func multiIndices(dims []int) [][]int {
	total := 1
	for _, d := range dims {
		total *= d
	}
	out := make([][]int, 0, total)
	idx := make([]int, len(dims))
	var rec func(dim int)
	rec = func(dim int) {
		if dim == len(dims) {
			cp := append([]int{}, idx...)
			out = append(out, cp)
			return
		}
		for i := 0; i < dims[dim]; i++ {
			idx[dim] = i
			rec(dim + 1)
		}
	}
	rec(0)
	return out
}

// Kind returns this node's resolved kind.
func (d *Data) Kind() idl.Kind { return d.kind }

// Parent returns the node's parent and whether it has one. The readable
// and writable node views described in §9's design notes are represented
// here simply as *Data plus this accessor: callers that need the full
// ancestor chain walk Parent repeatedly, which is an explicit stack, not a
// hidden pointer graph.
func (d *Data) Parent() (*Data, bool) { return d.parent, d.parent != nil }

// FromMember returns the struct member (or union case member) this node
// was reached through, and whether one exists.
func (d *Data) FromMember() (*idl.Member, bool) { return d.fromMember, d.fromMember != nil }

// FromIndex returns the index tuple selecting this node under its array
// parent, and whether this node has an array parent.
func (d *Data) FromIndex() ([]int, bool) { return d.fromIndex, d.fromIndex != nil }

// Field looks up a named struct member.
func (d *Data) Field(name string) (*Data, bool) {
	if d.kind != idl.KindStruct {
		return nil, false
	}
	i, ok := d.memberOf[name]
	if !ok {
		return nil, false
	}
	return d.Fields[i], true
}

// Index looks up an array element by its full index tuple.
func (d *Data) Index(idx ...int) (*Data, bool) {
	if d.kind != idl.KindArray {
		return nil, false
	}
	rt := idl.Resolve(d.Type)
	flat, err := flattenIndex(rt.Array.Dims, idx)
	if err != nil || flat < 0 || flat >= len(d.Elems) {
		return nil, false
	}
	return d.Elems[flat], true
}

func flattenIndex(dims, idx []int) (int, error) {
	if len(idx) != len(dims) {
		return 0, fmt.Errorf("xtypes: expected %d indices, got %d", len(dims), len(idx))
	}
	flat := 0
	for i, d := range dims {
		if idx[i] < 0 || idx[i] >= d {
			return 0, fmt.Errorf("xtypes: index %d out of bounds for dimension %d", idx[i], d)
		}
		flat = flat*d + idx[i]
	}
	return flat, nil
}

// IsKey reports whether this leaf is a @key leaf: either its own
// originating member is @key, or any ancestor's originating member is
// @key (a @key annotation on a struct-typed member marks every leaf
// beneath it, mirroring idl.WalkLeaves's inheritedKey propagation).
func (d *Data) IsKey() bool {
	for cur := d; cur != nil; {
		if m, ok := cur.FromMember(); ok && m.IsKey {
			return true
		}
		p, ok := cur.Parent()
		if !ok {
			break
		}
		cur = p
	}
	return false
}

// SelectCase sets the active union case by index and (re)allocates its
// payload if the case changed.
func (d *Data) SelectCase(caseIdx int) error {
	if d.kind != idl.KindUnion {
		return fmt.Errorf("xtypes: SelectCase on non-union node")
	}
	rt := idl.Resolve(d.Type)
	if caseIdx < 0 || caseIdx >= len(rt.Union.Cases) {
		return fmt.Errorf("xtypes: union case index %d out of range", caseIdx)
	}
	if caseIdx == d.ActiveCase {
		return nil
	}
	d.ActiveCase = caseIdx
	d.Payload = build(rt.Union.Cases[caseIdx].Member.Type, d, &rt.Union.Cases[caseIdx].Member, nil)
	return nil
}
