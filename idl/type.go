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

import "fmt"

// Type is an immutable node in a structured-type tree: a primitive, an
// enumeration, a string, a struct, a fixed-shape array, a union, or an
// alias. It is a tagged sum, not a class hierarchy -- code that walks a
// Type switches on Kind rather than relying on dynamic dispatch.
//
// Once built by [Load], a Type and everything reachable from it is never
// mutated; it is dropped as a whole when the owning [Registry] is dropped.
type Type struct {
	Kind Kind

	// Name is the fully scoped declaration name ("Outer::Inner"), set only
	// for types with their own declaration: struct, enum, union, alias.
	// Anonymous inline types (e.g. an array element that is itself an
	// unnamed nested struct) have an empty Name.
	Name string

	Enum   *EnumType
	Struct *StructType
	Array  *ArrayType
	Union  *UnionType

	// Alias is set when Kind == KindAlias; it is the type the alias
	// immediately stands for (not necessarily fully resolved -- chase it
	// with [Resolve]).
	Alias *Type
}

// EnumType is the enumerator list of an enumeration. Enumerators carry
// explicit uint32 values in declaration order; FMI represents the active
// enumerator as its uint32 value (§3).
type EnumType struct {
	Enumerators []Enumerator
}

// Enumerator is one named value of an [EnumType].
type Enumerator struct {
	Name  string
	Value uint32
}

// StructType is an ordered list of named members. Member order is
// declaration order and is load-bearing: it is the order signals,
// accessors and key leaves are enumerated in (§3, §4.1, §4.2).
type StructType struct {
	Members []Member
}

// Member is one field of a [StructType] or one case arm of a [UnionType].
type Member struct {
	Name       string
	Type       *Type
	IsKey      bool
	IsOptional bool
}

// ArrayType is a fixed-shape, possibly multidimensional array. Dims is
// ordered outermost-first, matching how a multidimensional IDL declarator
// like "matrix[3][2]" is written and how its indices are rendered into a
// structured name ("matrix[0,0]" .. "matrix[2,1]", §3).
type ArrayType struct {
	Element *Type
	Dims    []int
}

// UnionType is a discriminated union: a discriminator type plus an ordered
// list of cases, each with one or more labels drawn from the discriminator
// type's domain.
type UnionType struct {
	Discriminator *Type
	Cases         []UnionCase
}

// UnionCase is one arm of a [UnionType]. Labels preserves the IDL label
// values verbatim (§4.3); for an enum discriminator these are enumerator
// values, for an integer discriminator these are the literal values.
type UnionCase struct {
	Labels []int64
	Member Member
}

// Resolve chases a chain of aliases down to the first non-alias type.
// A nil or non-alias Type is returned unchanged.
func Resolve(t *Type) *Type {
	for t != nil && t.Kind == KindAlias {
		t = t.Alias
	}
	return t
}

// Registry holds every named structured type parsed from an IDL source
// tree: created once by [Load], immutable thereafter, and dropped as a
// whole on teardown (§3).
type Registry struct {
	byName map[string]*Type
	order  []string // declaration order, for deterministic diagnostics
}

func newRegistry() *Registry {
	return &Registry{byName: make(map[string]*Type)}
}

func (r *Registry) define(name string, t *Type) error {
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("idl: duplicate type declaration %q", name)
	}
	r.byName[name] = t
	r.order = append(r.order, name)
	return nil
}

// Lookup finds a declared type (struct, enum, union or alias) by its fully
// scoped name.
func (r *Registry) Lookup(name string) (*Type, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// HasStructure reports whether name is a declared structured type at all
// (§4.1 has_structure).
func (r *Registry) HasStructure(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Names returns every declared type name, in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
