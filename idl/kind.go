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

// Kind identifies what variant of the IDL type sum a [Type] is.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Primitive scalar kinds.
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindChar8
	KindString

	// Compound kinds.
	KindEnum
	KindStruct
	KindArray
	KindUnion
	KindAlias

	// Parsed but rejected at mapping time (§3).
	KindSequence
	KindMap
	KindWString
	KindFloat128
	KindChar16
	KindWChar
	KindBitset
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindChar8:
		return "char8"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindStruct:
		return "struct"
	case KindArray:
		return "array"
	case KindUnion:
		return "union"
	case KindAlias:
		return "alias"
	case KindSequence:
		return "sequence"
	case KindMap:
		return "map"
	case KindWString:
		return "wstring"
	case KindFloat128:
		return "float128"
	case KindChar16:
		return "char16"
	case KindWChar:
		return "wchar"
	case KindBitset:
		return "bitset"
	default:
		return "invalid"
	}
}

// IsPrimitiveLeaf reports whether a type of this kind is directly eligible
// to become a signal-table entry: a primitive, an enumeration, or a string
// (§3, §4.1). Structs, arrays, unions and aliases are not leaves themselves
// -- they are walked into. Sequence/map/wstring/float128/char16/wchar/bitset
// are never eligible.
func (k Kind) IsPrimitiveLeaf() bool {
	switch k {
	case KindBool, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64, KindChar8, KindString, KindEnum:
		return true
	default:
		return false
	}
}

// IsUnsupported reports whether this kind can never be mapped to an FMI
// scalar kind, per the fixed table in §3.
func (k Kind) IsUnsupported() bool {
	switch k {
	case KindSequence, KindMap, KindWString, KindFloat128, KindChar16, KindWChar, KindBitset:
		return true
	default:
		return false
	}
}

// FMIKind is one of the four scalar kinds the FMI 2.0 Co-Simulation ABI
// exposes.
type FMIKind uint8

const (
	FMIInvalid FMIKind = iota
	FMIReal
	FMIInteger
	FMIBoolean
	FMIString
)

func (k FMIKind) String() string {
	switch k {
	case FMIReal:
		return "Real"
	case FMIInteger:
		return "Integer"
	case FMIBoolean:
		return "Boolean"
	case FMIString:
		return "String"
	default:
		return "Invalid"
	}
}

// ResolveFMIKind maps an IDL primitive/enum/string kind to its FMI scalar
// kind, per the fixed table in §3. The rationale for widening uint32,
// int64, uint64, float32 and float64 to Real rather than Integer is that
// FMI 2.0's Integer type is a 32-bit signed value; routing anything wider
// through double preserves exact values up to 2^53 and preserves ordering.
//
// ResolveFMIKind is a total function on the primitive/enum/string kinds; it
// returns (FMIInvalid, false) for every kind for which IsPrimitiveLeaf is
// false.
func ResolveFMIKind(k Kind) (FMIKind, bool) {
	switch k {
	case KindBool:
		return FMIBoolean, true
	case KindInt8, KindUint8, KindInt16, KindUint16, KindInt32:
		return FMIInteger, true
	case KindUint32, KindInt64, KindUint64, KindFloat32, KindFloat64:
		return FMIReal, true
	case KindEnum:
		return FMIInteger, true
	case KindString, KindChar8:
		return FMIString, true
	default:
		return FMIInvalid, false
	}
}

// UnsupportedError describes a type of an unsupported kind at a path
// inside a structured type. [WalkLeaves] does not return it: it reports
// unsupported subtrees through an [UnsupportedVisitor] and skips them.
type UnsupportedError struct {
	Path string
	Kind Kind
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("idl: unsupported type kind %v at %q", e.Kind, e.Path)
}
