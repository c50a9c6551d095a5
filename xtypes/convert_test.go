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

package xtypes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnv-opensource/dds-fmu/idl"
	"github.com/dnv-opensource/dds-fmu/xtypes"
)

func roundtripType() *idl.Type {
	return &idl.Type{
		Kind: idl.KindStruct,
		Name: "Roundtrip",
		Struct: &idl.StructType{Members: []idl.Member{
			{Name: "val", Type: &idl.Type{Kind: idl.KindFloat64}},
		}},
	}
}

func TestCopyIntoScalarRoundtrip(t *testing.T) {
	src := xtypes.New(roundtripType())
	f, _ := src.Field("val")
	f.SetFloat64(3.14)

	dst := xtypes.New(roundtripType())
	require.NoError(t, xtypes.CopyInto(src, dst))

	got, ok := dst.Field("val")
	require.True(t, ok)
	assert.Equal(t, 3.14, got.GetFloat64())
	assert.True(t, src.Equal(dst))
}

func TestCopyIntoStructArrayUnion(t *testing.T) {
	inner := innerStruct()
	union := &idl.Type{
		Kind: idl.KindUnion,
		Name: "U",
		Union: &idl.UnionType{
			Discriminator: &idl.Type{Kind: idl.KindInt32},
			Cases: []idl.UnionCase{
				{Labels: []int64{0}, Member: idl.Member{Name: "a", Type: &idl.Type{Kind: idl.KindInt32}}},
				{Labels: []int64{1}, Member: idl.Member{Name: "b", Type: &idl.Type{Kind: idl.KindString}}},
			},
		},
	}
	typ := &idl.Type{
		Kind: idl.KindStruct,
		Name: "Mixed",
		Struct: &idl.StructType{Members: []idl.Member{
			{Name: "inner", Type: inner},
			{Name: "arr", Type: &idl.Type{Kind: idl.KindArray, Array: &idl.ArrayType{Element: &idl.Type{Kind: idl.KindInt32}, Dims: []int{2}}}},
			{Name: "u", Type: union},
		}},
	}

	src := xtypes.New(typ)
	innerField, _ := src.Field("inner")
	leaf, _ := innerField.Field("my_uint32")
	leaf.SetUint64(7)

	arr, _ := src.Field("arr")
	e0, _ := arr.Index(0)
	e0.SetInt64(42)

	uField, _ := src.Field("u")
	require.NoError(t, uField.SelectCase(1))
	uField.Payload.SetString("hello")

	dst := xtypes.New(typ)
	require.NoError(t, xtypes.CopyInto(src, dst))
	assert.True(t, src.Equal(dst))

	dstU, _ := dst.Field("u")
	assert.Equal(t, 1, dstU.ActiveCase)
	assert.Equal(t, "hello", dstU.Payload.GetString())
}

func TestCloneIsIndependent(t *testing.T) {
	src := xtypes.New(roundtripType())
	f, _ := src.Field("val")
	f.SetFloat64(1.0)

	clone := xtypes.Clone(src)
	cf, _ := clone.Field("val")
	cf.SetFloat64(2.0)

	assert.Equal(t, 1.0, f.GetFloat64())
	assert.Equal(t, 2.0, cf.GetFloat64())
}
