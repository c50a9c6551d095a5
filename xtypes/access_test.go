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

func TestSetIntNarrowsToDeclaredWidth(t *testing.T) {
	d := xtypes.New(&idl.Type{Kind: idl.KindInt8})
	d.SetInt64(200) // out of int8 range, must wrap like a real narrowing store
	assert.Equal(t, int64(int8(200)), d.GetInt64())
}

func TestSetUintNarrowsToDeclaredWidth(t *testing.T) {
	d := xtypes.New(&idl.Type{Kind: idl.KindUint16})
	d.SetUint64(1 << 20)
	assert.Equal(t, uint64(uint16(1<<20)), d.GetUint64())
}

func TestChar8StringRoundTripKeepsOneRune(t *testing.T) {
	d := xtypes.New(&idl.Type{Kind: idl.KindChar8})
	d.SetString("abc")
	assert.Equal(t, "a", d.GetString())
}

func TestCanonicalRoundTripPerKind(t *testing.T) {
	cases := []struct {
		kind idl.Kind
		text string
	}{
		{idl.KindBool, "true"},
		{idl.KindInt32, "-42"},
		{idl.KindUint32, "42"},
		{idl.KindFloat64, "3.5"},
		{idl.KindString, "hello world"},
		{idl.KindEnum, "2"},
	}
	for _, tc := range cases {
		d := xtypes.New(&idl.Type{Kind: tc.kind})
		require.NoError(t, d.ParseCanonical(tc.text))
		got, err := d.FormatCanonical()
		require.NoError(t, err)
		assert.Equal(t, tc.text, got)
	}
}

func TestParseCanonicalRejectsGarbage(t *testing.T) {
	d := xtypes.New(&idl.Type{Kind: idl.KindInt32})
	assert.Error(t, d.ParseCanonical("not-a-number"))

	b := xtypes.New(&idl.Type{Kind: idl.KindBool})
	assert.Error(t, b.ParseCanonical("maybe"))
}

func TestFormatCanonicalRejectsCompoundKinds(t *testing.T) {
	d := xtypes.New(&idl.Type{
		Kind:   idl.KindStruct,
		Struct: &idl.StructType{},
	})
	_, err := d.FormatCanonical()
	assert.Error(t, err)
}
