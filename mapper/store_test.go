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

package mapper_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnv-opensource/dds-fmu/mapper"
	"github.com/dnv-opensource/dds-fmu/xtypes"
)

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func roundtripFixture(t *testing.T) string {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "config", "idl", "dds-fmu.idl"), `
struct Roundtrip {
  double val;
};
`)
	mustWrite(t, filepath.Join(root, "config", "dds", "ddsfmu_mapping.xml"), `
<ddsfmu>
  <fmu_in topic="rt" type="Roundtrip"/>
  <fmu_out topic="rt" type="Roundtrip"/>
</ddsfmu>
`)
	return root
}

func TestStoreResetWiresReadAndWriteBuffers(t *testing.T) {
	root := roundtripFixture(t)
	s := mapper.New(zerolog.Nop())
	require.NoError(t, s.Reset(root))

	// Output (Read) buffer is added before the input (Write) buffer, so
	// value reference 0 of kind Real is the Read-side "val" leaf and
	// value reference 1 is the Write-side one (§4.2).
	require.NoError(t, s.SetReal(1, 3.14))
	v, err := s.GetReal(1)
	require.NoError(t, err)
	assert.Equal(t, 3.14, v)

	got, err := s.GetReal(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "read-side buffer starts at zero until pubsub.Take populates it")
}

func TestStoreValueRefOutOfRangeIsFatal(t *testing.T) {
	root := roundtripFixture(t)
	s := mapper.New(zerolog.Nop())
	require.NoError(t, s.Reset(root))

	_, err := s.GetReal(99)
	var vrErr *mapper.ValueRefError
	assert.ErrorAs(t, err, &vrErr)
}

func TestStoreDuplicateTopicDirectionIsFatal(t *testing.T) {
	root := roundtripFixture(t)
	s := mapper.New(zerolog.Nop())
	require.NoError(t, s.Reset(root))

	err := s.Add("rt", "Roundtrip", mapper.Read)
	var dupErr *mapper.DuplicateTopicError
	assert.ErrorAs(t, err, &dupErr)
}

func TestStoreKeyFilterParameterAddedAfterInputsAndOutputs(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "config", "idl", "dds-fmu.idl"), `
struct Reading {
  @key string sensor_id;
  double value;
};
struct Command {
  int32 setpoint;
};
`)
	mustWrite(t, filepath.Join(root, "config", "dds", "ddsfmu_mapping.xml"), `
<ddsfmu>
  <fmu_out topic="reading" type="Reading" key_filter="true"/>
  <fmu_in topic="cmd" type="Command"/>
</ddsfmu>
`)

	s := mapper.New(zerolog.Nop())
	require.NoError(t, s.Reset(root))

	// Integer kind: vr 0 is Command.setpoint (Write); String kind: vr 0
	// is Reading.sensor_id (Read), vr 1 is the Parameter copy.
	require.NoError(t, s.SetInteger(0, 7))
	got, err := s.GetInteger(0)
	require.NoError(t, err)
	assert.Equal(t, int32(7), got)

	require.NoError(t, s.SetString(1, "BETA"))
	param, err := s.GetString(1)
	require.NoError(t, err)
	assert.Equal(t, "BETA", param)

	buf, ok := s.DataRef("reading", mapper.Parameter)
	require.True(t, ok)
	leaf, ok := buf.Field("sensor_id")
	require.True(t, ok)
	assert.Equal(t, "BETA", leaf.GetString())
}

func TestStoreCrossKindCoverage(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "config", "idl", "dds-fmu.idl"), `
enum Mode { ALPHA, BETA };
struct Mixed {
  boolean b;
  octet o8;
  short i16;
  long i32;
  int64 i64;
  uint16 u16;
  uint32 u32;
  uint64 u64;
  float f32;
  double f64;
  char c8;
  string s;
  Mode m;
};
`)
	mustWrite(t, filepath.Join(root, "config", "dds", "ddsfmu_mapping.xml"), `
<ddsfmu>
  <fmu_out topic="out" type="Mixed"/>
  <fmu_in topic="in" type="Mixed"/>
</ddsfmu>
`)
	s := mapper.New(zerolog.Nop())
	require.NoError(t, s.Reset(root))

	read, ok := s.DataRef("out", mapper.Read)
	require.True(t, ok)
	write, ok := s.DataRef("in", mapper.Write)
	require.True(t, ok)

	b, _ := read.Field("b")
	b.SetBool(true)
	i32, _ := read.Field("i32")
	i32.SetInt64(-7)
	u32, _ := read.Field("u32")
	u32.SetUint64(42)
	s8, _ := read.Field("s")
	s8.SetString("hello")
	m, _ := read.Field("m")
	m.SetEnum(1)

	require.NoError(t, xtypes.CopyInto(read, write))
	assert.True(t, read.Equal(write))
}
