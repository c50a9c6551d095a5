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

package signal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnv-opensource/dds-fmu/idl"
	"github.com/dnv-opensource/dds-fmu/signal"
)

func writeIDL(t *testing.T, root, content string) string {
	t.Helper()
	idlDir := filepath.Join(root, "resources", "config", "idl")
	require.NoError(t, os.MkdirAll(idlDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(idlDir, "dds-fmu.idl"), []byte(content), 0o644))
	return filepath.Join(root, "resources")
}

func TestSignalOrderingOutputsInputsParameters(t *testing.T) {
	root := t.TempDir()
	resources := writeIDL(t, root, `
struct Reading {
  @key string sensor_id;
  double value;
};
struct Command {
  int32 setpoint;
};
`)

	d := signal.New(zerolog.Nop())
	require.NoError(t, d.LoadIDLs(resources))

	require.NoError(t, d.Add("out1", "Reading", signal.Output))
	d.QueueForKeyParameter("out1", "Reading")
	require.NoError(t, d.Add("in1", "Command", signal.Input))
	require.NoError(t, d.ProcessKeyQueue())

	mapping := d.GetMapping()
	require.Len(t, mapping, 4) // sensor_id+value (output), setpoint (input), sensor_id (parameter)

	var sawInput, sawParameter bool
	for i, rec := range mapping {
		switch rec.Cardinality {
		case signal.Output:
			assert.False(t, sawInput, "output at index %d must precede all inputs", i)
			assert.False(t, sawParameter, "output at index %d must precede all parameters", i)
		case signal.Input:
			sawInput = true
			assert.False(t, sawParameter, "input at index %d must precede all parameters", i)
		case signal.Parameter:
			sawParameter = true
		}
	}
	assert.True(t, sawInput)
	assert.True(t, sawParameter)

	assert.Equal(t, 2, d.Outputs())
}

func TestValueReferencesAreDensePerKind(t *testing.T) {
	root := t.TempDir()
	resources := writeIDL(t, root, `
struct Multi {
  double a;
  double b;
  int32 c;
};
`)
	d := signal.New(zerolog.Nop())
	require.NoError(t, d.LoadIDLs(resources))
	require.NoError(t, d.Add("t", "Multi", signal.Output))

	reals := map[int]bool{}
	ints := map[int]bool{}
	for _, rec := range d.GetMapping() {
		switch rec.FMIKind {
		case idl.FMIReal:
			reals[rec.ValueRef] = true
		case idl.FMIInteger:
			ints[rec.ValueRef] = true
		}
	}
	assert.Equal(t, map[int]bool{0: true, 1: true}, reals)
	assert.Equal(t, map[int]bool{0: true}, ints)
}

func TestNamingFollowsPrefixTopicPathRule(t *testing.T) {
	root := t.TempDir()
	resources := writeIDL(t, root, `
struct Reading {
  double value;
};
`)
	d := signal.New(zerolog.Nop())
	require.NoError(t, d.LoadIDLs(resources))
	require.NoError(t, d.Add("temperature", "Reading", signal.Output))
	require.NoError(t, d.Add("setpoint", "Reading", signal.Input))

	var names []string
	for _, rec := range d.GetMapping() {
		names = append(names, rec.FMIName)
	}
	assert.Contains(t, names, "sub.temperature.value")
	assert.Contains(t, names, "pub.setpoint.value")
}

func TestUnsupportedKindsAreSkippedNotFatal(t *testing.T) {
	root := t.TempDir()
	resources := writeIDL(t, root, `
struct HasSequence {
  double ok;
  sequence<int32> bad;
};
`)
	d := signal.New(zerolog.Nop())
	require.NoError(t, d.LoadIDLs(resources))
	require.NoError(t, d.Add("t", "HasSequence", signal.Output))

	mapping := d.GetMapping()
	require.Len(t, mapping, 1)
	assert.Equal(t, "sub.t.ok", mapping[0].FMIName)
}

func TestAddUnknownTypeFails(t *testing.T) {
	root := t.TempDir()
	resources := writeIDL(t, root, `struct Known { double x; };`)
	d := signal.New(zerolog.Nop())
	require.NoError(t, d.LoadIDLs(resources))
	assert.Error(t, d.Add("t", "NotDeclared", signal.Output))
}

func TestDuplicateTopicCardinalityIsFatal(t *testing.T) {
	root := t.TempDir()
	resources := writeIDL(t, root, `struct Known { double x; };`)
	d := signal.New(zerolog.Nop())
	require.NoError(t, d.LoadIDLs(resources))
	require.NoError(t, d.Add("t", "Known", signal.Output))
	assert.Error(t, d.Add("t", "Known", signal.Output))
}

func TestParameterCardinalityOnlyEnumeratesKeyLeaves(t *testing.T) {
	root := t.TempDir()
	resources := writeIDL(t, root, `
struct Reading {
  @key string id;
  double value;
  double other;
};
`)
	d := signal.New(zerolog.Nop())
	require.NoError(t, d.LoadIDLs(resources))
	require.NoError(t, d.Add("t", "Reading", signal.Parameter))

	mapping := d.GetMapping()
	require.Len(t, mapping, 1)
	assert.Equal(t, "key.sub.t.id", mapping[0].FMIName)
	assert.Equal(t, "parameter", mapping[0].Causality)
}
