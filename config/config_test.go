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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnv-opensource/dds-fmu/config"
	"github.com/dnv-opensource/dds-fmu/idl"
)

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadMappingOrdersOutputsBeforeInputs(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, config.MappingPath(root), `
<ddsfmu>
  <fmu_in topic="cmd" type="Command"/>
  <fmu_out topic="reading" type="Reading" key_filter="true"/>
</ddsfmu>
`)
	entries, err := config.LoadMapping(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, config.Out, entries[0].Direction)
	assert.Equal(t, "reading", entries[0].Topic)
	assert.True(t, entries[0].KeyFilter)
	assert.Equal(t, config.In, entries[1].Direction)
	assert.Equal(t, "cmd", entries[1].Topic)
}

func TestLoadMappingMissingAttributeIsFatal(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, config.MappingPath(root), `
<ddsfmu>
  <fmu_in type="Command"/>
</ddsfmu>
`)
	_, err := config.LoadMapping(root)
	assert.Error(t, err)
}

func TestLoadMappingMissingFileIsFatal(t *testing.T) {
	root := t.TempDir()
	_, err := config.LoadMapping(root)
	assert.Error(t, err)
	var cfgErr *config.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestComputeGUIDInvariantUnderWhitespace(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "config", "idl", "dds-fmu.idl"), "struct Point { double x; double y; };")
	mustWrite(t, filepath.Join(root, "config", "dds", "ddsfmu_mapping.xml"), `<ddsfmu><fmu_in topic="a" type="Point"/></ddsfmu>`)

	g1, err := config.ComputeGUID(root)
	require.NoError(t, err)

	reformatted := t.TempDir()
	mustWrite(t, filepath.Join(reformatted, "config", "idl", "dds-fmu.idl"), "struct  Point  {\n  double x;\r\n  double y;\n};\n\n")
	mustWrite(t, filepath.Join(reformatted, "config", "dds", "ddsfmu_mapping.xml"), "<ddsfmu>\n  <fmu_in topic=\"a\" type=\"Point\"/>\n</ddsfmu>")

	g2, err := config.ComputeGUID(reformatted)
	require.NoError(t, err)

	assert.Equal(t, g1, g2, "whitespace reformatting must not change the GUID")
}

func TestComputeGUIDIgnoresModelDescriptionTemplate(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "config", "idl", "dds-fmu.idl"), "struct Point { double x; };")

	without, err := config.ComputeGUID(root)
	require.NoError(t, err)

	mustWrite(t, filepath.Join(root, "config", "modelDescription.xml"), `<fmiModelDescription guid="11111111-1111-1111-1111-111111111111"></fmiModelDescription>`)
	with, err := config.ComputeGUID(root)
	require.NoError(t, err)

	assert.Equal(t, without, with)
}

func TestComputeGUIDIsDeterministic(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "config", "idl", "dds-fmu.idl"), "struct Point { double x; };")

	g1, err := config.ComputeGUID(root)
	require.NoError(t, err)
	g2, err := config.ComputeGUID(root)
	require.NoError(t, err)
	assert.Equal(t, g1, g2)
}

func TestModelVariableXMLIncludesInitialExactForOutputAndParameter(t *testing.T) {
	out := config.ModelVariableXML("sub.t.x", "output", 0, idl.FMIReal)
	assert.Contains(t, out, `initial="exact"`)
	assert.Contains(t, out, `<Real start="0.0"/>`)

	in := config.ModelVariableXML("pub.t.x", "input", 0, idl.FMIInteger)
	assert.NotContains(t, in, `initial="exact"`)
	assert.Contains(t, in, `<Integer start="0"/>`)
}

func TestModelStructureOutputsXML(t *testing.T) {
	got := config.ModelStructureOutputsXML(3)
	assert.Equal(t, `<ModelStructure><Outputs><Unknown index="1"/><Unknown index="2"/><Unknown index="3"/></Outputs></ModelStructure>`, got)
}

func TestGenerateModelDescriptionReplacesGUIDAndAppendsVariables(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, config.TemplatePath(root), `<?xml version="1.0"?><fmiModelDescription guid="00000000-0000-0000-0000-000000000000"></fmiModelDescription>`)

	rows := []config.SignalRow{
		{ValueRef: 0, FMIName: "sub.t.x", Causality: "output", FMIKind: idl.FMIReal},
	}
	out, err := config.GenerateModelDescription(root, "deadbeef-dead-beef-dead-beefdeadbeef", rows, 1)
	require.NoError(t, err)

	doc := string(out)
	assert.Contains(t, doc, `guid="deadbeef-dead-beef-dead-beefdeadbeef"`)
	assert.Contains(t, doc, `<ModelVariables>`)
	assert.Contains(t, doc, `name="sub.t.x"`)
	assert.Contains(t, doc, `<ModelStructure><Outputs><Unknown index="1"/></Outputs></ModelStructure>`)
}
