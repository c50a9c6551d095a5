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

package idl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dnv-opensource/dds-fmu/idl"
)

// parserCase mirrors the shape of the teacher's own YAML-driven parser
// fixtures (parse_test.go): each case names files to place under
// resources/config/idl/ and the structured types that should come out.
type parserCase struct {
	Name  string            `yaml:"name"`
	Files map[string]string `yaml:"files"`
	Want  []string          `yaml:"want_types"`
}

func loadParserCases(t *testing.T) []parserCase {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "parser_cases.yaml"))
	require.NoError(t, err)
	var cases []parserCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))
	return cases
}

func TestLoadGoldenCases(t *testing.T) {
	for _, tc := range loadParserCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			root := t.TempDir()
			idlDir := filepath.Join(root, "resources", "config", "idl")
			require.NoError(t, os.MkdirAll(idlDir, 0o755))
			for name, content := range tc.Files {
				require.NoError(t, os.WriteFile(filepath.Join(idlDir, name), []byte(content), 0o644))
			}

			reg, err := idl.Load(filepath.Join(root, "resources"))
			require.NoError(t, err)
			for _, want := range tc.Want {
				assert.Truef(t, reg.HasStructure(want), "expected %q in registry", want)
			}
		})
	}
}

func TestLoadMissingEntryFileIsFatal(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "resources", "config", "idl"), 0o755))
	_, err := idl.Load(filepath.Join(root, "resources"))
	require.Error(t, err)
}

func TestLoadResolvesIncludesAndAliases(t *testing.T) {
	root := t.TempDir()
	idlDir := filepath.Join(root, "resources", "config", "idl")
	require.NoError(t, os.MkdirAll(idlDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(idlDir, "common.idl"), []byte(`
module common {
  enum Severity { LOW, MEDIUM, HIGH };
  struct Header {
    @key string id;
    Severity severity;
  };
};
`), 0o644))

	require.NoError(t, os.WriteFile(filepath.Join(idlDir, "dds-fmu.idl"), []byte(`
#include "common.idl"
typedef common::Header HeaderAlias;
struct Reading {
  HeaderAlias header;
  double value;
};
`), 0o644))

	reg, err := idl.Load(filepath.Join(root, "resources"))
	require.NoError(t, err)

	require.True(t, reg.HasStructure("Reading"))
	reading, _ := reg.Lookup("Reading")
	require.Len(t, reading.Struct.Members, 2)

	alias, ok := reg.Lookup("HeaderAlias")
	require.True(t, ok)
	assert.Equal(t, idl.KindAlias, alias.Kind)
	resolved := idl.Resolve(alias)
	assert.Equal(t, idl.KindStruct, resolved.Kind)

	paths, leaves, err := idl.KeyLeaves(reading)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Len(t, leaves, 1)
	assert.Equal(t, "header.id", paths[0].String())
}
