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

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dnv-opensource/dds-fmu/idl"
)

// SignalRow is the minimal view of a signal.Record the generator needs;
// kept decoupled from the signal package's concrete type so config has
// no import-cycle-prone dependency on it.
type SignalRow struct {
	ValueRef  int
	FMIName   string
	Causality string
	FMIKind   idl.FMIKind
}

// TemplatePath is the modelDescription.xml template's location relative
// to a resources directory (§6).
func TemplatePath(resourcesDir string) string {
	return filepath.Join(resourcesDir, "config", "modelDescription.xml")
}

// GenerateModelDescription reads the modelDescription.xml template,
// replaces its guid attribute with guid, and appends a <ModelVariables>
// subtree (one ScalarVariable per row, in row order) and a
// <ModelStructure> subtree ahead of the template's closing
// </fmiModelDescription> tag (§6).
func GenerateModelDescription(resourcesDir string, guid string, rows []SignalRow, outputs int) ([]byte, error) {
	path := TemplatePath(resourcesDir)
	tmpl, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	doc := string(tmpl)
	doc = guidAttrRE.ReplaceAllString(doc, fmt.Sprintf(`guid="%s"`, guid))

	var vars strings.Builder
	vars.WriteString("<ModelVariables>")
	for _, r := range rows {
		vars.WriteString(ModelVariableXML(r.FMIName, r.Causality, r.ValueRef, r.FMIKind))
	}
	vars.WriteString("</ModelVariables>")
	vars.WriteString(ModelStructureOutputsXML(outputs))

	const closeTag = "</fmiModelDescription>"
	idx := strings.LastIndex(doc, closeTag)
	if idx < 0 {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("template missing closing %s tag", closeTag)}
	}
	out := doc[:idx] + vars.String() + doc[idx:]
	return []byte(out), nil
}
