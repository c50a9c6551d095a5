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
	"strconv"
	"strings"

	"github.com/dnv-opensource/dds-fmu/idl"
)

// ModelVariableXML and ModelStructureOutputsXML are kept as
// standalone, independently testable functions (mirroring
// original_source's model_description.cpp, which exercises both directly
// -- §8 scenario 3) rather than folded into a single monolithic
// generator.

// ModelVariableXML renders one <ScalarVariable> element for a signal
// table row (§6): name, valueReference, variability="discrete",
// causality, initial="exact" for output/parameter causalities, and a
// nested primitive element carrying the kind's default start value.
func ModelVariableXML(name string, causality string, valueRef int, kind idl.FMIKind) string {
	var b strings.Builder
	b.WriteString(`<ScalarVariable name="`)
	b.WriteString(escapeXML(name))
	b.WriteString(`" valueReference="`)
	b.WriteString(strconv.Itoa(valueRef))
	b.WriteString(`" variability="discrete" causality="`)
	b.WriteString(causality)
	b.WriteString(`"`)
	if causality == "output" || causality == "parameter" {
		b.WriteString(` initial="exact"`)
	}
	b.WriteString(">")
	b.WriteString(startElement(kind))
	b.WriteString("</ScalarVariable>")
	return b.String()
}

func startElement(kind idl.FMIKind) string {
	switch kind {
	case idl.FMIReal:
		return `<Real start="0.0"/>`
	case idl.FMIInteger:
		return `<Integer start="0"/>`
	case idl.FMIBoolean:
		return `<Boolean start="false"/>`
	case idl.FMIString:
		return `<String start=""/>`
	default:
		return ""
	}
}

func escapeXML(s string) string {
	r := strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

// ModelStructureOutputsXML renders the
// <ModelStructure><Outputs>...</Outputs></ModelStructure> block, with one
// <Unknown index="i"/> per output, i ranging 1..outputs inclusive (§6,
// §8 scenario 3).
func ModelStructureOutputsXML(outputs int) string {
	var b strings.Builder
	b.WriteString("<ModelStructure><Outputs>")
	for i := 1; i <= outputs; i++ {
		fmt.Fprintf(&b, `<Unknown index="%d"/>`, i)
	}
	b.WriteString("</Outputs></ModelStructure>")
	return b.String()
}
