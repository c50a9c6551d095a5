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
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// guidNamespace is the fixed namespace UUID the FMU GUID is derived from
// (§3).
var guidNamespace = uuid.MustParse("1a9ff216-b23c-24a7-ff73-e4e6d3ab3dcd")

// guidSourceSuffixes lists the file suffixes that contribute to the GUID
// hash (§3): IDL sources, XML configuration, YAML (reserved for future
// use by the mapping schema).
var guidSourceSuffixes = map[string]bool{
	".idl": true,
	".xml": true,
	".yml": true,
}

// whitespaceRE strips ASCII whitespace, CR and LF before hashing, so the
// GUID is invariant under reformatting (§3, §8's GUID-reproducibility
// property).
var whitespaceRE = regexp.MustCompile(`[ \t\r\n]+`)

// guidAttrRE strips any existing "guid=\"...\"" attribute (36 lowercase
// hex/dash characters) so that re-deriving the GUID of an
// already-generated modelDescription.xml is idempotent (§3, §8).
var guidAttrRE = regexp.MustCompile(`guid *= *"[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}"`)

// ComputeGUID derives the FMU's GUID: a UUID v5 over the namespace
// [guidNamespace] and the concatenation of every file under
// resources/config/ whose suffix is one of .idl/.xml/.yml (walked
// recursively, in stable lexical path order), followed by any
// caller-supplied extra strings, after stripping whitespace and any
// "guid=\"...\"" attribute from the byte stream (§3).
func ComputeGUID(resourcesDir string, extra ...string) (uuid.UUID, error) {
	configDir := filepath.Join(resourcesDir, "config")

	var paths []string
	err := filepath.WalkDir(configDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Base(path) == "modelDescription.xml" {
			// The template (and, once generated, the final copy) carries
			// the guid attribute itself and the generated ModelVariables
			// section; hashing it would make GUID recomputation depend
			// on the GUID's own prior output. §4.6's instantiation-time
			// recheck explicitly skips it for the same reason; this
			// generation-time computation does the same so both agree.
			return nil
		}
		if guidSourceSuffixes[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return uuid.UUID{}, &ConfigError{Path: configDir, Err: err}
	}
	sort.Strings(paths)

	var b strings.Builder
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return uuid.UUID{}, &ConfigError{Path: p, Err: err}
		}
		b.Write(data)
	}
	for _, s := range extra {
		b.WriteString(s)
	}

	filtered := filterGUIDSource(b.String())
	return uuid.NewSHA1(guidNamespace, []byte(filtered)), nil
}

// filterGUIDSource applies §3's two filtering rules in order: strip any
// existing guid="..." attribute, then remove all whitespace/CR/LF.
func filterGUIDSource(s string) string {
	s = guidAttrRE.ReplaceAllString(s, "")
	s = whitespaceRE.ReplaceAllString(s, "")
	return s
}
