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

package fmu

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dnv-opensource/dds-fmu/config"
)

// GUIDMismatchError reports that the GUID recomputed from an unpacked
// FMU's resources does not match the GUID recorded in its
// modelDescription.xml header (§3, §4.6, §7: "fatal at instantiation").
type GUIDMismatchError struct {
	Header   string
	Computed string
}

func (e *GUIDMismatchError) Error() string {
	return fmt.Sprintf("fmu: guid mismatch: header %q, recomputed %q", e.Header, e.Computed)
}

// stripResourceURL turns an FMI resource-location URL into a filesystem
// path. The "file://" prefix is removed; when what remains is a slash
// followed by a drive letter ("file:///C:/dir"), that slash is dropped as
// well. A POSIX URL such as "file:///abs/dir" keeps its leading slash, so
// both URL forms are accepted.
func stripResourceURL(resourceURL string) string {
	path := strings.TrimPrefix(resourceURL, "file://")
	if len(path) >= 3 && path[0] == '/' && path[2] == ':' &&
		(('a' <= path[1] && path[1] <= 'z') || ('A' <= path[1] && path[1] <= 'Z')) {
		return path[1:]
	}
	return path
}

// CheckGUID recomputes the FMU GUID from <base>/resources/config/* (the
// same files and rule [config.ComputeGUID] uses, skipping
// modelDescription.xml itself) and compares it against headerGUID, the
// GUID the FMI host read from the loaded modelDescription.xml. A
// mismatch is fatal at instantiation (§3, §7).
func CheckGUID(resourceURL, headerGUID string) error {
	base := stripResourceURL(resourceURL)
	computed, err := config.ComputeGUID(filepath.Join(base, "resources"))
	if err != nil {
		return fmt.Errorf("fmu: recompute guid: %w", err)
	}
	if computed.String() != headerGUID {
		return &GUIDMismatchError{Header: headerGUID, Computed: computed.String()}
	}
	return nil
}
