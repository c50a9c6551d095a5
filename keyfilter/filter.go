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

package keyfilter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dnv-opensource/dds-fmu/idl"
	"github.com/dnv-opensource/dds-fmu/xtypes"
)

// ClassName is the only content-filter class this factory ever honors
// (§4.4's create_content_filter).
const ClassName = "CUSTOM_KEY_FILTER"

// UnknownGUID is the sentinel parameter value a filter is created with
// before its reader's real GUID is known (§4.4): "the reader is enrolled
// later via add_type once its real GUID is known".
const UnknownGUID = "|GUID UNKNOWN|"

var errStopWalk = errors.New("keyfilter: stop")

// entry is the per-reader registration state §4.4 describes: the key
// leaf types (in depth-first key order) and the parsed reference values
// to compare incoming samples against.
type entry struct {
	keyPaths []idl.Path
	keyTypes []*idl.Type
	keyData  []*xtypes.Data
}

// Filter holds one registration per reader GUID. It is safe for
// concurrent use: §5 notes that evaluate runs on the middleware's
// internal dispatch thread while add_type/registration only ever runs on
// the master thread during reset/initialization, so the map is guarded
// by a mutex even though the source relies on ordering alone.
type Filter struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New creates an empty Filter.
func New() *Filter {
	return &Filter{entries: make(map[string]entry)}
}

// HasReader reports whether guid is already registered, letting a caller
// suppress a redundant re-registration (§4.4's has_reader_GUID check).
func (f *Filter) HasReader(guid string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.entries[guid]
	return ok
}

// AddType registers (or re-registers -- insert-or-assign) a reader's key
// values, parsed from params the way §4.4 specifies: params[0] is the
// reader GUID (rejected if it is [UnknownGUID]), params[1:] are the key
// values in depth-first key-member order, one string per @key leaf of
// typ, parsed per that leaf's kind.
func (f *Filter) AddType(readerGUID string, typ *idl.Type, params []string) error {
	if readerGUID == UnknownGUID || (len(params) > 0 && params[0] == UnknownGUID) {
		return fmt.Errorf("keyfilter: reader GUID is the unknown sentinel %q", UnknownGUID)
	}
	paths, types, err := idl.KeyLeaves(typ)
	if err != nil {
		return fmt.Errorf("keyfilter: enumerate key leaves: %w", err)
	}
	if len(params) != len(types)+1 {
		return fmt.Errorf("keyfilter: reader %s: expected %d key parameters, got %d", readerGUID, len(types), len(params)-1)
	}

	values := make([]*xtypes.Data, len(types))
	for i, kt := range types {
		leaf := xtypes.New(kt)
		if err := leaf.ParseCanonical(params[i+1]); err != nil {
			return fmt.Errorf("keyfilter: reader %s: key %d: %w", readerGUID, i, err)
		}
		values[i] = leaf
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[readerGUID] = entry{keyPaths: paths, keyTypes: types, keyData: values}
	return nil
}

// RemoveReader forgets a reader's registration (mirrors delete_content_filter
// tearing down a filter instance).
func (f *Filter) RemoveReader(readerGUID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, readerGUID)
}

// Evaluate is the per-sample admission predicate (§4.4): it iterates
// sample's @key leaves in the same depth-first order AddType recorded
// them in and AND-reduces pairwise equality, stopping as soon as either a
// mismatch is found or every key has matched. An unknown reader GUID, or
// any walk error, rejects the sample -- per §7, a filter failure is
// non-fatal and degrades to sample rejection, never escaping to the
// caller.
func (f *Filter) Evaluate(readerGUID string, sample *xtypes.Data) bool {
	f.mu.RLock()
	e, ok := f.entries[readerGUID]
	f.mu.RUnlock()
	if !ok {
		return false
	}

	i := 0
	matched := true
	err := xtypes.Walk(sample, func(_ idl.Path, leaf *xtypes.Data) error {
		if !leaf.IsKey() {
			return nil
		}
		if i >= len(e.keyData) {
			return errStopWalk
		}
		if !leaf.Equal(e.keyData[i]) {
			matched = false
			return errStopWalk
		}
		i++
		if i == len(e.keyData) {
			return errStopWalk
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopWalk) {
		return false
	}
	return matched && i == len(e.keyData)
}
