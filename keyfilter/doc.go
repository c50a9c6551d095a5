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

// Package keyfilter implements the Custom Key Filter (§4.4): a per-reader
// content-filter predicate that admits a decoded sample only if every
// @key member equals a prefigured reference value.
//
// A single process-wide [Filter] can back every content-filtered reader
// the Dynamic Pub/Sub layer creates -- readers are distinguished by their
// GUID string, mirroring the "CUSTOM_KEY_FILTER" class the source
// registers once on the participant and reuses for every filtered topic.
package keyfilter
