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

// Package signal walks IDL structured types and materializes the ordered
// FMI signal table: one record per leaf, with a dense per-kind value
// reference, the leaf's structured name, its causality, and its FMI
// scalar kind.
//
// Parameter entries (the @key leaves of a key-filtered output topic) are
// queued and only materialized once every output and input has been
// enumerated, so parameter value references always sit after every other
// live signal -- that ordering is what lets modelDescription.xml number
// ModelStructure/Outputs/Unknown/index as simply 1..Outputs().
package signal
