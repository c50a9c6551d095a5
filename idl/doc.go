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

// Package idl parses a small, practical subset of OMG IDL and exposes the
// result as an immutable registry of structured types.
//
// A [Registry] is built once per FMU reset by [Load] and is read-only for
// the rest of that instance's lifetime: everything downstream (the signal
// distributor, the data mapper, the type converter) walks the same
// [*Type] trees via [WalkLeaves], so leaf order is guaranteed to agree
// across components.
package idl
