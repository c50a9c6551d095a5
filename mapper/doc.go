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

// Package mapper owns the per-topic structured-data buffers and the
// per-leaf accessor closures the FMU's Get<Kind>/Set<Kind> entry points
// are bound to: a flat, dense, per-kind vector of closures indexed by
// FMI value reference, each closure capturing a single leaf of some
// (topic, direction) buffer.
package mapper
