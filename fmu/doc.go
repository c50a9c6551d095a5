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

// Package fmu exposes the FMI 2.0 Co-Simulation entry points (§4.6): it
// forwards Get<Kind>/Set<Kind> to the Data Mapper and drives
// Write/Take on the Dynamic Pub/Sub layer on every DoStep.
//
// This package does not implement the FMI C ABI itself (the C shim that
// a host simulation master loads is an external collaborator, §1); it is
// the Go object a thin cgo or C-shared-library shim would call into.
package fmu
