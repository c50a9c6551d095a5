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

// Package config reads the on-disk configuration under resources/config/
// (the topic-to-signal mapping, the DDS QoS profile) and generates the
// FMU's modelDescription.xml, and computes the FMU's GUID from the
// contents of that same tree.
//
// No XML library appears anywhere in the retrieval pack, so this package
// is built on the standard library's encoding/xml (see DESIGN.md).
package config
