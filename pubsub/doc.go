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

// Package pubsub is the Dynamic Pub/Sub layer (§4.5): it builds the DDS
// topology described by ddsfmu_mapping.xml and wires each endpoint to the
// Data Mapper's structured-data buffers.
//
// The actual DDS/RTPS participant, topics, readers and writers are an
// external collaborator (§1: "only its API surface is assumed" -- no
// DDS/RTPS client library appears anywhere in the retrieval pack; see
// DESIGN.md). [Transport] is that assumed API surface, expressed as a Go
// interface; [PubSub] depends only on it, never on a concrete middleware
// client, and a host program wires in whatever DDS implementation it
// chooses. [NewInProcessTransport] provides a default, dependency-free
// transport used by this package's own tests and any deployment that
// wants FMU-to-FMU topics without leaving the process.
package pubsub
