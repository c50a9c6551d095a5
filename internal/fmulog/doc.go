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

// Package fmulog adapts a zerolog.Logger to the two ambient logging roles
// this bridge needs: the FMI 2.0 host callback logger
// ("fmi2CallbackLogger"-shaped: a category plus a status-like level plus
// a message), and the translation of DDS wire-log verbosity into that
// status ([FromWireVerbosity]). Both map onto the same three-level
// scheme: Info, Warning, Error (§7's verbosity table). The Dynamic
// Pub/Sub layer logs its own messages through a [Logger]; it does not
// register the logger with the transport as a wire-log consumer.
package fmulog
