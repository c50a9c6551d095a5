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

// Package xtypes is a tree-shaped dynamic value conforming to an
// [idl.Type]: the in-memory half of the bidirectional conversion the type
// converter performs against the middleware's own dynamic-data
// representation (§4.3).
//
// A [Data] owns its subtree (no node is shared between two parents, so a
// parent [Data] keeps its whole subtree alive simply by being reachable);
// each node also keeps a pointer back to its parent, reachable through
// [Data.Parent]. Every reachable leaf
// always has a defined value: scalars default to zero, strings default to
// empty, and enums default to their zeroth enumerator, exactly as §3
// requires.
package xtypes
