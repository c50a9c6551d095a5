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

package mapper

import (
	"github.com/dnv-opensource/dds-fmu/idl"
	"github.com/dnv-opensource/dds-fmu/xtypes"
)

type realAccessor struct {
	get func() float64
	set func(float64)
}

type intAccessor struct {
	get func() int32
	set func(int32)
}

type boolAccessor struct {
	get func() bool
	set func(bool)
}

type stringAccessor struct {
	get func() string
	set func(string)
}

// realClosures builds the get/set pair for a leaf whose FMI kind is
// Real: KindFloat64 is used directly; KindFloat32, KindUint32, KindInt64
// and KindUint64 are narrowed/widened through float64 on every access,
// the explicit narrowing rule §4.2 calls for (e.g. a double source
// assigned into a uint64_t leaf truncates).
func realClosures(d *xtypes.Data) (func() float64, func(float64)) {
	switch d.Kind() {
	case idl.KindFloat64:
		return d.GetFloat64, d.SetFloat64
	case idl.KindFloat32:
		return func() float64 { return float64(d.GetFloat32()) },
			func(v float64) { d.SetFloat32(float32(v)) }
	case idl.KindInt64:
		return func() float64 { return float64(d.GetInt64()) },
			func(v float64) { d.SetInt64(int64(v)) }
	default: // KindUint32, KindUint64
		return func() float64 { return float64(d.GetUint64()) },
			func(v float64) { d.SetUint64(uint64(v)) }
	}
}

// intClosures builds the get/set pair for a leaf whose FMI kind is
// Integer: int8/int16/int32 via the signed path, uint8/uint16 via the
// unsigned path, and enum via its uint32 underlying value (§3: "enum ->
// Integer (uint32 underlying)").
func intClosures(d *xtypes.Data) (func() int32, func(int32)) {
	switch d.Kind() {
	case idl.KindEnum:
		return func() int32 { return int32(d.GetEnum()) },
			func(v int32) { d.SetEnum(uint32(v)) }
	case idl.KindUint8, idl.KindUint16:
		return func() int32 { return int32(d.GetUint64()) },
			func(v int32) { d.SetUint64(uint64(v)) }
	default: // KindInt8, KindInt16, KindInt32
		return func() int32 { return int32(d.GetInt64()) },
			func(v int32) { d.SetInt64(int64(v)) }
	}
}

func boolClosures(d *xtypes.Data) (func() bool, func(bool)) {
	return d.GetBool, d.SetBool
}

// stringClosures builds the get/set pair for a leaf whose FMI kind is
// String: KindString directly, KindChar8 through the single-character
// string convention xtypes.Data.SetString already enforces (§4.2).
func stringClosures(d *xtypes.Data) (func() string, func(string)) {
	return d.GetString, d.SetString
}
