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

package xtypes

import (
	"fmt"
	"strconv"

	"github.com/dnv-opensource/dds-fmu/idl"
)

// GetBool reads a boolean leaf.
func (d *Data) GetBool() bool { return d.leaf.b }

// SetBool writes a boolean leaf.
func (d *Data) SetBool(v bool) { d.leaf.b = v }

// GetInt64 reads a signed-integer leaf (int8/int16/int32/int64), widened
// to int64.
func (d *Data) GetInt64() int64 { return d.leaf.i64 }

// SetInt64 writes a signed-integer leaf, narrowing to the leaf's declared
// width the way the teacher's scalar setters narrow on store.
func (d *Data) SetInt64(v int64) {
	switch d.kind {
	case idl.KindInt8:
		d.leaf.i64 = int64(int8(v))
	case idl.KindInt16:
		d.leaf.i64 = int64(int16(v))
	case idl.KindInt32:
		d.leaf.i64 = int64(int32(v))
	default:
		d.leaf.i64 = v
	}
}

// GetUint64 reads an unsigned-integer leaf (uint8/uint16/uint32/uint64),
// widened to uint64.
func (d *Data) GetUint64() uint64 { return d.leaf.u64 }

// SetUint64 writes an unsigned-integer leaf, narrowing to the leaf's
// declared width.
func (d *Data) SetUint64(v uint64) {
	switch d.kind {
	case idl.KindUint8:
		d.leaf.u64 = uint64(uint8(v))
	case idl.KindUint16:
		d.leaf.u64 = uint64(uint16(v))
	case idl.KindUint32:
		d.leaf.u64 = uint64(uint32(v))
	default:
		d.leaf.u64 = v
	}
}

// GetFloat32 reads a float32 leaf.
func (d *Data) GetFloat32() float32 { return d.leaf.f32 }

// SetFloat32 writes a float32 leaf.
func (d *Data) SetFloat32(v float32) { d.leaf.f32 = v }

// GetFloat64 reads a float64 leaf.
func (d *Data) GetFloat64() float64 { return d.leaf.f64 }

// SetFloat64 writes a float64 leaf.
func (d *Data) SetFloat64(v float64) { d.leaf.f64 = v }

// GetString reads a string (or char8, as a single-character string) leaf.
func (d *Data) GetString() string { return d.leaf.str }

// SetString writes a string leaf. For char8, only the first byte of v is
// kept, per §4.2's "char8 <-> string uses single-character strings" rule.
func (d *Data) SetString(v string) {
	if d.kind == idl.KindChar8 && len(v) > 0 {
		d.leaf.str = v[:1]
		return
	}
	d.leaf.str = v
}

// GetEnum reads an enumeration leaf's underlying uint32 value.
func (d *Data) GetEnum() uint32 { return d.leaf.enum }

// SetEnum writes an enumeration leaf's underlying uint32 value.
func (d *Data) SetEnum(v uint32) { d.leaf.enum = v }

// FormatCanonical renders a leaf's value as the canonical textual form
// §4.4/§4.5 use for content-filter expression parameters: booleans as
// "true"/"false", enums as their decimal uint32 value, floats in decimal,
// strings verbatim, char8 as its single character.
func (d *Data) FormatCanonical() (string, error) {
	switch d.kind {
	case idl.KindBool:
		if d.leaf.b {
			return "true", nil
		}
		return "false", nil
	case idl.KindInt8, idl.KindInt16, idl.KindInt32, idl.KindInt64:
		return strconv.FormatInt(d.leaf.i64, 10), nil
	case idl.KindUint8, idl.KindUint16, idl.KindUint32, idl.KindUint64:
		return strconv.FormatUint(d.leaf.u64, 10), nil
	case idl.KindFloat32:
		return strconv.FormatFloat(float64(d.leaf.f32), 'g', -1, 32), nil
	case idl.KindFloat64:
		return strconv.FormatFloat(d.leaf.f64, 'g', -1, 64), nil
	case idl.KindEnum:
		return strconv.FormatUint(uint64(d.leaf.enum), 10), nil
	case idl.KindString, idl.KindChar8:
		return d.leaf.str, nil
	default:
		return "", fmt.Errorf("xtypes: %v has no canonical textual form", d.kind)
	}
}

// ParseCanonical parses s, written in the form [Data.FormatCanonical]
// produces, into this leaf (§4.4's add_type parameter parsing; §4.5's
// init_key_filters uses the inverse direction). Parsing is locale
// independent: numerics go through strconv, never fmt.Sscanf with a "%f"
// verb that could pick up locale-specific separators.
func (d *Data) ParseCanonical(s string) error {
	switch d.kind {
	case idl.KindBool:
		switch s {
		case "true":
			d.leaf.b = true
		case "false":
			d.leaf.b = false
		default:
			return fmt.Errorf("xtypes: invalid boolean literal %q", s)
		}
		return nil
	case idl.KindInt8, idl.KindInt16, idl.KindInt32, idl.KindInt64:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("xtypes: invalid integer literal %q: %w", s, err)
		}
		d.SetInt64(v)
		return nil
	case idl.KindUint8, idl.KindUint16, idl.KindUint32, idl.KindUint64:
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("xtypes: invalid unsigned integer literal %q: %w", s, err)
		}
		d.SetUint64(v)
		return nil
	case idl.KindFloat32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fmt.Errorf("xtypes: invalid float literal %q: %w", s, err)
		}
		d.leaf.f32 = float32(v)
		return nil
	case idl.KindFloat64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("xtypes: invalid float literal %q: %w", s, err)
		}
		d.leaf.f64 = v
		return nil
	case idl.KindEnum:
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return fmt.Errorf("xtypes: invalid enum literal %q: %w", s, err)
		}
		d.leaf.enum = uint32(v)
		return nil
	case idl.KindString:
		d.leaf.str = s
		return nil
	case idl.KindChar8:
		d.SetString(s)
		return nil
	default:
		return fmt.Errorf("xtypes: %v has no canonical textual form", d.kind)
	}
}
