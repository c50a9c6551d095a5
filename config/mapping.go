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

package config

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// Direction is which way a mapping entry's topic flows relative to the
// FMU: an fmu_in element feeds a DDS publisher, an fmu_out element is fed
// by a DDS subscriber.
type Direction uint8

const (
	In Direction = iota
	Out
)

// MappingEntry is one <fmu_in>/<fmu_out> element of ddsfmu_mapping.xml
// (§6).
type MappingEntry struct {
	Topic     string
	Type      string
	Direction Direction
	KeyFilter bool
}

// ConfigError reports a problem with on-disk configuration: a missing or
// malformed file, or a schema violation. It is always fatal at reset
// (§7).
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

type rawMappingElem struct {
	Topic     string `xml:"topic,attr"`
	Type      string `xml:"type,attr"`
	KeyFilter string `xml:"key_filter,attr"`
}

type rawMapping struct {
	XMLName xml.Name          `xml:"ddsfmu"`
	In      []rawMappingElem  `xml:"fmu_in"`
	Out     []rawMappingElem  `xml:"fmu_out"`
}

// MappingPath is ddsfmu_mapping.xml's location relative to a resources
// directory (§6).
func MappingPath(resourcesDir string) string {
	return filepath.Join(resourcesDir, "config", "dds", "ddsfmu_mapping.xml")
}

// LoadMapping parses resources/config/dds/ddsfmu_mapping.xml, in
// declaration order, fmu_out elements first then fmu_in (matching §4.2's
// "outputs are processed before inputs so that reader-side value
// references match the layout computed by the Signal Distributor").
// A missing topic or type attribute is fatal (§4.5).
func LoadMapping(resourcesDir string) ([]MappingEntry, error) {
	path := MappingPath(resourcesDir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	var raw rawMapping
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	var entries []MappingEntry
	for _, e := range raw.Out {
		entry, err := toEntry(path, e, Out)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	for _, e := range raw.In {
		entry, err := toEntry(path, e, In)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func toEntry(path string, e rawMappingElem, dir Direction) (MappingEntry, error) {
	if e.Topic == "" {
		return MappingEntry{}, &ConfigError{Path: path, Err: fmt.Errorf("element missing required %q attribute", "topic")}
	}
	if e.Type == "" {
		return MappingEntry{}, &ConfigError{Path: path, Err: fmt.Errorf("element missing required %q attribute", "type")}
	}
	return MappingEntry{
		Topic:     e.Topic,
		Type:      e.Type,
		Direction: dir,
		KeyFilter: e.KeyFilter == "true",
	}, nil
}

// DDSProfilePath is dds_profile.xml's location relative to a resources
// directory (§6).
func DDSProfilePath(resourcesDir string) string {
	return filepath.Join(resourcesDir, "config", "dds", "dds_profile.xml")
}

// LoadDDSProfile reads the raw QoS profile document, byte for byte: the
// profile's contents are an opaque pass-through to the DDS middleware
// (§1's "no QoS policy design beyond pass-through of an operator-provided
// profile" non-goal), so this package never parses its schema.
func LoadDDSProfile(resourcesDir string) ([]byte, error) {
	path := DDSProfilePath(resourcesDir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return data, nil
}
