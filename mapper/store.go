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
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dnv-opensource/dds-fmu/config"
	"github.com/dnv-opensource/dds-fmu/idl"
	"github.com/dnv-opensource/dds-fmu/xtypes"
)

// Direction is the Store Key's second component (§3): which way a
// (topic, direction) buffer flows relative to the FMU.
type Direction uint8

const (
	// Read buffers hold the last DDS-decoded sample for an FMU output.
	Read Direction = iota
	// Write buffers hold the next sample to publish for an FMU input.
	Write
	// Parameter buffers hold the key-match values a content filter uses,
	// readable and writable as FMI parameters.
	Parameter
)

func (d Direction) String() string {
	switch d {
	case Read:
		return "read"
	case Write:
		return "write"
	case Parameter:
		return "parameter"
	default:
		return "?"
	}
}

// ValueRefError reports an out-of-range FMI value reference (§7: "FMI
// value-reference out of range: throws out-of-range").
type ValueRefError struct {
	Kind     idl.FMIKind
	ValueRef int
	Len      int
}

func (e *ValueRefError) Error() string {
	return fmt.Sprintf("mapper: value reference %d out of range for kind %v (have %d)", e.ValueRef, e.Kind, e.Len)
}

// DuplicateTopicError reports a (topic, direction) pair registered twice
// in the same Store (§7: "duplicated registrations ... fatal for topic").
type DuplicateTopicError struct {
	Topic     string
	Direction Direction
}

func (e *DuplicateTopicError) Error() string {
	return fmt.Sprintf("mapper: topic %q already registered for direction %v", e.Topic, e.Direction)
}

type storeKey struct {
	topic     string
	direction Direction
}

// IndexOffsets records, per kind, the accessor-vector length at the
// moment a (topic, direction) buffer was added -- the first index that
// buffer's leaves occupy in each kind's dense accessor vectors.
type IndexOffsets struct {
	Real, Integer, Boolean, String int
}

// pendingParam mirrors signal.Distributor's key-parameter queue: a
// key-filtered output's @key leaves are deferred until every Read and
// Write buffer has been added, so parameter value references land after
// every live signal and stay aligned with the Signal Distributor's own
// ordering (§4.2).
type pendingParam struct {
	topic    string
	typeName string
}

// Store is the Data Mapper (§4.2): it owns one [xtypes.Data] buffer per
// (topic, direction) pair and four parallel, kind-indexed vectors of
// reader/writer closures, each entry bound to a single leaf of some
// buffer. Indices into each kind's vectors are the FMI value references
// the FMU slave's Get<Kind>/Set<Kind> entry points use.
type Store struct {
	reg *idl.Registry
	log zerolog.Logger

	buffers map[storeKey]*xtypes.Data
	offsets map[storeKey]IndexOffsets

	realGet []func() float64
	realSet []func(float64)

	intGet []func() int32
	intSet []func(int32)

	boolGet []func() bool
	boolSet []func(bool)

	strGet []func() string
	strSet []func(string)

	pending []pendingParam
}

// New creates an empty Store. log receives one Warn-level entry per
// skipped unsupported-kind leaf, the same diagnostic the Signal
// Distributor emits for the same condition.
func New(log zerolog.Logger) *Store {
	return &Store{
		log:     log,
		buffers: make(map[storeKey]*xtypes.Data),
		offsets: make(map[storeKey]IndexOffsets),
	}
}

// Registry returns the IDL registry this Store loaded at the last Reset,
// so Dynamic Pub/Sub and the key filter can resolve type names without
// re-parsing.
func (s *Store) Registry() *idl.Registry { return s.reg }

// Reset clears all prior state, loads resources/config/idl/dds-fmu.idl
// and resources/config/dds/ddsfmu_mapping.xml, and rebuilds every buffer
// and accessor in the order §4.2 requires: every <fmu_out> (Read) first,
// every <fmu_in> (Write) second, then every queued key-filtered output's
// @key leaves (Parameter) last.
func (s *Store) Reset(resourcesDir string) error {
	s.reg = nil
	s.buffers = make(map[storeKey]*xtypes.Data)
	s.offsets = make(map[storeKey]IndexOffsets)
	s.realGet, s.realSet = nil, nil
	s.intGet, s.intSet = nil, nil
	s.boolGet, s.boolSet = nil, nil
	s.strGet, s.strSet = nil, nil
	s.pending = nil

	reg, err := idl.Load(resourcesDir)
	if err != nil {
		return fmt.Errorf("mapper: load idls: %w", err)
	}
	s.reg = reg

	entries, err := config.LoadMapping(resourcesDir)
	if err != nil {
		return fmt.Errorf("mapper: load mapping: %w", err)
	}

	for _, e := range entries {
		if e.Direction != config.Out {
			continue
		}
		if err := s.Add(e.Topic, e.Type, Read); err != nil {
			return err
		}
		if e.KeyFilter {
			s.queueForKeyParameter(e.Topic, e.Type)
		}
	}
	for _, e := range entries {
		if e.Direction != config.In {
			continue
		}
		if err := s.Add(e.Topic, e.Type, Write); err != nil {
			return err
		}
	}
	return s.processKeyQueue()
}

func (s *Store) queueForKeyParameter(topic, typeName string) {
	s.pending = append(s.pending, pendingParam{topic: topic, typeName: typeName})
}

func (s *Store) processKeyQueue() error {
	pending := s.pending
	s.pending = nil
	for _, p := range pending {
		if err := s.Add(p.topic, p.typeName, Parameter); err != nil {
			return err
		}
	}
	return nil
}

// Add inserts a new (topic, direction) buffer and appends its leaves'
// accessor closures to the dense per-kind vectors (§4.2). A duplicate
// (topic, direction) pair is fatal. For Parameter, only @key leaves gain
// accessors -- the buffer itself still carries every field so the whole
// sample can be reconstructed, but non-key leaves have no FMI exposure.
func (s *Store) Add(topic, typeName string, direction Direction) error {
	key := storeKey{topic: topic, direction: direction}
	if _, exists := s.buffers[key]; exists {
		return &DuplicateTopicError{Topic: topic, Direction: direction}
	}

	t, ok := s.reg.Lookup(typeName)
	if !ok {
		return fmt.Errorf("mapper: unknown type %q for topic %q", typeName, topic)
	}

	buf := xtypes.New(t)
	s.buffers[key] = buf
	s.offsets[key] = IndexOffsets{
		Real:    len(s.realGet),
		Integer: len(s.intGet),
		Boolean: len(s.boolGet),
		String:  len(s.strGet),
	}

	return xtypes.Walk(buf, func(path idl.Path, leaf *xtypes.Data) error {
		if direction == Parameter && !leaf.IsKey() {
			return nil
		}
		fmiKind, ok := idl.ResolveFMIKind(leaf.Kind())
		if !ok {
			s.log.Warn().Str("topic", topic).Str("path", path.String()).Str("kind", leaf.Kind().String()).
				Msg("mapper: skipping unsupported type kind")
			return nil
		}
		s.appendClosures(fmiKind, leaf)
		return nil
	})
}

func (s *Store) appendClosures(kind idl.FMIKind, leaf *xtypes.Data) {
	switch kind {
	case idl.FMIReal:
		get, set := realClosures(leaf)
		s.realGet = append(s.realGet, get)
		s.realSet = append(s.realSet, set)
	case idl.FMIInteger:
		get, set := intClosures(leaf)
		s.intGet = append(s.intGet, get)
		s.intSet = append(s.intSet, set)
	case idl.FMIBoolean:
		get, set := boolClosures(leaf)
		s.boolGet = append(s.boolGet, get)
		s.boolSet = append(s.boolSet, set)
	case idl.FMIString:
		get, set := stringClosures(leaf)
		s.strGet = append(s.strGet, get)
		s.strSet = append(s.strSet, set)
	}
}

// DataRef returns direct access to a (topic, direction) buffer, used by
// Dynamic Pub/Sub (to drive write/take) and the key filter (to read the
// Parameter buffer's current key values).
func (s *Store) DataRef(topic string, direction Direction) (*xtypes.Data, bool) {
	d, ok := s.buffers[storeKey{topic: topic, direction: direction}]
	return d, ok
}

// SetReal, SetInteger, SetBoolean and SetString write one leaf through
// its writer closure. GetReal, GetInteger, GetBoolean and GetString read
// one leaf through its reader closure. An out-of-range value reference
// is fatal (§4.2, §7).

func (s *Store) SetReal(vr int, v float64) error {
	if vr < 0 || vr >= len(s.realSet) {
		return &ValueRefError{Kind: idl.FMIReal, ValueRef: vr, Len: len(s.realSet)}
	}
	s.realSet[vr](v)
	return nil
}

func (s *Store) GetReal(vr int) (float64, error) {
	if vr < 0 || vr >= len(s.realGet) {
		return 0, &ValueRefError{Kind: idl.FMIReal, ValueRef: vr, Len: len(s.realGet)}
	}
	return s.realGet[vr](), nil
}

func (s *Store) SetInteger(vr int, v int32) error {
	if vr < 0 || vr >= len(s.intSet) {
		return &ValueRefError{Kind: idl.FMIInteger, ValueRef: vr, Len: len(s.intSet)}
	}
	s.intSet[vr](v)
	return nil
}

func (s *Store) GetInteger(vr int) (int32, error) {
	if vr < 0 || vr >= len(s.intGet) {
		return 0, &ValueRefError{Kind: idl.FMIInteger, ValueRef: vr, Len: len(s.intGet)}
	}
	return s.intGet[vr](), nil
}

func (s *Store) SetBoolean(vr int, v bool) error {
	if vr < 0 || vr >= len(s.boolSet) {
		return &ValueRefError{Kind: idl.FMIBoolean, ValueRef: vr, Len: len(s.boolSet)}
	}
	s.boolSet[vr](v)
	return nil
}

func (s *Store) GetBoolean(vr int) (bool, error) {
	if vr < 0 || vr >= len(s.boolGet) {
		return false, &ValueRefError{Kind: idl.FMIBoolean, ValueRef: vr, Len: len(s.boolGet)}
	}
	return s.boolGet[vr](), nil
}

func (s *Store) SetString(vr int, v string) error {
	if vr < 0 || vr >= len(s.strSet) {
		return &ValueRefError{Kind: idl.FMIString, ValueRef: vr, Len: len(s.strSet)}
	}
	s.strSet[vr](v)
	return nil
}

func (s *Store) GetString(vr int) (string, error) {
	if vr < 0 || vr >= len(s.strGet) {
		return "", &ValueRefError{Kind: idl.FMIString, ValueRef: vr, Len: len(s.strGet)}
	}
	return s.strGet[vr](), nil
}
