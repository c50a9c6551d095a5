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

package signal

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dnv-opensource/dds-fmu/idl"
)

// Cardinality is the role a topic plays for a given structured type: an
// FMU input, an FMU output, or a key-match parameter derived from an
// output's @key leaves.
type Cardinality uint8

const (
	Output Cardinality = iota
	Input
	Parameter
)

// prefix returns the fmi_name prefix §3 assigns to each cardinality:
// "sub" for an output (fed by a DDS subscriber), "pub" for an input (fed
// to a DDS publisher), "key.sub" for a parameter (a key value read back
// from a subscribed, key-filtered topic).
func (c Cardinality) prefix() string {
	switch c {
	case Output:
		return "sub"
	case Input:
		return "pub"
	case Parameter:
		return "key.sub"
	default:
		return "?"
	}
}

// causality is the modelDescription.xml causality string for this
// cardinality.
func (c Cardinality) causality() string {
	switch c {
	case Output:
		return "output"
	case Input:
		return "input"
	case Parameter:
		return "parameter"
	default:
		return "?"
	}
}

func (c Cardinality) String() string { return c.causality() }

// Record is one row of the Signal Table: a stable, per-kind dense value
// reference bound to a structured name, a causality, and an FMI scalar
// kind.
type Record struct {
	ValueRef   int
	FMIName    string
	Causality  string
	FMIKind    idl.FMIKind
	Cardinality Cardinality
	Topic      string
}

// pendingKey is a (topic, type) pair whose @key leaves are queued for
// parameter enumeration until after every output and input has been
// processed.
type pendingKey struct {
	topic    string
	typeName string
}

// Distributor is the Signal Distributor (§4.1): it owns the parsed IDL
// registry, the running signal table, and the per-kind dense value
// reference counters.
type Distributor struct {
	reg *idl.Registry
	log zerolog.Logger

	mapping []Record
	outputs int

	nextVR map[idl.FMIKind]int

	pending []pendingKey

	seenTopics map[string]bool
}

// New creates an empty Distributor. log receives one Warn-level entry per
// skipped unsupported-kind leaf (§4.1's "logged and skipped" failure
// mode).
func New(log zerolog.Logger) *Distributor {
	return &Distributor{
		nextVR:     make(map[idl.FMIKind]int),
		seenTopics: make(map[string]bool),
		log:        log,
	}
}

// LoadIDLs parses resources/config/idl/dds-fmu.idl and everything it
// transitively includes, per §4.1.
func (d *Distributor) LoadIDLs(resourcesDir string) error {
	reg, err := idl.Load(resourcesDir)
	if err != nil {
		return fmt.Errorf("signal: load idls: %w", err)
	}
	d.reg = reg
	return nil
}

// HasStructure reports whether name is a declared structured type.
func (d *Distributor) HasStructure(name string) bool {
	if d.reg == nil {
		return false
	}
	return d.reg.HasStructure(name)
}

// Add walks typeName depth-first and appends one Record per eligible
// leaf, per §4.1's rule: a node contributes a signal iff it is a
// primitive, enumeration, or string kind; for Parameter, additionally
// only if the originating member (or an ancestor member) is @key.
// Duplicate topics are fatal (§7's "duplicated registrations ... fatal
// for topic").
func (d *Distributor) Add(topic, typeName string, cardinality Cardinality) error {
	if d.seenTopics[topicKey(topic, cardinality)] {
		return fmt.Errorf("signal: topic %q already registered for cardinality %v", topic, cardinality)
	}
	d.seenTopics[topicKey(topic, cardinality)] = true

	t, ok := d.reg.Lookup(typeName)
	if !ok {
		return fmt.Errorf("signal: unknown type %q for topic %q", typeName, topic)
	}

	err := idl.WalkLeaves(t, func(path idl.Path, member *idl.Member, leaf *idl.Type, isKey bool) error {
		if cardinality == Parameter && !isKey {
			return nil
		}
		fmiKind, ok := idl.ResolveFMIKind(leaf.Kind)
		if !ok {
			return nil
		}
		vr := d.nextVR[fmiKind]
		d.nextVR[fmiKind] = vr + 1
		d.mapping = append(d.mapping, Record{
			ValueRef:    vr,
			FMIName:     fmt.Sprintf("%s.%s.%s", cardinality.prefix(), topic, path.String()),
			Causality:   cardinality.causality(),
			FMIKind:     fmiKind,
			Cardinality: cardinality,
			Topic:       topic,
		})
		if cardinality == Output {
			d.outputs++
		}
		return nil
	}, func(path idl.Path, kind idl.Kind) {
		d.log.Warn().Str("topic", topic).Str("path", path.String()).Str("kind", kind.String()).
			Msg("signal: skipping unsupported type kind")
	})
	if err != nil {
		return fmt.Errorf("signal: walk %q for topic %q: %w", typeName, topic, err)
	}
	return nil
}

// QueueForKeyParameter defers a (topic, type)'s @key leaves to be
// enumerated as Parameter entries once ProcessKeyQueue is called, so
// parameter value references land after every live output and input
// signal (§4.1).
func (d *Distributor) QueueForKeyParameter(topic, typeName string) {
	d.pending = append(d.pending, pendingKey{topic: topic, typeName: typeName})
}

// ProcessKeyQueue materializes every queued key-parameter entry, in the
// order they were queued. Call this only after every Output and Input
// topic has been added.
func (d *Distributor) ProcessKeyQueue() error {
	pending := d.pending
	d.pending = nil
	for _, p := range pending {
		if err := d.Add(p.topic, p.typeName, Parameter); err != nil {
			return err
		}
	}
	return nil
}

// GetMapping returns the signal table built so far: outputs first, then
// inputs, then parameters (guaranteed by call order, not re-sorted here),
// within each group in topic-declaration order and depth-first leaf
// order.
func (d *Distributor) GetMapping() []Record {
	out := make([]Record, len(d.mapping))
	copy(out, d.mapping)
	return out
}

// Outputs returns the number of OUTPUT-cardinality signals emitted so
// far, i.e. the bound used by ModelStructure/Outputs/Unknown/index.
func (d *Distributor) Outputs() int { return d.outputs }

func topicKey(topic string, c Cardinality) string {
	return fmt.Sprintf("%s\x00%d", topic, c)
}
