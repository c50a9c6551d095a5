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

package pubsub

import (
	"fmt"

	"github.com/dnv-opensource/dds-fmu/config"
	"github.com/dnv-opensource/dds-fmu/idl"
	"github.com/dnv-opensource/dds-fmu/internal/fmulog"
	"github.com/dnv-opensource/dds-fmu/keyfilter"
	"github.com/dnv-opensource/dds-fmu/mapper"
	"github.com/dnv-opensource/dds-fmu/xtypes"
)

// profileName is the only DDS profile name Reset ever looks up (§4.5
// step 4).
const profileName = "dds-fmu-default"

// PubSub is the Dynamic Pub/Sub layer (§4.5). It owns no middleware
// entities directly -- those live behind [Transport] -- but it owns the
// mapping from topic name to writer/reader, the key filter all
// content-filtered readers share, and the bookkeeping InitKeyFilters
// needs to recompute expression parameters from the Data Mapper's
// Parameter buffers.
type PubSub struct {
	transport Transport
	filter    *keyfilter.Filter
	logger    fmulog.Logger
	hasLogger bool

	profileLoaded bool

	writers  map[string]Writer
	readers  map[string]Reader
	filtered map[string]FilteredReader
	types    map[string]*idl.Type
}

// New creates a PubSub bound to transport, the assumed external DDS API
// surface (§1, §4.5).
func New(transport Transport) *PubSub {
	return &PubSub{
		transport: transport,
		filter:    keyfilter.New(),
	}
}

// Reset tears down any previously built topology and rebuilds it from
// the mapping and DDS profile under resourcesDir, wiring every endpoint
// to store's buffers (§4.5).
func (p *PubSub) Reset(resourcesDir string, store *mapper.Store, name string, logger fmulog.Logger) error {
	p.Clear()
	p.logger = logger
	p.hasLogger = true

	if !p.profileLoaded {
		if _, err := config.LoadDDSProfile(resourcesDir); err != nil {
			return fmt.Errorf("pubsub: load dds profile: %w", err)
		}
		p.profileLoaded = true
	}
	p.log(fmulog.OK, fmt.Sprintf("pubsub: participant %q created from profile %q", name, profileName))

	entries, err := config.LoadMapping(resourcesDir)
	if err != nil {
		return fmt.Errorf("pubsub: load mapping: %w", err)
	}

	for _, e := range entries {
		t, ok := store.Registry().Lookup(e.Type)
		if !ok {
			return fmt.Errorf("pubsub: unknown type %q for topic %q", e.Type, e.Topic)
		}
		p.types[e.Topic] = t

		switch e.Direction {
		case config.Out:
			if err := p.addSubscriber(e, t, store); err != nil {
				return err
			}
		case config.In:
			w, err := p.transport.CreateWriter(e.Topic, t)
			if err != nil {
				return fmt.Errorf("pubsub: create writer for topic %q: %w", e.Topic, err)
			}
			p.writers[e.Topic] = w
		}
	}
	return nil
}

func (p *PubSub) addSubscriber(e config.MappingEntry, t *idl.Type, store *mapper.Store) error {
	filtered := false
	if e.KeyFilter {
		if _, ok := store.DataRef(e.Topic, mapper.Parameter); ok {
			paths, _, err := idl.KeyLeaves(t)
			if err != nil {
				return fmt.Errorf("pubsub: enumerate key leaves for topic %q: %w", e.Topic, err)
			}
			filtered = len(paths) > 0
		}
	}
	if filtered {
		r, err := p.transport.CreateFilteredReader(e.Topic, t, p.filter)
		if err != nil {
			return fmt.Errorf("pubsub: create filtered reader for topic %q: %w", e.Topic, err)
		}
		p.filtered[e.Topic] = r
		p.readers[e.Topic] = r
		return nil
	}
	r, err := p.transport.CreateReader(e.Topic, t)
	if err != nil {
		return fmt.Errorf("pubsub: create reader for topic %q: %w", e.Topic, err)
	}
	p.readers[e.Topic] = r
	return nil
}

// Clear tears down the current topology. It is safe to call on a
// never-built instance (§9's "clear is safe to call on a never-built
// instance"); Reset always calls it first.
func (p *PubSub) Clear() {
	p.writers = make(map[string]Writer)
	p.readers = make(map[string]Reader)
	p.filtered = make(map[string]FilteredReader)
	p.types = make(map[string]*idl.Type)
}

// Write converts every Write-side structured buffer to its wire form and
// hands it to the matching writer (§4.5's write()).
func (p *PubSub) Write(store *mapper.Store) error {
	for topic, w := range p.writers {
		buf, ok := store.DataRef(topic, mapper.Write)
		if !ok {
			continue
		}
		if err := w.Write(buf); err != nil {
			return fmt.Errorf("pubsub: write topic %q: %w", topic, err)
		}
	}
	return nil
}

// Take drains every reader's currently buffered samples into the
// matching Read-side structured buffer (§4.5's take(): "loop calling
// take_next_sample until the middleware returns no-more-data").
func (p *PubSub) Take(store *mapper.Store) error {
	for topic, r := range p.readers {
		dst, ok := store.DataRef(topic, mapper.Read)
		if !ok {
			continue
		}
		for {
			sample, ok, err := r.TakeNextSample()
			if err != nil {
				return fmt.Errorf("pubsub: take topic %q: %w", topic, err)
			}
			if !ok {
				break
			}
			if err := xtypes.CopyInto(sample, dst); err != nil {
				return fmt.Errorf("pubsub: take topic %q: %w", topic, err)
			}
		}
	}
	return nil
}

// InitKeyFilters composes and installs each filtered reader's expression
// parameters from its Parameter buffer's current @key leaf values
// (§4.5): called from FMI ExitInitializationMode so that key parameters
// set via Set* during initialization take effect before any sample is
// evaluated.
func (p *PubSub) InitKeyFilters(store *mapper.Store) error {
	for topic, r := range p.filtered {
		buf, ok := store.DataRef(topic, mapper.Parameter)
		if !ok {
			continue
		}
		params := []string{r.GUID()}
		err := xtypes.Walk(buf, func(_ idl.Path, leaf *xtypes.Data) error {
			if !leaf.IsKey() {
				return nil
			}
			s, err := leaf.FormatCanonical()
			if err != nil {
				return err
			}
			params = append(params, s)
			return nil
		})
		if err != nil {
			return fmt.Errorf("pubsub: format key parameters for topic %q: %w", topic, err)
		}
		if err := p.filter.AddType(r.GUID(), p.types[topic], params); err != nil {
			return fmt.Errorf("pubsub: register key filter for topic %q: %w", topic, err)
		}
		if err := r.SetExpressionParameters(params); err != nil {
			return fmt.Errorf("pubsub: set expression parameters for topic %q: %w", topic, err)
		}
	}
	return nil
}

func (p *PubSub) log(status fmulog.Status, msg string) {
	if p.hasLogger {
		p.logger.Log("pubsub", status, msg)
	}
}
