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
	"github.com/google/uuid"

	"github.com/dnv-opensource/dds-fmu/idl"
	"github.com/dnv-opensource/dds-fmu/keyfilter"
	"github.com/dnv-opensource/dds-fmu/xtypes"
)

// InProcessTransport is a dependency-free [Transport]: writers and
// readers of the same topic name exchange samples through an in-memory
// FIFO queue per reader. It exists because no DDS/RTPS client library
// appears anywhere in the retrieval pack (see DESIGN.md) -- a real
// deployment supplies its own [Transport] backed by whichever DDS vendor
// library it chooses; this one is what this package's own tests (and any
// all-Go-process topology) use instead.
type InProcessTransport struct {
	topics map[string]*inprocTopic
}

// NewInProcessTransport creates an empty transport.
func NewInProcessTransport() *InProcessTransport {
	return &InProcessTransport{topics: make(map[string]*inprocTopic)}
}

type inprocTopic struct {
	typ  *idl.Type
	subs []*inprocReader
}

func (t *InProcessTransport) topicFor(name string, typ *idl.Type) *inprocTopic {
	top, ok := t.topics[name]
	if !ok {
		top = &inprocTopic{typ: typ}
		t.topics[name] = top
	}
	return top
}

type inprocWriter struct {
	topic *inprocTopic
}

// Write delivers sample to every current subscriber of the topic,
// cloning it per-subscriber (§4.3's round-trip property requires each
// reader see an independent copy, not a shared pointer into the writer's
// own buffer). A filtered subscriber that rejects the sample simply never
// receives it -- matching a real ContentFilteredTopic's server-side drop.
func (w *inprocWriter) Write(sample *xtypes.Data) error {
	for _, sub := range w.topic.subs {
		if sub.filter != nil && !sub.filter.Evaluate(sub.guid, sample) {
			continue
		}
		sub.queue = append(sub.queue, xtypes.Clone(sample))
	}
	return nil
}

type inprocReader struct {
	guid   string
	filter *keyfilter.Filter // nil for an unfiltered reader
	queue  []*xtypes.Data
}

func (r *inprocReader) GUID() string { return r.guid }

// TakeNextSample pops the oldest buffered sample; a bounded backlog, not
// a blocking wait, matching §5's suspension-point rule.
func (r *inprocReader) TakeNextSample() (*xtypes.Data, bool, error) {
	if len(r.queue) == 0 {
		return nil, false, nil
	}
	s := r.queue[0]
	r.queue = r.queue[1:]
	return s, true, nil
}

// SetExpressionParameters is a no-op here: this reader's admission
// predicate reads live off r.filter, which Dynamic Pub/Sub updates
// directly via filter.AddType; a real middleware transport would instead
// push params down to its own ContentFilteredTopic here.
func (r *inprocReader) SetExpressionParameters(params []string) error { return nil }

// CreateWriter implements [Transport].
func (t *InProcessTransport) CreateWriter(topic string, typ *idl.Type) (Writer, error) {
	return &inprocWriter{topic: t.topicFor(topic, typ)}, nil
}

// CreateReader implements [Transport].
func (t *InProcessTransport) CreateReader(topic string, typ *idl.Type) (Reader, error) {
	top := t.topicFor(topic, typ)
	r := &inprocReader{guid: uuid.NewString()}
	top.subs = append(top.subs, r)
	return r, nil
}

// CreateFilteredReader implements [Transport].
func (t *InProcessTransport) CreateFilteredReader(topic string, typ *idl.Type, filter *keyfilter.Filter) (FilteredReader, error) {
	top := t.topicFor(topic, typ)
	r := &inprocReader{guid: uuid.NewString(), filter: filter}
	top.subs = append(top.subs, r)
	return r, nil
}
