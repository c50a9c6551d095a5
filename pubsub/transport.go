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
	"github.com/dnv-opensource/dds-fmu/idl"
	"github.com/dnv-opensource/dds-fmu/keyfilter"
	"github.com/dnv-opensource/dds-fmu/xtypes"
)

// Writer is a DDS data writer bound to one topic/type (§4.5's
// create a data writer from profile). Write enqueues sample to the
// middleware and returns without blocking (§5: "pubsub.write() enqueues
// to middleware and returns").
type Writer interface {
	Write(sample *xtypes.Data) error
}

// Reader is a DDS data reader bound to one topic/type. TakeNextSample
// pops the oldest buffered, not-yet-taken sample; ok is false once the
// middleware has no more data buffered -- never a blocking wait (§5).
type Reader interface {
	GUID() string
	TakeNextSample() (sample *xtypes.Data, ok bool, err error)
}

// FilteredReader is a Reader created against a ContentFilteredTopic. Its
// predicate is reconfigured after initialization, once FMI Set* calls
// during the initialization phase have populated the Parameter buffer
// the key filter reads from (§4.5 init_key_filters, called from FMI
// ExitInitializationMode).
type FilteredReader interface {
	Reader
	SetExpressionParameters(params []string) error
}

// Transport is the assumed external DDS/RTPS middleware API surface
// (§1, §4.5): the set of operations Dynamic Pub/Sub needs from a
// participant/publisher/subscriber without depending on which concrete
// DDS implementation backs it.
type Transport interface {
	// CreateWriter builds a data writer for topic/typ from the loaded
	// DDS profile, falling back to default QoS (§4.5 step 6).
	CreateWriter(topic string, typ *idl.Type) (Writer, error)

	// CreateReader builds a data reader subscribed directly to
	// topic/typ, with no content filter.
	CreateReader(topic string, typ *idl.Type) (Reader, error)

	// CreateFilteredReader builds a data reader subscribed through a
	// ContentFilteredTopic of class [keyfilter.ClassName] (§4.5 step 6,
	// §4.4): filter.Evaluate, keyed by the reader's own GUID, is
	// consulted for every candidate sample before it is ever handed back
	// from TakeNextSample.
	CreateFilteredReader(topic string, typ *idl.Type, filter *keyfilter.Filter) (FilteredReader, error)
}
