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

package pubsub_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnv-opensource/dds-fmu/internal/fmulog"
	"github.com/dnv-opensource/dds-fmu/mapper"
	"github.com/dnv-opensource/dds-fmu/pubsub"
	"github.com/dnv-opensource/dds-fmu/xtypes"
)

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func roundtripFixture(t *testing.T) string {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "config", "idl", "dds-fmu.idl"), `
struct Roundtrip {
  double val;
};
`)
	mustWrite(t, filepath.Join(root, "config", "dds", "ddsfmu_mapping.xml"), `
<ddsfmu>
  <fmu_in topic="rt" type="Roundtrip"/>
  <fmu_out topic="rt" type="Roundtrip"/>
</ddsfmu>
`)
	mustWrite(t, filepath.Join(root, "config", "dds", "dds_profile.xml"), `<dds/>`)
	return root
}

func newLogger() fmulog.Logger { return fmulog.New(zerolog.Nop()) }

// TestRoundtripDouble is §8 scenario 1: set on the write side, write,
// take, and the read side observes the same value; setting twice before
// a single Take yields take-latest semantics.
func TestRoundtripDouble(t *testing.T) {
	root := roundtripFixture(t)

	store := mapper.New(zerolog.Nop())
	require.NoError(t, store.Reset(root))

	ps := pubsub.New(pubsub.NewInProcessTransport())
	require.NoError(t, ps.Reset(root, store, "inst", newLogger()))

	require.NoError(t, store.SetReal(1, 3.14))
	require.NoError(t, ps.Write(store))
	require.NoError(t, ps.Take(store))

	got, err := store.GetReal(0)
	require.NoError(t, err)
	assert.Equal(t, 3.14, got)

	require.NoError(t, store.SetReal(1, 1.8))
	require.NoError(t, ps.Write(store))
	require.NoError(t, store.SetReal(1, 0.9))
	require.NoError(t, ps.Write(store))
	require.NoError(t, ps.Take(store))

	got, err = store.GetReal(0)
	require.NoError(t, err)
	assert.Equal(t, 0.9, got, "take-latest: the most recent write before a single Take wins")
}

func keyFilterFixture(t *testing.T) string {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "config", "idl", "dds-fmu.idl"), `
enum Side { ALPHA, BETA };
struct Reading {
  @key Side side;
  double value;
};
`)
	mustWrite(t, filepath.Join(root, "config", "dds", "ddsfmu_mapping.xml"), `
<ddsfmu>
  <fmu_out topic="reading" type="Reading" key_filter="true"/>
</ddsfmu>
`)
	mustWrite(t, filepath.Join(root, "config", "dds", "dds_profile.xml"), `<dds/>`)
	return root
}

// TestKeyFilterAdmitsOnlyMatchingSamples is §8 scenario 5: a subscriber
// configured with parameter "1" (BETA) receives only BETA samples, in
// order, once InitKeyFilters has installed that parameter.
func TestKeyFilterAdmitsOnlyMatchingSamples(t *testing.T) {
	root := keyFilterFixture(t)

	store := mapper.New(zerolog.Nop())
	require.NoError(t, store.Reset(root))

	transport := pubsub.NewInProcessTransport()
	ps := pubsub.New(transport)
	require.NoError(t, ps.Reset(root, store, "inst", newLogger()))

	// Integer vr 0 is the Read-side "side" leaf; vr 1 is the Parameter
	// copy the key filter reads its match value from (§4.2: Read buffer
	// added before the queued Parameter buffer).
	require.NoError(t, store.SetInteger(1, 1)) // side parameter = BETA
	require.NoError(t, ps.InitKeyFilters(store))

	// Publish directly on the transport the way a peer FMU/process would:
	// alternating ALPHA/BETA samples on the same topic and type.
	typ, ok := store.Registry().Lookup("Reading")
	require.True(t, ok)
	w, err := transport.CreateWriter("reading", typ)
	require.NoError(t, err)

	sides := []uint32{0, 1, 0, 1, 1} // ALPHA, BETA, ALPHA, BETA, BETA
	for i, side := range sides {
		s := xtypes.New(typ)
		sideLeaf, _ := s.Field("side")
		sideLeaf.SetEnum(side)
		valueLeaf, _ := s.Field("value")
		valueLeaf.SetFloat64(float64(i))
		require.NoError(t, w.Write(s))
	}

	require.NoError(t, ps.Take(store))

	dst, ok := store.DataRef("reading", mapper.Read)
	require.True(t, ok)
	sideLeaf, _ := dst.Field("side")
	assert.Equal(t, uint32(1), sideLeaf.GetEnum())
	valueLeaf, _ := dst.Field("value")
	assert.Equal(t, float64(4), valueLeaf.GetFloat64(), "take-latest among matching samples")
}
