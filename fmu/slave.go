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

package fmu

import (
	"fmt"

	"github.com/dnv-opensource/dds-fmu/internal/fmulog"
	"github.com/dnv-opensource/dds-fmu/mapper"
	"github.com/dnv-opensource/dds-fmu/pubsub"
)

// Slave is the FMU Slave (§4.6): the object an FMI 2.0 Co-Simulation
// entry-point shim calls into. All entry points are invoked serially by
// the simulation master (§5) -- Slave keeps no internal locking of its
// own.
type Slave struct {
	name      string
	logger    fmulog.Logger
	store     *mapper.Store
	pubsub    *pubsub.PubSub
	startTime float64
	time      float64
}

// NewSlave creates a Slave identified by name (the FMU instance name
// passed to fmi2Instantiate), publishing/subscribing over transport.
func NewSlave(name string, transport pubsub.Transport, logger fmulog.Logger) *Slave {
	return &Slave{
		name:   name,
		logger: logger,
		store:  mapper.New(logger.Zerolog()),
		pubsub: pubsub.New(transport),
	}
}

// Reset rebuilds the Data Mapper and Dynamic Pub/Sub layers from
// resourcesDir and resets internal time to 0 (§4.6).
func (s *Slave) Reset(resourcesDir string) error {
	s.time = 0
	s.startTime = 0
	if err := s.store.Reset(resourcesDir); err != nil {
		return fmt.Errorf("fmu: reset data mapper: %w", err)
	}
	if err := s.pubsub.Reset(resourcesDir, s.store, s.name, s.logger); err != nil {
		return fmt.Errorf("fmu: reset pubsub: %w", err)
	}
	return nil
}

// SetupExperiment seeds the slave's internal clock from tStart (§4.6:
// "SetupExperiment(_,_, tStart, _,_): seed time"). toleranceDefined/
// tolerance and stopTimeDefined/stopTime are accepted for ABI parity with
// fmi2SetupExperiment but are not otherwise used -- this core has no
// tolerance-controlled integrator and no enforced stop time (§1's scope).
func (s *Slave) SetupExperiment(toleranceDefined bool, tolerance float64, tStart float64, stopTimeDefined bool, stopTime float64) error {
	s.startTime = tStart
	s.time = tStart
	return nil
}

// ExitInitializationMode installs the current Parameter buffer values
// into every content-filtered reader (§4.6, §4.5's init_key_filters):
// key parameters set via Set* during initialization take effect here,
// at the initialization/step boundary.
func (s *Slave) ExitInitializationMode() error {
	if err := s.pubsub.InitKeyFilters(s.store); err != nil {
		return fmt.Errorf("fmu: exit initialization mode: %w", err)
	}
	return nil
}

// DoStep advances time by dt, then writes every input buffer and takes
// every output buffer, in that order (§4.6, §5's "within a DoStep, all
// writes complete before any takes").
func (s *Slave) DoStep(currentTime, dt float64, noSetFMUStatePriorToCurrentPoint bool) (bool, error) {
	s.time = currentTime + dt
	if err := s.pubsub.Write(s.store); err != nil {
		return false, fmt.Errorf("fmu: do step: %w", err)
	}
	if err := s.pubsub.Take(s.store); err != nil {
		return false, fmt.Errorf("fmu: do step: %w", err)
	}
	return true, nil
}

// Time returns the slave's current internal clock value.
func (s *Slave) Time() float64 { return s.time }

// SetReal, SetInteger, SetBoolean and SetString forward one value each to
// the Data Mapper's writer closures, per value reference (§4.6). GetReal,
// GetInteger, GetBoolean and GetString are the read-side counterparts.
// Out-of-range value references propagate the Data Mapper's
// [mapper.ValueRefError] (§7: "throws out-of-range; FMI master observes
// a status error").

func (s *Slave) SetReal(vr []int, value []float64) error {
	for i, r := range vr {
		if err := s.store.SetReal(r, value[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Slave) GetReal(vr []int) ([]float64, error) {
	out := make([]float64, len(vr))
	for i, r := range vr {
		v, err := s.store.GetReal(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (s *Slave) SetInteger(vr []int, value []int32) error {
	for i, r := range vr {
		if err := s.store.SetInteger(r, value[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Slave) GetInteger(vr []int) ([]int32, error) {
	out := make([]int32, len(vr))
	for i, r := range vr {
		v, err := s.store.GetInteger(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (s *Slave) SetBoolean(vr []int, value []bool) error {
	for i, r := range vr {
		if err := s.store.SetBoolean(r, value[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Slave) GetBoolean(vr []int) ([]bool, error) {
	out := make([]bool, len(vr))
	for i, r := range vr {
		v, err := s.store.GetBoolean(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (s *Slave) SetString(vr []int, value []string) error {
	for i, r := range vr {
		if err := s.store.SetString(r, value[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Slave) GetString(vr []int) ([]string, error) {
	out := make([]string, len(vr))
	for i, r := range vr {
		v, err := s.store.GetString(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
