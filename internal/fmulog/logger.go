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

package fmulog

import "github.com/rs/zerolog"

// Status mirrors the handful of severities the FMI 2.0 host logger
// callback and the DDS wire-log consumer both speak.
type Status uint8

const (
	OK Status = iota
	Warning
	Error
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Logger wraps a zerolog.Logger and exposes it through the shape both the
// FMI host callback and the DDS wire-log consumer need: a category name,
// a severity, and a message.
type Logger struct {
	zl zerolog.Logger
}

// New wraps an existing zerolog.Logger.
func New(zl zerolog.Logger) Logger { return Logger{zl: zl} }

// Log records one entry under category, mapping status the way §7 and
// §4.5 require: wire-log Info/Warning/Error verbosity maps to
// OK/Warning/Warning for the FMI side; internally this records the
// severity as given so callers that already distinguish Warning/Error
// keep that distinction in the log stream.
func (l Logger) Log(category string, status Status, message string) {
	ev := l.zl.Info()
	switch status {
	case Warning:
		ev = l.zl.Warn()
	case Error:
		ev = l.zl.Error()
	}
	ev.Str("category", category).Msg(message)
}

// Zerolog returns the underlying zerolog.Logger, for code that wants
// structured fields beyond category/status/message (fmu passes it to
// mapper.New).
func (l Logger) Zerolog() zerolog.Logger { return l.zl }

// WireLogVerbosity is the DDS middleware's own log verbosity enum, as
// translated by [FromWireVerbosity].
type WireLogVerbosity uint8

const (
	WireInfo WireLogVerbosity = iota
	WireWarning
	WireError
)

// FromWireVerbosity maps a middleware wire-log verbosity to the FMI
// Status it is forwarded as (§7: "Info/Warning/Error mapped to
// OK/Warning/Warning").
func FromWireVerbosity(v WireLogVerbosity) Status {
	switch v {
	case WireInfo:
		return OK
	case WireWarning, WireError:
		return Warning
	default:
		return Warning
	}
}
