// Copyright 2020-2024 Buf Technologies, Inc.
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

package report

import (
	"fmt"
	"sync"

	"github.com/xenonlang/xnc/source"
)

// Diagnostic is one reported error or warning: a Code, a human-readable
// message, and the span it applies to.
type Diagnostic struct {
	Code     Code
	Message  string
	Span     source.Id
	Warning  bool
}

func (d Diagnostic) String() string {
	kind := "error"
	if d.Warning {
		kind = "warning"
	}
	return fmt.Sprintf("%s: %s [%s]", kind, d.Message, d.Code)
}

// Report accumulates diagnostics across a pass instead of aborting on the
// first one: every pass in this front end follows an accumulate-and-continue
// model, so callers record a Diagnostic and keep going rather than
// propagating a Go error up the call stack. Safe for concurrent use, mirroring
// the teacher's reporter.Handler.
type Report struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{}
}

// Error records an error-severity diagnostic.
func (r *Report) Error(code Code, span source.Id, format string, args ...any) {
	r.add(Diagnostic{Code: code, Message: fmt.Sprintf(format, args...), Span: span})
}

// Warn records a warning-severity diagnostic.
func (r *Report) Warn(code Code, span source.Id, format string, args ...any) {
	r.add(Diagnostic{Code: code, Message: fmt.Sprintf(format, args...), Span: span, Warning: true})
}

func (r *Report) add(d Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diags = append(r.diags, d)
}

// Diagnostics returns every diagnostic recorded so far, in report order.
func (r *Report) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}

// HasErrors reports whether any non-warning diagnostic was recorded.
func (r *Report) HasErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.diags {
		if !d.Warning {
			return true
		}
	}
	return false
}

// Len returns the total number of diagnostics recorded, warnings included.
func (r *Report) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.diags)
}

// Render produces the `E####: message (file:line:col)` text form §6.4
// prescribes for every accumulated diagnostic, in report order, resolving
// each one's Span against spans. A diagnostic whose Span is
// source.NoSpan (an internal error raised with no better position, or a
// synthetic node lowering minted outright) renders its location as
// "<no span>" rather than panicking on the lookup.
func (r *Report) Render(spans *source.Registry) []string {
	diags := r.Diagnostics()
	lines := make([]string, len(diags))
	for i, d := range diags {
		loc := "<no span>"
		if d.Span != source.NoSpan {
			loc = spans.Get(d.Span).String()
		}
		lines[i] = fmt.Sprintf("%s: %s (%s)", d.Code, d.Message, loc)
	}
	return lines
}
