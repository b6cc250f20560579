// Copyright 2020-2025 Buf Technologies, Inc.
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

package printer

import (
	"fmt"
	"io"
	"strings"
)

// IndentLogger renders a tree as indented, prefixed lines (box-drawing
// continuation/branch markers), grounded on the original source's
// IndentLogger (bootstrap/src/common.rs) used by its node_logger/
// code_printer. Push/Pop track nesting; SetLast marks the current depth's
// final child so its branch uses a corner instead of a tee.
type IndentLogger struct {
	w      io.Writer
	last   []bool
}

// NewIndentLogger returns a logger writing to w, at zero depth.
func NewIndentLogger(w io.Writer) *IndentLogger {
	return &IndentLogger{w: w}
}

// Logln writes one line at the current depth with the accumulated prefix.
func (l *IndentLogger) Logln(s string) {
	var b strings.Builder
	for i, isLast := range l.last {
		switch {
		case i < len(l.last)-1 && isLast:
			b.WriteString("    ")
		case i < len(l.last)-1:
			b.WriteString("|   ")
		case isLast:
			b.WriteString("+-- ")
		default:
			b.WriteString("|-- ")
		}
	}
	b.WriteString(s)
	fmt.Fprintln(l.w, b.String())
}

// Logf is Logln with fmt.Sprintf formatting.
func (l *IndentLogger) Logf(format string, args ...any) {
	l.Logln(fmt.Sprintf(format, args...))
}

// PushIndent enters one more level of nesting, not yet marked as last.
func (l *IndentLogger) PushIndent() {
	l.last = append(l.last, false)
}

// SetLastAtIndent marks the current (deepest) level as the final child,
// so its own line and its children's continuation prefixes use corners.
func (l *IndentLogger) SetLastAtIndent() {
	if len(l.last) > 0 {
		l.last[len(l.last)-1] = true
	}
}

// PopIndent leaves the current nesting level.
func (l *IndentLogger) PopIndent() {
	if len(l.last) > 0 {
		l.last = l.last[:len(l.last)-1]
	}
}

// LogIndented writes name as a branch line, then runs f one level deeper.
func (l *IndentLogger) LogIndented(name string, f func()) {
	l.Logln(name)
	l.PushIndent()
	f()
	l.PopIndent()
}

// LogSliceIndented writes name as a branch line, then logs each element of
// slice one level deeper via f(i), marking the last element as such.
func LogSliceIndented[T any](l *IndentLogger, name string, slice []T, f func(i int, elem T)) {
	if len(slice) == 0 {
		return
	}
	l.LogIndented(name, func() {
		last := len(slice) - 1
		for i, elem := range slice {
			if i == last {
				l.SetLastAtIndent()
			}
			f(i, elem)
		}
	})
}
