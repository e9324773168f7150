// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package chrometrace renders a spantrace.Snapshot as Chrome Trace Event
// Format JSON (chrome://tracing, and Perfetto's legacy JSON importer).
//
// Unlike the writer this package is modeled on, strings are escaped via
// encoding/json rather than written verbatim: the upstream writer left
// this as a known TODO, which this package resolves rather than carries
// forward.
package chrometrace

import (
	"encoding/json"
	"fmt"
	"io"

	"code.emberlane.com/spantrace"
)

// Writer renders snapshots as Chrome Trace Event Format JSON to an
// underlying io.Writer.
type Writer struct {
	out io.Writer
}

// NewWriter creates a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: w}
}

// errWriter accumulates the first write error across many Fprintf calls,
// so WriteSnapshot's body can read as a straight-line sequence of writes
// instead of checking err after each one.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// WriteSnapshot writes snap as a single Chrome Trace Event Format JSON
// document: one "M" (metadata) event per named thread, followed by one
// "B" or "E" event per sample, in snapshot order.
func (w *Writer) WriteSnapshot(snap *spantrace.Snapshot) error {
	ew := &errWriter{w: w.out}

	ew.printf(`{"traceEvents": [`)
	comma := ""
	for _, tid := range snap.ThreadIDs() {
		name, ok := snap.ThreadName(tid)
		if !ok {
			continue
		}
		ew.printf(`%s{"ph": "M", "pid": 0, "tid": %d, "name": "thread_name", "args": {"name": %s}}`,
			comma, tid, jsonString(name))
		comma = ","
	}
	for i := 0; i < snap.Size(); i++ {
		writeSample(ew, snap.At(i), comma)
		comma = ","
	}
	ew.printf("]}")
	return ew.err
}

func writeSample(ew *errWriter, s spantrace.SampleView, comma string) {
	ph := "B"
	if s.Kind() == spantrace.KindExit {
		ph = "E"
	}
	ts := int64(s.Timestamp())
	ew.printf(`%s{"ph": "%s", "cat": %s, "name": %s, "tid": %d, "ts": %d.%03d, "pid": 0}`,
		comma, ph, jsonString(s.Category()), jsonString(s.Name()), s.ThreadID(),
		ts/1000, ts%1000)
}

// jsonString renders s as a double-quoted, escaped JSON string literal.
func jsonString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// json.Marshal on a string only fails for invalid UTF-8, which
		// Marshal itself repairs rather than rejects; this path is
		// unreachable in practice.
		return `""`
	}
	return string(b)
}
