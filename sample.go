// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spantrace

import "code.emberlane.com/spantrace/clock"

// Kind distinguishes the two halves of a span.
type Kind uint8

const (
	// KindEnter marks the beginning of a span.
	KindEnter Kind = iota
	// KindExit marks the end of a span.
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindEnter:
		return "enter"
	case KindExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Sample is the producer-side record pushed into a ring: category and
// name are expected to be string literals at the call site (immortal for
// the process lifetime), so no copy or ownership transfer is needed the
// way the upstream C++ borrowed-pointer design requires.
type Sample struct {
	Category string
	Name     string
	Kind     Kind
	ThreadID uint64
	Clock    clock.Sample
}

// SnapshotSample is a Sample with the clock sample resolved to an
// absolute timestamp, produced exactly once per export by a Clock's
// MakeTimePoint.
type SnapshotSample struct {
	Category  string
	Name      string
	Kind      Kind
	ThreadID  uint64
	Timestamp clock.TimePoint
}
