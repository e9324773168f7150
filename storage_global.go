// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spantrace

import (
	"code.emberlane.com/spantrace/clock"
	"code.emberlane.com/spantrace/internal/osthread"
	"code.emberlane.com/spantrace/ring"
)

// GlobalStorage routes every producer thread's samples through a single
// shared ring. Simplest adapter; every producer contends on the same
// fetch-and-add, which MPSC is built to tolerate.
type GlobalStorage struct {
	samples *ring.MPSC[Sample]
	names   ThreadNameSet
}

// NewGlobalStorage creates a GlobalStorage backed by a ring of the given
// capacity.
func NewGlobalStorage(capacity int) *GlobalStorage {
	return &GlobalStorage{samples: ring.NewMPSC[Sample](capacity)}
}

func (s *GlobalStorage) AddSample(category, name string, kind Kind, sample clock.Sample) {
	tid, err := osthread.CurrentThreadID()
	if err != nil {
		logFailureOnce(failureKindThreadName, "resolve current thread id", err)
	}
	s.samples.Push(Sample{
		Category: category,
		Name:     name,
		Kind:     kind,
		ThreadID: tid,
		Clock:    sample,
	})
}

func (s *GlobalStorage) Reset() {
	s.samples.Reset()
	s.names.Reset()
}

func (s *GlobalStorage) TakeAllSamples(clk clock.Clock) (*Snapshot, error) {
	sink := &ring.SliceSink[Sample]{}
	s.samples.DrainInto(sink)
	return buildSnapshot(clk, &s.names, sink.Out), nil
}

func (s *GlobalStorage) RememberCurrentThreadNameForNextSnapshot() {
	s.names.FetchAndRememberNameOfCurrentThread()
}
