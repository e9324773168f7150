// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spantrace

import (
	"sync"

	"code.emberlane.com/spantrace/clock"
	"code.emberlane.com/spantrace/internal/osthread"
)

// Unbounded is a mutex-guarded, always-growing sample log: the only
// adapter that never loses a sample. Intended for short-lived tooling
// (tests, small demos) where allocation and lock contention on the
// producer path are acceptable; AddSample is not lossy or lock-free the
// way every ring-backed adapter's is.
type Unbounded struct {
	mu      sync.Mutex
	samples []Sample
	names   ThreadNameSet
}

// NewUnbounded creates an empty Unbounded storage.
func NewUnbounded() *Unbounded {
	return &Unbounded{}
}

func (s *Unbounded) AddSample(category, name string, kind Kind, sample clock.Sample) {
	tid, err := osthread.CurrentThreadID()
	if err != nil {
		logFailureOnce(failureKindThreadName, "resolve current thread id", err)
	}
	s.mu.Lock()
	s.samples = append(s.samples, Sample{
		Category: category,
		Name:     name,
		Kind:     kind,
		ThreadID: tid,
		Clock:    sample,
	})
	s.mu.Unlock()
}

func (s *Unbounded) Reset() {
	s.mu.Lock()
	s.samples = nil
	s.mu.Unlock()
	s.names.Reset()
}

func (s *Unbounded) TakeAllSamples(clk clock.Clock) (*Snapshot, error) {
	s.mu.Lock()
	shard := s.samples
	s.samples = nil
	s.mu.Unlock()
	return buildSnapshot(clk, &s.names, shard), nil
}

func (s *Unbounded) RememberCurrentThreadNameForNextSnapshot() {
	s.names.FetchAndRememberNameOfCurrentThread()
}
