// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spantrace

import (
	"sync"

	"code.emberlane.com/spantrace/internal/osthread"
)

// ThreadNameSet accumulates OS thread name → id associations across
// snapshots, until Reset. Insertion is idempotent: the last write for a
// given thread id wins.
type ThreadNameSet struct {
	mu    sync.Mutex
	names map[uint64]string
}

// FetchAndRememberNameOfCurrentThread queries the OS for the calling
// thread's name and remembers it for the next snapshot. Calling this
// twice before a snapshot is equivalent to calling it once.
func (s *ThreadNameSet) FetchAndRememberNameOfCurrentThread() {
	tid, err := osthread.CurrentThreadID()
	if err != nil {
		logFailureOnce(failureKindThreadName, "resolve current thread id", err)
		return
	}
	name, err := osthread.FetchNameOfCurrentThread()
	if err != nil {
		logFailureOnce(failureKindThreadName, "fetch current thread name", err)
		return
	}
	s.remember(tid, name)
}

// FetchAndRememberThreadNameForID queries the OS for tid's name by id and
// remembers it. Empty names are not remembered: the Chrome-trace emitter
// omits metadata events for unnamed threads, so there is nothing gained
// by recording an empty string.
func (s *ThreadNameSet) FetchAndRememberThreadNameForID(tid uint64) {
	name, err := osthread.FetchNameForID(tid)
	if err != nil {
		logFailureOnce(failureKindThreadName, "fetch thread name for id", err)
		return
	}
	s.remember(tid, name)
}

func (s *ThreadNameSet) remember(tid uint64, name string) {
	if name == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.names == nil {
		s.names = make(map[uint64]string)
	}
	s.names[tid] = name
}

// Reset discards every remembered name.
func (s *ThreadNameSet) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = nil
}

// snapshot returns a point-in-time copy, resolving any name still unknown
// for a thread id present in samples (first-occurrence order doesn't
// matter here: every referenced id gets resolved regardless of order).
func (s *ThreadNameSet) snapshot(referencedThreadIDs []uint64) map[uint64]string {
	s.mu.Lock()
	out := make(map[uint64]string, len(s.names))
	for k, v := range s.names {
		out[k] = v
	}
	s.mu.Unlock()

	for _, tid := range referencedThreadIDs {
		if _, ok := out[tid]; ok {
			continue
		}
		name, err := osthread.FetchNameForID(tid)
		if err != nil {
			logFailureOnce(failureKindThreadName, "fetch thread name for id", err)
			continue
		}
		if name != "" {
			out[tid] = name
			s.mu.Lock()
			if s.names == nil {
				s.names = make(map[uint64]string)
			}
			s.names[tid] = name
			s.mu.Unlock()
		}
	}
	return out
}
