// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spantrace

import (
	"sync"

	"code.emberlane.com/spantrace/clock"
	"code.emberlane.com/spantrace/internal/osthread"
	"code.emberlane.com/spantrace/ring"
)

// threadBlock is one producer thread's dedicated SPSC ring.
type threadBlock struct {
	tid    uint64
	ring   *ring.SPSC[Sample]
}

// PerThreadStorage gives each producer thread its own SPSC ring, so no two
// threads ever contend on the same cache line for a Push. The hot lookup
// (tid -> block) goes through a sync.Map so the producer path never takes
// a lock; the cold path (registering a new thread, or draining every
// block for a snapshot) is guarded by mu and keeps blocks in registration
// order, matching the thread_list / disowned_samples / global_mutex lock
// order of the design this adapter is modeled on: the producer-side fast
// path must never wait on the slow path's lock.
type PerThreadStorage struct {
	capacity int
	blocks   sync.Map // uint64 -> *threadBlock

	mu              sync.Mutex
	threadList      []*threadBlock
	disownedSamples []Sample
	names           ThreadNameSet
}

// NewPerThreadStorage creates a PerThreadStorage whose per-thread rings
// each have the given capacity.
func NewPerThreadStorage(capacity int) *PerThreadStorage {
	return &PerThreadStorage{capacity: capacity}
}

func (s *PerThreadStorage) blockFor(tid uint64) *threadBlock {
	if v, ok := s.blocks.Load(tid); ok {
		return v.(*threadBlock)
	}
	block := &threadBlock{tid: tid, ring: ring.NewSPSC[Sample](s.capacity)}
	actual, loaded := s.blocks.LoadOrStore(tid, block)
	if loaded {
		return actual.(*threadBlock)
	}
	s.mu.Lock()
	s.threadList = append(s.threadList, block)
	s.mu.Unlock()
	return block
}

func (s *PerThreadStorage) AddSample(category, name string, kind Kind, sample clock.Sample) {
	tid, err := osthread.CurrentThreadID()
	if err != nil {
		logFailureOnce(failureKindThreadName, "resolve current thread id", err)
	}
	item := Sample{Category: category, Name: name, Kind: kind, ThreadID: tid, Clock: sample}
	s.blockFor(tid).ring.Push(1, func(h ring.Handle[Sample]) { h.Set(0, item) })
}

// Detach retires tid's block: its remaining unread samples are folded into
// disownedSamples so a later TakeAllSamples still reports them, even
// though the thread itself is gone and cannot be asked to drain on its
// own behalf. Go has no thread-exit destructor hook, so callers that know
// a producer thread is about to end should call this explicitly.
func (s *PerThreadStorage) Detach(tid uint64) {
	v, ok := s.blocks.LoadAndDelete(tid)
	if !ok {
		return
	}
	block := v.(*threadBlock)
	sink := &ring.SliceSink[Sample]{}
	block.ring.DrainInto(sink)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.disownedSamples = append(s.disownedSamples, sink.Out...)
	for i, b := range s.threadList {
		if b == block {
			s.threadList = append(s.threadList[:i], s.threadList[i+1:]...)
			break
		}
	}
}

func (s *PerThreadStorage) Reset() {
	s.mu.Lock()
	for _, b := range s.threadList {
		b.ring.Reset()
	}
	s.disownedSamples = nil
	s.mu.Unlock()
	s.names.Reset()
}

func (s *PerThreadStorage) TakeAllSamples(clk clock.Clock) (*Snapshot, error) {
	s.mu.Lock()
	blocks := make([]*threadBlock, len(s.threadList))
	copy(blocks, s.threadList)
	disowned := s.disownedSamples
	s.disownedSamples = nil
	s.mu.Unlock()

	shards := make([][]Sample, 0, len(blocks)+1)
	for _, b := range blocks {
		sink := &ring.SliceSink[Sample]{}
		b.ring.DrainInto(sink)
		shards = append(shards, sink.Out)
	}
	if len(disowned) > 0 {
		shards = append(shards, disowned)
	}
	return buildSnapshot(clk, &s.names, shards...), nil
}

func (s *PerThreadStorage) RememberCurrentThreadNameForNextSnapshot() {
	s.names.FetchAndRememberNameOfCurrentThread()
}
