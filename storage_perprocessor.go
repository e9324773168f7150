// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spantrace

import (
	"code.emberlane.com/spantrace/clock"
	"code.emberlane.com/spantrace/internal/osthread"
	"code.emberlane.com/spantrace/internal/procid"
	"code.emberlane.com/spantrace/ring"
)

// PerProcessorStorage shards by logical CPU rather than by thread: one
// MPSC ring per processor id, sized to the largest processor id the OS
// reports. This amortizes better than PerThreadStorage when there are far
// more producer threads than CPUs, at the cost of producers on the same
// CPU still contending with each other (hence MPSC, not SPSC, per shard).
//
// A shard is chosen with an uncached processor-id query: see
// internal/procid's doc comment for why the generation-cache refresh
// protocol this adapter is modeled on cannot be implemented portably.
type PerProcessorStorage struct {
	shards []*ring.MPSC[Sample]
	cache  *procid.Cache
	names  ThreadNameSet
}

// NewPerProcessorStorage creates a PerProcessorStorage with one ring of
// the given capacity per logical processor.
func NewPerProcessorStorage(capacity int) (*PerProcessorStorage, error) {
	maxID, err := procid.GetMaximumProcessorID()
	if err != nil {
		return nil, err
	}
	shards := make([]*ring.MPSC[Sample], maxID+1)
	for i := range shards {
		shards[i] = ring.NewMPSC[Sample](capacity)
	}
	return &PerProcessorStorage{shards: shards, cache: procid.NewCache()}, nil
}

func (s *PerProcessorStorage) AddSample(category, name string, kind Kind, sample clock.Sample) {
	tid, err := osthread.CurrentThreadID()
	if err != nil {
		logFailureOnce(failureKindThreadName, "resolve current thread id", err)
	}
	pid, err := procid.GetCurrentProcessorID(s.cache)
	if err != nil {
		logFailureOnce(failureKindProcessorID, "resolve current processor id", err)
		pid = 0
	}
	if int(pid) >= len(s.shards) {
		pid = 0
	}
	item := Sample{Category: category, Name: name, Kind: kind, ThreadID: tid, Clock: sample}
	s.shards[pid].Push(item)
}

func (s *PerProcessorStorage) Reset() {
	for _, shard := range s.shards {
		shard.Reset()
	}
	s.names.Reset()
}

func (s *PerProcessorStorage) TakeAllSamples(clk clock.Clock) (*Snapshot, error) {
	shards := make([][]Sample, 0, len(s.shards))
	for _, shard := range s.shards {
		sink := &ring.SliceSink[Sample]{}
		shard.DrainInto(sink)
		shards = append(shards, sink.Out)
	}
	return buildSnapshot(clk, &s.names, shards...), nil
}

func (s *PerProcessorStorage) RememberCurrentThreadNameForNextSnapshot() {
	s.names.FetchAndRememberNameOfCurrentThread()
}
