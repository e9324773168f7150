// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spantrace

import (
	"container/heap"

	"code.emberlane.com/spantrace/clock"
)

// Storage is the contract every adapter (GlobalStorage, PerThreadStorage,
// PerProcessorStorage, Unbounded) satisfies. AddSample is the hot path and
// never returns an error. In the ring-backed adapters it never blocks:
// overload is handled by silently discarding the oldest unread sample, per
// the ring's own lossy contract. Unbounded instead takes a mutex and keeps
// every sample.
type Storage interface {
	// AddSample records one half of a span. The calling thread's id is
	// resolved internally (via internal/osthread) rather than accepted as
	// a parameter: every caller in this design is the Span guard, which
	// always wants the calling thread's own id.
	AddSample(category, name string, kind Kind, sample clock.Sample)
	// Reset discards every unread sample and remembered thread name.
	Reset()
	// TakeAllSamples drains every shard, resolves timestamps via clk, and
	// returns a single timestamp-ordered Snapshot.
	TakeAllSamples(clk clock.Clock) (*Snapshot, error)
	// RememberCurrentThreadNameForNextSnapshot queries the OS for the
	// calling thread's name so the next Snapshot can label it.
	RememberCurrentThreadNameForNextSnapshot()
}

// Snapshot is a timestamp-ordered, point-in-time view over every sample an
// adapter had recorded at the moment TakeAllSamples was called.
type Snapshot struct {
	samples []SnapshotSample
	names   map[uint64]string
}

// Size returns the number of samples in the snapshot.
func (s *Snapshot) Size() int { return len(s.samples) }

// At returns a view over the i'th sample in timestamp order.
func (s *Snapshot) At(i int) SampleView { return SampleView{s: &s.samples[i]} }

// ThreadName returns the remembered name for tid, if any.
func (s *Snapshot) ThreadName(tid uint64) (string, bool) {
	name, ok := s.names[tid]
	return name, ok
}

// ThreadIDs returns every distinct thread id with a remembered name.
func (s *Snapshot) ThreadIDs() []uint64 {
	ids := make([]uint64, 0, len(s.names))
	for tid := range s.names {
		ids = append(ids, tid)
	}
	return ids
}

// SampleView is a read-only handle onto one SnapshotSample.
type SampleView struct {
	s *SnapshotSample
}

func (v SampleView) Category() string        { return v.s.Category }
func (v SampleView) Name() string             { return v.s.Name }
func (v SampleView) Kind() Kind               { return v.s.Kind }
func (v SampleView) ThreadID() uint64         { return v.s.ThreadID }
func (v SampleView) Timestamp() clock.TimePoint { return v.s.Timestamp }

// convertShard resolves one shard's raw Samples (already in the order they
// were produced) to timestamped SnapshotSamples.
func convertShard(clk clock.Clock, shard []Sample) []SnapshotSample {
	out := make([]SnapshotSample, len(shard))
	for i, s := range shard {
		out[i] = SnapshotSample{
			Category:  s.Category,
			Name:      s.Name,
			Kind:      s.Kind,
			ThreadID:  s.ThreadID,
			Timestamp: clk.MakeTimePoint(s.Clock),
		}
	}
	return out
}

// shardCursor walks one shard's already-sorted SnapshotSample slice.
type shardCursor struct {
	samples []SnapshotSample
	pos     int
}

func (c *shardCursor) peek() SnapshotSample { return c.samples[c.pos] }
func (c *shardCursor) done() bool           { return c.pos >= len(c.samples) }

// mergeHeap is a min-heap of shardCursors ordered by each cursor's next
// unread timestamp, used to k-way merge per-shard sorted sample streams
// without concatenating and sorting the whole thing.
type mergeHeap []*shardCursor

func (h mergeHeap) Len() int { return len(h) }
func (h mergeHeap) Less(i, j int) bool {
	return h[i].peek().Timestamp < h[j].peek().Timestamp
}
func (h mergeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *mergeHeap) Push(x any)   { *h = append(*h, x.(*shardCursor)) }
func (h *mergeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// buildSnapshot merges one or more shards (each individually produced in
// monotonic-per-shard order once converted to timestamps) into a single
// timestamp-ordered Snapshot, and resolves names for every referenced
// thread id not already remembered by names.
func buildSnapshot(clk clock.Clock, names *ThreadNameSet, shards ...[]Sample) *Snapshot {
	h := make(mergeHeap, 0, len(shards))
	for _, shard := range shards {
		if len(shard) == 0 {
			continue
		}
		h = append(h, &shardCursor{samples: convertShard(clk, shard)})
	}
	heap.Init(&h)

	merged := make([]SnapshotSample, 0)
	seen := make(map[uint64]struct{})
	var referenced []uint64
	for h.Len() > 0 {
		cur := h[0]
		merged = append(merged, cur.peek())
		if _, ok := seen[cur.peek().ThreadID]; !ok {
			seen[cur.peek().ThreadID] = struct{}{}
			referenced = append(referenced, cur.peek().ThreadID)
		}
		cur.pos++
		if cur.done() {
			heap.Pop(&h)
		} else {
			heap.Fix(&h, 0)
		}
	}

	var nameMap map[uint64]string
	if names != nil {
		nameMap = names.snapshot(referenced)
	}
	return &Snapshot{samples: merged, names: nameMap}
}
