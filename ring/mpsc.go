// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"code.hybscloud.com/atomix"
)

// MPSC is an FAA-based multi-producer single-consumer lossy ring queue.
//
// Producers blindly claim a vindex with a fetch-and-add and never block;
// this requires 2n physical slots for a capacity of n so that a producer
// still mid-write is never confused with a slot from two wraps ago by the
// consumer's DrainInto.
type MPSC[T any] struct {
	_           pad
	writeVindex atomix.Uint64 // next vindex to hand out, FAA'd by producers
	_           pad
	readVindex  uint64 // owned by the single consumer
	_           pad
	storage     []mpscSlot[T]
	capacity    uint64 // n
	size        uint64 // 2n physical slots
}

type mpscSlot[T any] struct {
	committedVindex atomix.Uint64 // vindex whose data currently sits in this slot, once written
	data            T
	_               padShort
}

// NewMPSC creates an MPSC ring of the given capacity.
func NewMPSC[T any](capacity int) *MPSC[T] {
	if capacity <= 0 {
		panic("ring: capacity must be > 0")
	}
	n := uint64(capacity)
	q := &MPSC[T]{
		storage:  make([]mpscSlot[T], n*2),
		capacity: n,
		size:     n * 2,
	}
	for i := range q.storage {
		q.storage[i].committedVindex.StoreRelaxed(^uint64(0))
	}
	return q
}

// Cap returns the queue's fixed capacity.
func (q *MPSC[T]) Cap() int {
	return int(q.capacity)
}

// Push claims the next vindex and writes a single item into it. Safe for
// any number of concurrent producers; never blocks.
func (q *MPSC[T]) Push(item T) {
	myVindex := q.writeVindex.AddAcqRel(1) - 1
	if myVindex == ^uint64(0) {
		abortDueToOverflow()
	}
	slot := &q.storage[myVindex%q.size]
	slot.data = item
	slot.committedVindex.StoreRelease(myVindex)
}

// DrainInto removes every readable, fully-committed item, oldest first,
// and stops at the first slot still Reserved (claimed by a producer's FAA
// but not yet written). readVindex only ever advances up to that point,
// never past it: a gap is not skipped, because skipping it would mean
// read_vindex moves beyond a sample that has not been lost yet, making it
// permanently unreachable by any future drain. The slot is instead picked
// up by whichever later DrainInto call observes it committed — or, if the
// producer is slow enough that the ring wraps twice more first, it is
// lossily overwritten like any other slot. Consumer only.
func (q *MPSC[T]) DrainInto(sink Sink[T]) {
	endVindex := q.writeVindex.LoadAcquire()

	beginVindex := q.readVindex
	if endVindex > q.capacity {
		if lost := endVindex - q.capacity; lost > beginVindex {
			beginVindex = lost
		}
	}

	sink.Reserve(int(endVindex - beginVindex))
	i := beginVindex
	for ; i < endVindex; i++ {
		slot := &q.storage[i%q.size]
		if slot.committedVindex.LoadAcquire() != i {
			break
		}
		sink.PushBack(slot.data)
	}
	q.readVindex = i
}

// Reset returns the queue to its just-constructed state. Not safe to call
// concurrently with Push or DrainInto.
func (q *MPSC[T]) Reset() {
	q.readVindex = 0
	q.writeVindex.StoreRelaxed(0)
	for i := range q.storage {
		q.storage[i].committedVindex.StoreRelaxed(^uint64(0))
	}
}
