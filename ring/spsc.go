// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"code.hybscloud.com/atomix"
)

// SPSC is a single-producer single-consumer lossy ring queue.
//
// Based on Lamport's ring buffer, but without the full-queue check: the
// producer always advances, silently overwriting slots the consumer has not
// yet drained. The consumer recovers from this on its next DrainInto by
// starting from max(readVindex, writeVindex-capacity) rather than
// readVindex, exactly like RQ.
type SPSC[T any] struct {
	_           pad
	writeVindex atomix.Uint64 // published by the producer, acquired by the consumer
	_           pad
	readVindex  uint64 // owned by the consumer; never read by the producer
	_           pad
	storage     []T
	capacity    uint64
}

// NewSPSC creates an SPSC ring of the given capacity.
func NewSPSC[T any](capacity int) *SPSC[T] {
	if capacity <= 0 {
		panic("ring: capacity must be > 0")
	}
	return &SPSC[T]{
		storage:  make([]T, capacity),
		capacity: uint64(capacity),
	}
}

// Cap returns the queue's fixed capacity.
func (q *SPSC[T]) Cap() int {
	return int(q.capacity)
}

type spscHandle[T any] struct {
	q           *SPSC[T]
	writeVindex uint64
}

func (h spscHandle[T]) Set(offset int, value T) {
	h.q.storage[(h.writeVindex+uint64(offset))%h.q.capacity] = value
}

// Push reserves count consecutive slots (0 < count < capacity) and hands
// the producer a Handle to fill them by offset. The new items become
// visible to the consumer only after write returns.
func (q *SPSC[T]) Push(count int, write func(h Handle[T])) {
	if count <= 0 || uint64(count) >= q.capacity {
		panic("ring: push count must satisfy 0 < count < capacity")
	}
	oldWriteVindex := q.writeVindex.LoadRelaxed()
	newWriteVindex, ok := addOverflowCheck(oldWriteVindex, uint64(count))
	if !ok {
		abortDueToOverflow()
	}
	write(spscHandle[T]{q: q, writeVindex: oldWriteVindex})
	q.writeVindex.StoreRelease(newWriteVindex)
}

// DrainInto removes every currently readable item, oldest first. Consumer
// only. Items overwritten since the last drain are not returned.
func (q *SPSC[T]) DrainInto(sink Sink[T]) {
	endVindex := q.writeVindex.LoadAcquire()

	beginVindex := q.readVindex
	if endVindex > q.capacity {
		if lost := endVindex - q.capacity; lost > beginVindex {
			beginVindex = lost
		}
	}

	sink.Reserve(int(endVindex - beginVindex))
	for i := beginVindex; i < endVindex; i++ {
		sink.PushBack(q.storage[i%q.capacity])
	}
	q.readVindex = endVindex
}

// Reset returns the queue to its just-constructed state. Not safe to call
// concurrently with Push or DrainInto.
func (q *SPSC[T]) Reset() {
	q.readVindex = 0
	q.writeVindex.StoreRelaxed(0)
}
