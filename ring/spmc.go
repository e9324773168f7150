// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// SPMC is a single-producer multi-consumer lossy ring queue.
//
// The producer side is exactly SPSC's: a single writeVindex, published with
// a release store, no FAA contention to guard against. What distinguishes
// SPMC from SPSC is the consumer side: any number of goroutines may call
// DrainInto, but they do so one at a time behind an exclusive lock, inside
// which the single-consumer drain protocol below runs unmodified — the
// same shape SPSC uses, just serialized rather than single-owner by
// construction.
type SPMC[T any] struct {
	_           pad
	writeVindex atomix.Uint64 // published by the producer, acquired by consumers
	_           pad
	mu          sync.Mutex
	readVindex  uint64 // owned by whichever consumer currently holds mu
	_           pad
	storage     []T
	capacity    uint64
}

// NewSPMC creates an SPMC ring of the given capacity.
func NewSPMC[T any](capacity int) *SPMC[T] {
	if capacity <= 0 {
		panic("ring: capacity must be > 0")
	}
	return &SPMC[T]{
		storage:  make([]T, capacity),
		capacity: uint64(capacity),
	}
}

// Cap returns the queue's fixed capacity.
func (q *SPMC[T]) Cap() int {
	return int(q.capacity)
}

type spmcHandle[T any] struct {
	q           *SPMC[T]
	writeVindex uint64
}

func (h spmcHandle[T]) Set(offset int, value T) {
	h.q.storage[(h.writeVindex+uint64(offset))%h.q.capacity] = value
}

// Push reserves count consecutive slots (0 < count < capacity) and hands
// the single producer a Handle to fill them by offset. Never blocks; may
// silently overwrite slots a slow consumer has not yet drained.
func (q *SPMC[T]) Push(count int, write func(h Handle[T])) {
	if count <= 0 || uint64(count) >= q.capacity {
		panic("ring: push count must satisfy 0 < count < capacity")
	}
	oldWriteVindex := q.writeVindex.LoadRelaxed()
	newWriteVindex, ok := addOverflowCheck(oldWriteVindex, uint64(count))
	if !ok {
		abortDueToOverflow()
	}
	write(spmcHandle[T]{q: q, writeVindex: oldWriteVindex})
	q.writeVindex.StoreRelease(newWriteVindex)
}

// DrainInto removes every currently readable item, oldest first. Safe for
// any number of concurrent callers: each call takes q's lock for its
// duration, so only one drain ever runs the single-consumer protocol at a
// time. Items overwritten since the last drain are not returned.
func (q *SPMC[T]) DrainInto(sink Sink[T]) {
	q.mu.Lock()
	defer q.mu.Unlock()

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
func (q *SPMC[T]) Reset() {
	q.mu.Lock()
	q.readVindex = 0
	q.mu.Unlock()
	q.writeVindex.StoreRelaxed(0)
}
