// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// MPMC is an FAA-based multi-producer multi-consumer lossy ring queue.
//
// The producer side is exactly MPSC's: producers race each other to claim
// write vindices with a fetch-and-add, and a per-slot committed-vindex tag
// lets a drain tell a freshly-written item from one the producer side has
// already lapped. What distinguishes MPMC from MPSC is the consumer side:
// any number of goroutines may call DrainInto, but they do so one at a
// time behind an exclusive lock, inside which the same single-consumer
// drain protocol MPSC uses runs unmodified.
type MPMC[T any] struct {
	_           pad
	writeVindex atomix.Uint64 // FAA'd by producers
	_           pad
	mu          sync.Mutex
	readVindex  uint64 // owned by whichever consumer currently holds mu
	_           pad
	storage     []mpmcSlot[T]
	capacity    uint64 // n
	size        uint64 // 2n physical slots
}

type mpmcSlot[T any] struct {
	committedVindex atomix.Uint64
	data            T
	_               padShort
}

// NewMPMC creates an MPMC ring of the given capacity.
func NewMPMC[T any](capacity int) *MPMC[T] {
	if capacity <= 0 {
		panic("ring: capacity must be > 0")
	}
	n := uint64(capacity)
	q := &MPMC[T]{
		storage:  make([]mpmcSlot[T], n*2),
		capacity: n,
		size:     n * 2,
	}
	for i := range q.storage {
		q.storage[i].committedVindex.StoreRelaxed(^uint64(0))
	}
	return q
}

// Cap returns the queue's fixed capacity.
func (q *MPMC[T]) Cap() int {
	return int(q.capacity)
}

type mpmcHandle[T any] struct {
	q           *MPMC[T]
	writeVindex uint64
}

func (h mpmcHandle[T]) Set(offset int, value T) {
	h.q.storage[(h.writeVindex+uint64(offset))%h.q.size].data = value
}

// Push claims count consecutive write vindices with a single
// fetch-and-add and hands the producer a Handle to fill them by offset.
// Safe for any number of concurrent producers; never blocks. Each claimed
// slot's committed-vindex tag is published only after write returns, so a
// drain never observes a partially written slot as complete.
func (q *MPMC[T]) Push(count int, write func(h Handle[T])) {
	if count <= 0 {
		panic("ring: push count must be > 0")
	}
	oldWriteVindex := q.writeVindex.AddAcqRel(uint64(count)) - uint64(count)
	if _, ok := addOverflowCheck(oldWriteVindex, uint64(count)); !ok {
		abortDueToOverflow()
	}
	write(mpmcHandle[T]{q: q, writeVindex: oldWriteVindex})
	for i := 0; i < count; i++ {
		vi := oldWriteVindex + uint64(i)
		q.storage[vi%q.size].committedVindex.StoreRelease(vi)
	}
}

// DrainInto removes every readable, fully-committed item, oldest first,
// and stops at the first slot still Reserved, exactly like MPSC.DrainInto.
// Safe for any number of concurrent callers: each call takes q's lock for
// its duration, so only one drain ever runs the single-consumer protocol
// at a time.
func (q *MPMC[T]) DrainInto(sink Sink[T]) {
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
func (q *MPMC[T]) Reset() {
	q.mu.Lock()
	q.readVindex = 0
	q.mu.Unlock()
	q.writeVindex.StoreRelaxed(0)
	for i := range q.storage {
		q.storage[i].committedVindex.StoreRelaxed(^uint64(0))
	}
}
