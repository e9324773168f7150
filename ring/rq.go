// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// RQ is an unsynchronized ring queue: exactly one goroutine may call Push
// or DrainInto at any point in the queue's lifetime (they may alternate,
// but never overlap). It is the arithmetic core every other variant in
// this package builds on — 'vindex' below is short for "virtual index", a
// monotonically increasing counter whose physical slot is vindex mod C.
//
// RQ is the right choice for storage shards that are already serialized by
// something else (e.g. a single goroutine that both produces and later
// drains its own shard).
type RQ[T any] struct {
	storage    []T
	capacity   uint64
	readVindex uint64
	writeVindex uint64
}

// NewRQ creates an RQ of the given capacity. Panics if capacity <= 0.
func NewRQ[T any](capacity int) *RQ[T] {
	if capacity <= 0 {
		panic("ring: capacity must be > 0")
	}
	return &RQ[T]{
		storage:  make([]T, capacity),
		capacity: uint64(capacity),
	}
}

// Cap returns the queue's fixed capacity.
func (q *RQ[T]) Cap() int {
	return int(q.capacity)
}

type rqHandle[T any] struct {
	q           *RQ[T]
	writeVindex uint64
}

func (h rqHandle[T]) Set(offset int, value T) {
	h.q.storage[(h.writeVindex+uint64(offset))%h.q.capacity] = value
}

// Push reserves count consecutive slots (1 <= count < capacity) and hands
// the caller a Handle to fill them by offset. No partial pushes are ever
// observed by a drain: the write index only advances after write returns.
func (q *RQ[T]) Push(count int, write func(h Handle[T])) {
	if count <= 0 || uint64(count) >= q.capacity {
		panic("ring: push count must satisfy 0 < count < capacity")
	}
	oldWriteVindex := q.writeVindex
	newWriteVindex, ok := addOverflowCheck(oldWriteVindex, uint64(count))
	if !ok {
		abortDueToOverflow()
	}
	write(rqHandle[T]{q: q, writeVindex: oldWriteVindex})
	q.writeVindex = newWriteVindex
}

// DrainInto removes every currently readable item, oldest first, and
// advances the read position to the current write position. Items that
// fell outside the last `capacity` pushes were already lossily dropped and
// are not returned — DrainInto cannot resurrect them.
func (q *RQ[T]) DrainInto(sink Sink[T]) {
	beginVindex := q.readVindex
	if q.writeVindex > q.capacity {
		if lost := q.writeVindex - q.capacity; lost > beginVindex {
			beginVindex = lost
		}
	}
	endVindex := q.writeVindex

	sink.Reserve(int(endVindex - beginVindex))
	for i := beginVindex; i < endVindex; i++ {
		sink.PushBack(q.storage[i%q.capacity])
	}
	q.readVindex = endVindex
}

// Reset returns the queue to its just-constructed state, discarding any
// unread items.
func (q *RQ[T]) Reset() {
	q.readVindex = 0
	q.writeVindex = 0
}

// addOverflowCheck returns a+b and whether the addition stayed within
// uint64 range. Overflowing the virtual index is the ring's only
// non-lossy failure mode (see abortDueToOverflow).
func addOverflowCheck(a, b uint64) (uint64, bool) {
	sum := a + b
	return sum, sum >= a
}

// abortDueToOverflow terminates the process. A virtual index wrapping
// around a uint64 requires sustained pushes for decades; the cost of
// probing for it on every push would exceed its expected harm, so the
// library does not try to recover from it.
func abortDueToOverflow() {
	panic("ring: fatal: virtual index overflowed its 64-bit counter")
}
