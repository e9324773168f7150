// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// # Quick Start
//
//	q := ring.NewSPSC[Event](1024)
//	q.Push(1, func(h ring.Handle[Event]) { h.Set(0, ev) })
//
//	var sink ring.SliceSink[Event]
//	q.DrainInto(&sink)
//	events := sink.Out
//
// # Choosing a variant
//
//	RQ:   one goroutine touches the queue, period (no concurrency at all)
//	SPSC: one producer goroutine, one consumer goroutine
//	MPSC: many producer goroutines, one consumer goroutine
//	SPMC: one producer goroutine, many consumer goroutines
//	MPMC: many producer goroutines, many consumer goroutines
//
// Violating these access patterns (e.g. two producers on an SPSC) causes
// data corruption, not a panic — the types do not detect misuse.
//
// RQ, SPSC, SPMC and MPMC share the same two-operation contract:
// Push(count, write) reserves slots and hands the producer a Handle to fill
// them by offset, and DrainInto(sink) removes every readable item, oldest
// first. MPSC has the same DrainInto, but its Push(item) claims and writes
// exactly one slot per call; it has no batched Push(count, write). SPMC and
// MPMC are the only variants with more than one consumer, so for them
// DrainInto takes an exclusive lock for its duration: only one goroutine
// at a time runs the single-consumer drain protocol, and each readable
// item is delivered to exactly one caller's sink, never split or
// duplicated across concurrent DrainInto calls.
//
// # Capacity
//
// RQ, SPSC, and SPMC allocate exactly `capacity` slots: each has only one
// producer, so the write side never contends with itself and a single
// write index, published after the slots are filled, is enough for a
// consumer to know which slots are readable. MPSC and MPMC allocate
// 2*capacity physical slots instead, an SCQ-style requirement that gives
// concurrent producers' fetch-and-add claims enough room that a consumer
// can still distinguish a slot's current occupant from the one it held
// one full lap ago.
//
// # Overflow is not an error
//
// Every variant in this package is a ring buffer of "the last C items
// pushed", not a backpressure queue: Push never returns an error, and a
// slow consumer simply observes fewer items on its next DrainInto. A
// virtual index wrapping its 64-bit counter is the sole fatal condition,
// handled by a documented panic rather than a return value, because it
// requires decades of sustained pushes and checking for it on every push
// would cost more than the failure is worth.
//
// # Race detection
//
// Go's race detector tracks happens-before relationships established by
// mutexes, channels, and WaitGroups, not by bare atomic loads/stores with
// explicit acquire/release ordering. The overwrite-on-overflow design in
// this package is correct under the C/C++/Go memory models but may still
// be flagged by -race on the data field itself (as opposed to the index
// that guards it) — this mirrors a caveat the underlying lock-free
// literature places on every SPSC/MPSC/SPMC/MPMC ring, not a defect
// specific to this implementation.
