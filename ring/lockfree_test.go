// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Lock-free algorithm stress tests, excluded from race detection.
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channels, WaitGroup) but cannot observe happens-before relationships
// established through atomic memory orderings (acquire-release semantics).
// These tests exercise the rings under far more contention than
// basic_test.go, and are skipped under -race for the reason the package
// documentation's "Race detection" section gives (ring/doc.go).

package ring_test

import (
	"sync"
	"testing"

	"code.emberlane.com/spantrace/ring"
)

// TestStressMPSCNoDuplicates hammers one MPSC ring with many producers and
// confirms the consumer never sees the same vindex worth of data twice,
// regardless of how much the ring overflowed in between drains.
func TestStressMPSCNoDuplicates(t *testing.T) {
	if testing.Short() {
		t.Skip("skip: stress test")
	}
	if ring.RaceEnabled {
		t.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}

	const producers = 16
	const perProducer = 5000
	const capacity = 256

	q := ring.NewMPSC[int](capacity)

	var wg sync.WaitGroup
	wg.Add(producers)
	stopDrain := make(chan struct{})
	var drainedMu sync.Mutex
	var drained []int

	go func() {
		var sink ring.SliceSink[int]
		for {
			select {
			case <-stopDrain:
				sink.Out = sink.Out[:0]
				q.DrainInto(&sink)
				drainedMu.Lock()
				drained = append(drained, sink.Out...)
				drainedMu.Unlock()
				return
			default:
			}
			sink.Out = sink.Out[:0]
			q.DrainInto(&sink)
			if len(sink.Out) > 0 {
				drainedMu.Lock()
				drained = append(drained, sink.Out...)
				drainedMu.Unlock()
			}
		}
	}()

	for p := range producers {
		go func(p int) {
			defer wg.Done()
			for i := range perProducer {
				q.Push(p*perProducer + i)
			}
		}(p)
	}
	wg.Wait()
	close(stopDrain)

	seen := make(map[int]bool, len(drained))
	for _, v := range drained {
		if seen[v] {
			t.Fatalf("duplicate value delivered: %d", v)
		}
		seen[v] = true
		if v < 0 || v >= producers*perProducer {
			t.Fatalf("value out of range: %d", v)
		}
	}
}

// TestStressSPSCOrdering checks that under sustained concurrent push/drain,
// an SPSC ring never reorders or duplicates a surviving item.
func TestStressSPSCOrdering(t *testing.T) {
	if testing.Short() {
		t.Skip("skip: stress test")
	}
	if ring.RaceEnabled {
		t.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}

	const n = 200_000
	q := ring.NewSPSC[int](128)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range n {
			q.Push(1, func(h ring.Handle[int]) { h.Set(0, i) })
		}
	}()

	var all []int
	var sink ring.SliceSink[int]
	for {
		sink.Out = sink.Out[:0]
		q.DrainInto(&sink)
		all = append(all, sink.Out...)
		select {
		case <-done:
			sink.Out = sink.Out[:0]
			q.DrainInto(&sink)
			all = append(all, sink.Out...)
			goto checked
		default:
		}
	}
checked:
	for i := 1; i < len(all); i++ {
		if all[i] <= all[i-1] {
			t.Fatalf("order violated at %d: %d then %d", i, all[i-1], all[i])
		}
	}
	if len(all) == 0 {
		t.Fatal("nothing survived")
	}
	if all[len(all)-1] != n-1 {
		t.Fatalf("last surviving item: got %d, want %d", all[len(all)-1], n-1)
	}
}

// TestStressMPMCIntegrity runs many producers and consumers against one
// MPMC ring and asserts the only allowed data-integrity violation is loss
// (expected of a lossy ring); duplication or out-of-range data is not.
func TestStressMPMCIntegrity(t *testing.T) {
	if testing.Short() {
		t.Skip("skip: stress test")
	}
	if ring.RaceEnabled {
		t.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}

	const producers = 16
	const consumers = 16
	const perProducer = 2000
	const total = producers * perProducer

	q := ring.NewMPMC[int](512)

	var prodWG sync.WaitGroup
	prodWG.Add(producers)
	for p := range producers {
		go func(p int) {
			defer prodWG.Done()
			for i := range perProducer {
				push1[int](q, p*perProducer+i)
			}
		}(p)
	}

	var mu sync.Mutex
	seen := make(map[int]int, total)
	stop := make(chan struct{})
	var consWG sync.WaitGroup
	consWG.Add(consumers)
	for range consumers {
		go func() {
			defer consWG.Done()
			for {
				var sink ring.SliceSink[int]
				q.DrainInto(&sink)
				if len(sink.Out) > 0 {
					mu.Lock()
					for _, v := range sink.Out {
						seen[v]++
					}
					mu.Unlock()
					continue
				}
				select {
				case <-stop:
					return
				default:
				}
			}
		}()
	}

	prodWG.Wait()
	close(stop)
	consWG.Wait()

	for v, count := range seen {
		if v < 0 || v >= total {
			t.Fatalf("value out of range: %d", v)
		}
		if count > 1 {
			t.Fatalf("duplicate delivery of %d (seen %d times)", v, count)
		}
	}
}
