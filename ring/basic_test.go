// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"sync"
	"testing"

	"code.emberlane.com/spantrace/ring"
)

func push1[T any](q interface {
	Push(int, func(ring.Handle[T]))
}, v T) {
	q.Push(1, func(h ring.Handle[T]) { h.Set(0, v) })
}

// TestRQBasic exercises the unsynchronized RQ in strict push/drain/drain order:
// the second drain finds nothing left.
func TestRQBasic(t *testing.T) {
	q := ring.NewRQ[int](4)

	for i := range 4 {
		push1[int](q, 100+i)
	}

	var sink ring.SliceSink[int]
	q.DrainInto(&sink)
	if len(sink.Out) != 4 {
		t.Fatalf("drained %d items, want 4", len(sink.Out))
	}
	for i, v := range sink.Out {
		if v != 100+i {
			t.Fatalf("item %d: got %d, want %d", i, v, 100+i)
		}
	}

	sink.Out = sink.Out[:0]
	q.DrainInto(&sink)
	if len(sink.Out) != 0 {
		t.Fatalf("second drain: got %d items, want 0", len(sink.Out))
	}
}

// TestRQOverflowKeepsLastWindow pushes more than capacity and checks only
// the last `capacity` items survive, oldest-first.
func TestRQOverflowKeepsLastWindow(t *testing.T) {
	q := ring.NewRQ[int](4)

	for i := range 10 {
		push1[int](q, i)
	}

	var sink ring.SliceSink[int]
	q.DrainInto(&sink)
	if len(sink.Out) != 4 {
		t.Fatalf("drained %d items, want 4", len(sink.Out))
	}
	want := []int{6, 7, 8, 9}
	for i, v := range sink.Out {
		if v != want[i] {
			t.Fatalf("item %d: got %d, want %d", i, v, want[i])
		}
	}
}

// TestSPSCBasic exercises SPSC across a producer goroutine and a consumer
// goroutine, checking every pushed item that survives arrives in order.
func TestSPSCBasic(t *testing.T) {
	q := ring.NewSPSC[int](1024)

	const n = 2000
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range n {
			push1[int](q, i)
		}
	}()
	<-done

	var sink ring.SliceSink[int]
	q.DrainInto(&sink)
	if len(sink.Out) == 0 {
		t.Fatal("drained nothing")
	}
	for i := 1; i < len(sink.Out); i++ {
		if sink.Out[i] <= sink.Out[i-1] {
			t.Fatalf("out of order: %d then %d", sink.Out[i-1], sink.Out[i])
		}
	}
	if sink.Out[len(sink.Out)-1] != n-1 {
		t.Fatalf("last item: got %d, want %d", sink.Out[len(sink.Out)-1], n-1)
	}
}

// TestSPSCNoOverflowRoundTrips checks that a push/drain cycle that never
// exceeds capacity loses nothing.
func TestSPSCNoOverflowRoundTrips(t *testing.T) {
	q := ring.NewSPSC[int](8)

	for round := range 5 {
		for i := range 8 {
			push1[int](q, round*100+i)
		}
		var sink ring.SliceSink[int]
		q.DrainInto(&sink)
		if len(sink.Out) != 8 {
			t.Fatalf("round %d: drained %d, want 8", round, len(sink.Out))
		}
		for i, v := range sink.Out {
			want := round*100 + i
			if v != want {
				t.Fatalf("round %d item %d: got %d, want %d", round, i, v, want)
			}
		}
	}
}

// TestMPSCContention has several producer goroutines push concurrently into
// one MPSC ring and checks the consumer sees only values from a known value
// set, with no duplicates or out-of-range data.
func TestMPSCContention(t *testing.T) {
	q := ring.NewMPSC[int](4096)

	const producers = 4
	const perProducer = 2000

	done := make(chan struct{})
	for p := range producers {
		go func(p int) {
			for i := range perProducer {
				q.Push(p*perProducer + i)
			}
			done <- struct{}{}
		}(p)
	}
	for range producers {
		<-done
	}

	var sink ring.SliceSink[int]
	q.DrainInto(&sink)

	seen := make(map[int]bool, len(sink.Out))
	for _, v := range sink.Out {
		if v < 0 || v >= producers*perProducer {
			t.Fatalf("value out of range: %d", v)
		}
		if seen[v] {
			t.Fatalf("duplicate value: %d", v)
		}
		seen[v] = true
	}
}

// TestSPMCFanOut has one producer push a known range and many consumers
// call DrainInto concurrently; DrainInto's consumer-side lock guarantees
// each surviving item reaches exactly one caller's sink, so the merged
// result across every consumer must be unique and in range.
func TestSPMCFanOut(t *testing.T) {
	q := ring.NewSPMC[int](1024)

	const n = 5000
	producerDone := make(chan struct{})
	go func() {
		defer close(producerDone)
		for i := range n {
			push1[int](q, i)
		}
	}()

	const consumers = 8
	results := make(chan []int, consumers)
	for range consumers {
		go func() {
			var got []int
			for {
				var sink ring.SliceSink[int]
				q.DrainInto(&sink)
				got = append(got, sink.Out...)
				select {
				case <-producerDone:
					var final ring.SliceSink[int]
					q.DrainInto(&final)
					got = append(got, final.Out...)
					results <- got
					return
				default:
				}
			}
		}()
	}

	seen := make(map[int]bool)
	for range consumers {
		for _, v := range <-results {
			if v < 0 || v >= n {
				t.Fatalf("value out of range: %d", v)
			}
			if seen[v] {
				t.Fatalf("duplicate value: %d", v)
			}
			seen[v] = true
		}
	}
}

// TestMPMCManyToMany has several producers and several consumers contend on
// one MPMC ring; DrainInto's consumer-side lock guarantees every delivered
// value is unique and in range. MPMC never guarantees every pushed item
// survives (that is the point of a lossy ring), so this only asserts the
// no-duplicates, in-range invariant.
func TestMPMCManyToMany(t *testing.T) {
	q := ring.NewMPMC[int](2048)

	const producers = 4
	const perProducer = 3000
	const total = producers * perProducer

	var producerWG sync.WaitGroup
	producerWG.Add(producers)
	for p := range producers {
		go func(p int) {
			defer producerWG.Done()
			for i := range perProducer {
				push1[int](q, p*perProducer+i)
			}
		}(p)
	}

	var mu sync.Mutex
	seen := make(map[int]bool, total)
	stop := make(chan struct{})
	var consumerWG sync.WaitGroup
	const consumers = 4
	consumerWG.Add(consumers)
	for range consumers {
		go func() {
			defer consumerWG.Done()
			for {
				var sink ring.SliceSink[int]
				q.DrainInto(&sink)
				if len(sink.Out) > 0 {
					mu.Lock()
					for _, v := range sink.Out {
						seen[v] = true
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

	producerWG.Wait()
	close(stop)
	consumerWG.Wait()

	for v := range seen {
		if v < 0 || v >= total {
			t.Fatalf("value out of range: %d", v)
		}
	}
}

func TestCapacityPanicsOnZero(t *testing.T) {
	tests := []struct {
		name   string
		create func()
	}{
		{"RQ", func() { ring.NewRQ[int](0) }},
		{"SPSC", func() { ring.NewSPSC[int](0) }},
		{"MPSC", func() { ring.NewMPSC[int](0) }},
		{"SPMC", func() { ring.NewSPMC[int](0) }},
		{"MPMC", func() { ring.NewMPMC[int](0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Fatal("expected panic for capacity <= 0")
				}
			}()
			tt.create()
		})
	}
}
