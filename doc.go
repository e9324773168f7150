// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spantrace is an in-process tracing library: instrumented code
// paths push matched enter/exit samples through a Storage adapter backed
// by package ring's lossy queues, and a consumer later calls
// TakeAllSamples to get a timestamp-ordered Snapshot, exportable as Chrome
// Trace Event JSON via package chrometrace.
//
// # Quick start
//
//	storage := spantrace.NewGlobalStorage(4096)
//	clk := clock.NewMonotonicClock()
//	cfg := spantrace.NewConfig(storage, clk)
//
//	func doWork() {
//		span := spantrace.Enter(cfg, "work", "doWork")
//		defer span.End()
//		...
//	}
//
//	snapshot, err := storage.TakeAllSamples(clk)
//
// # Choosing a storage adapter
//
// GlobalStorage shares one ring across every producer; simplest, but every
// producer thread contends on the same ring. PerThreadStorage gives each
// producer thread its own ring, trading a small amount of bookkeeping for
// zero cross-thread contention on the hot path. PerProcessorStorage shards
// by logical CPU instead of by thread, which amortizes better than
// per-thread when there are far more threads than CPUs. Unbounded trades
// the lossy, fixed-capacity guarantee for an always-growing, mutex-guarded
// vector, for callers who need every sample and can tolerate allocation.
//
// Every adapter is lossy except Unbounded: on producer overload, the
// oldest unread sample is silently dropped rather than blocking the
// producer or returning an error.
package spantrace
