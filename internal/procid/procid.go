// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package procid looks up the logical CPU id of the calling goroutine's
// current OS thread, for sharding spantrace's per-processor storage.
package procid

// ID is a small dense integer identifying one logical CPU.
type ID = uint32

// Cache is meant to carry the (processor_id, last_seen_scheduler_generation)
// pair the cached lookup strategy needs to skip the hardware query when the
// calling thread provably has not migrated since the last call. On this
// platform there is no portable equivalent of the kernel-published
// scheduler-generation counter the cached strategy requires (that counter
// is an Apple commpage extension with no public analogue elsewhere), so
// Cache carries no state and every call bypasses it — see the "Processor-id
// cache" design note this package is grounded on: fabricating an
// approximate generation counter is explicitly out of bounds, so the
// honest choice is to always requery.
type Cache struct{}

// NewCache creates a Cache. Kept for API symmetry with GetCurrentProcessorID
// even though it currently holds nothing.
func NewCache() *Cache {
	return &Cache{}
}

// GetCurrentProcessorID returns the logical CPU id the calling goroutine's
// OS thread is currently running on. cache is accepted but always bypassed
// (see Cache's doc comment); every call performs the direct hardware/kernel
// query.
func GetCurrentProcessorID(cache *Cache) (ID, error) {
	return getCurrentProcessorID()
}

// GetMaximumProcessorID returns an upper bound on processor ids valid for
// the lifetime of the process. CPU hot-plug beyond this bound is out of
// scope, exactly as upstream documents.
func GetMaximumProcessorID() (ID, error) {
	return getMaximumProcessorID()
}
