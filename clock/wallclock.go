// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clock

import (
	"time"

	"github.com/agilira/go-timecache"
)

// WallClock samples wall-clock time since the Unix epoch via a cached
// background reader, the same go-timecache.TimeCache agilira-lethe's
// logger uses to avoid a syscall on every log line. Subject to NTP steps
// and manual clock changes, so it is declared not monotonic,
// matching posix_gettimeofday_clock's traits in the system this package
// ports from.
type WallClock struct {
	cache *timecache.TimeCache
}

// NewWallClock starts a background reader refreshing at the given
// resolution. Callers should Close the clock when done with it to stop
// that goroutine.
func NewWallClock(resolution time.Duration) *WallClock {
	return &WallClock{cache: timecache.NewWithResolution(resolution)}
}

func (c *WallClock) Query() Sample {
	return Sample(c.cache.CachedTime().UnixNano())
}

// MakeTimePoint is the identity transform: Query already returns
// nanoseconds since the Unix epoch, which is this clock's reference.
func (c *WallClock) MakeTimePoint(s Sample) TimePoint {
	return TimePoint(s)
}

func (c *WallClock) Traits() Traits {
	return Traits{Monotonicity: NotMonotonic}
}

// Close stops the background cache-refresh goroutine.
func (c *WallClock) Close() {
	c.cache.Stop()
}
