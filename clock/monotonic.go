// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clock

import "time"

// MonotonicClock samples time.Now's monotonic reading relative to a fixed
// reference captured at construction. Go's runtime strips the wall clock
// out of time.Since arithmetic whenever both operands carry a monotonic
// reading (see the "Monotonic Clocks" section of the time package docs),
// which is the same property apple_absolute_time_clock leans on via
// mach_absolute_time: a free-running counter immune to wall-clock steps.
type MonotonicClock struct {
	reference time.Time
}

// NewMonotonicClock creates a clock whose zero sample is "now".
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{reference: time.Now()}
}

func (c *MonotonicClock) Query() Sample {
	return Sample(time.Since(c.reference).Nanoseconds())
}

// MakeTimePoint is the identity transform: Query already returns
// nanoseconds since this clock's reference instant.
func (c *MonotonicClock) MakeTimePoint(s Sample) TimePoint {
	return TimePoint(s)
}

func (c *MonotonicClock) Traits() Traits {
	// Go's monotonic reading has nanosecond field width but platform
	// resolution can be coarser (e.g. tens of nanoseconds), so two Query
	// calls in tight succession may tie. Declared non-decreasing, not
	// strictly increasing.
	return Traits{Monotonicity: NonDecreasingPerThread}
}
