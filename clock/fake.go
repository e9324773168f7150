// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clock

import "sync"

// FakeClock is a deterministic clock for tests, modeled on cxxtrace's
// fake_clock: each Query returns a caller-controlled value and then
// advances by a fixed increment (1ns by default).
type FakeClock struct {
	mu             sync.Mutex
	nextSample     Sample
	queryIncrement Sample
}

// NewFakeClock creates a clock whose first Query returns 0 and then
// advances by 1ns per call until reconfigured.
func NewFakeClock() *FakeClock {
	return &FakeClock{queryIncrement: 1}
}

func (c *FakeClock) Query() Sample {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.nextSample
	c.nextSample += c.queryIncrement
	return s
}

// MakeTimePoint is the identity transform: a FakeClock's sample already
// is a nanosecond count from its own reference.
func (c *FakeClock) MakeTimePoint(s Sample) TimePoint {
	return TimePoint(s)
}

func (c *FakeClock) Traits() Traits {
	return Traits{Monotonicity: StrictlyIncreasingPerThread}
}

// SetDurationBetweenSamples changes the amount each Query call advances
// the clock by.
func (c *FakeClock) SetDurationBetweenSamples(d Sample) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queryIncrement = d
}

// SetNextTimePoint pins the value the next Query call will return.
func (c *FakeClock) SetNextTimePoint(s Sample) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextSample = s
}
