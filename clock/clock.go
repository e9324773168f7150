// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package clock defines the pluggable clock contract spantrace's hot path
// depends on, plus a small set of concrete clocks.
//
// Every clock in this package shares one concrete sample representation
// (Sample, a uint64) rather than being generic per clock, unlike the
// templated ClockSample of the system this package is modeled on: every
// ring and storage adapter in package spantrace would otherwise need to be
// parametrized by clock-sample type for no benefit, since every clock this
// package ships samples to nanosecond-scale uint64 precision anyway.
package clock

// Sample is a clock's opaque, trivially-copyable snapshot. The producer
// path only ever calls Query to obtain one; interpreting it is deferred
// to MakeTimePoint at snapshot time.
type Sample = uint64

// TimePoint is a non-negative nanosecond count from a clock-specific,
// otherwise unspecified epoch. Total-ordered.
type TimePoint int64

// Monotonicity classifies how a clock's successive samples, taken from a
// single thread, relate to each other.
type Monotonicity uint8

const (
	// NotMonotonic clocks may move backward between any two samples, even
	// on one thread (e.g. a wall clock subject to NTP correction).
	NotMonotonic Monotonicity = iota
	// NonDecreasingPerThread clocks never move backward on a single
	// thread, but two samples may tie.
	NonDecreasingPerThread
	// StrictlyIncreasingPerThread clocks never move backward nor tie on a
	// single thread.
	StrictlyIncreasingPerThread
)

// Traits describes a clock's behavior, independent of any one sample.
type Traits struct {
	Monotonicity Monotonicity
}

// Clock is the contract every storage adapter and span guard requires.
// Query is called on the hot producer path and must be cheap; MakeTimePoint
// is only called during TakeAllSamples and may do bounded, arbitrary work
// (e.g. dividing by a timebase, or adding an epoch offset).
type Clock interface {
	Query() Sample
	MakeTimePoint(Sample) TimePoint
	Traits() Traits
}
