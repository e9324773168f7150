// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spantrace

import "code.emberlane.com/spantrace/clock"

// Span is a scope guard for one enter/exit pair, modeled on
// runtime/trace's StartRegion/End idiom rather than the non-copyable,
// non-movable C++ RAII guard it translates: Go has no destructor, so the
// guard's End must be called explicitly. A Span must not be copied and
// End must be called exactly once, ordinarily via defer immediately after
// Enter.
type Span struct {
	storage  Storage
	clk      clock.Clock
	category string
	name     string
}

// Enter pushes an Enter sample for category/name and returns a guard
// whose End pushes the matching Exit sample.
func Enter(cfg Config, category, name string) *Span {
	storage := cfg.Storage()
	clk := cfg.Clock()
	storage.AddSample(category, name, KindEnter, clk.Query())
	return &Span{storage: storage, clk: clk, category: category, name: name}
}

// End pushes the Exit sample matching this Span's Enter. Calling End more
// than once records multiple Exit samples; callers should call it exactly
// once, typically via defer.
func (s *Span) End() {
	s.storage.AddSample(s.category, s.name, KindExit, s.clk.Query())
}
