// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spantrace

import "code.emberlane.com/spantrace/clock"

// Config binds a Storage adapter to the Clock span guards should sample
// from. Direct translation of default_config: a thin, immutable pairing,
// not a general-purpose options object.
type Config interface {
	Storage() Storage
	Clock() clock.Clock
}

type defaultConfig struct {
	storage Storage
	clk     clock.Clock
}

// NewConfig pairs a Storage adapter with the Clock every span entered
// through this Config samples from.
func NewConfig(storage Storage, clk clock.Clock) Config {
	return &defaultConfig{storage: storage, clk: clk}
}

func (c *defaultConfig) Storage() Storage { return c.storage }
func (c *defaultConfig) Clock() clock.Clock { return c.clk }
