// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spantrace_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.emberlane.com/spantrace"
	"code.emberlane.com/spantrace/clock"
)

func TestGlobalStorageSingleSpanRoundTrip(t *testing.T) {
	storage := spantrace.NewGlobalStorage(16)
	clk := clock.NewFakeClock()
	cfg := spantrace.NewConfig(storage, clk)

	span := spantrace.Enter(cfg, "example", "main")
	span.End()

	snap, err := storage.TakeAllSamples(clk)
	require.NoError(t, err)
	require.Equal(t, 2, snap.Size())
	assert.Equal(t, spantrace.KindEnter, snap.At(0).Kind())
	assert.Equal(t, "main", snap.At(0).Name())
	assert.Equal(t, spantrace.KindExit, snap.At(1).Kind())
	assert.Less(t, snap.At(0).Timestamp(), snap.At(1).Timestamp())
}

func TestGlobalStorageNestedSpans(t *testing.T) {
	storage := spantrace.NewGlobalStorage(16)
	clk := clock.NewFakeClock()
	cfg := spantrace.NewConfig(storage, clk)

	outer := spantrace.Enter(cfg, "sort", "sort_grouped_lines")
	inner := spantrace.Enter(cfg, "sort", "sort group")
	inner.End()
	outer.End()

	snap, err := storage.TakeAllSamples(clk)
	require.NoError(t, err)
	require.Equal(t, 4, snap.Size())
	names := make([]string, snap.Size())
	for i := 0; i < snap.Size(); i++ {
		names[i] = snap.At(i).Name()
	}
	assert.Equal(t, []string{"sort_grouped_lines", "sort group", "sort group", "sort_grouped_lines"}, names)
}

func TestPerThreadStorageOverflowKeepsNewest(t *testing.T) {
	storage := spantrace.NewPerThreadStorage(4)
	clk := clock.NewFakeClock()
	cfg := spantrace.NewConfig(storage, clk)

	for i := 0; i < 10; i++ {
		spantrace.Enter(cfg, "cat", "evt").End()
	}

	snap, err := storage.TakeAllSamples(clk)
	require.NoError(t, err)
	assert.LessOrEqual(t, snap.Size(), 4)
	// Ten spans take FakeClock samples 0..19; the newest one survives.
	require.NotZero(t, snap.Size())
	assert.Equal(t, clock.TimePoint(19), snap.At(snap.Size()-1).Timestamp())
}

func TestGlobalStorageConcurrentProducers(t *testing.T) {
	storage := spantrace.NewGlobalStorage(4096)
	clk := clock.NewFakeClock()
	cfg := spantrace.NewConfig(storage, clk)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				spantrace.Enter(cfg, "cat", "evt").End()
			}
		}()
	}
	wg.Wait()

	snap, err := storage.TakeAllSamples(clk)
	require.NoError(t, err)
	assert.LessOrEqual(t, snap.Size(), 4096)
}

func TestUnboundedStorageNeverDrops(t *testing.T) {
	storage := spantrace.NewUnbounded()
	clk := clock.NewFakeClock()
	cfg := spantrace.NewConfig(storage, clk)

	for i := 0; i < 1000; i++ {
		spantrace.Enter(cfg, "cat", "evt").End()
	}

	snap, err := storage.TakeAllSamples(clk)
	require.NoError(t, err)
	assert.Equal(t, 2000, snap.Size())
}

func TestResetDiscardsSamples(t *testing.T) {
	storage := spantrace.NewGlobalStorage(16)
	clk := clock.NewFakeClock()
	cfg := spantrace.NewConfig(storage, clk)

	spantrace.Enter(cfg, "cat", "evt").End()
	storage.Reset()

	snap, err := storage.TakeAllSamples(clk)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Size())
}
