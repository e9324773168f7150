// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spantrace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.emberlane.com/spantrace"
	"code.emberlane.com/spantrace/clock"
)

func TestRememberCurrentThreadNameAppearsInSnapshot(t *testing.T) {
	storage := spantrace.NewGlobalStorage(16)
	clk := clock.NewFakeClock()
	cfg := spantrace.NewConfig(storage, clk)

	storage.RememberCurrentThreadNameForNextSnapshot()
	spantrace.Enter(cfg, "cat", "evt").End()

	snap, err := storage.TakeAllSamples(clk)
	require.NoError(t, err)

	tid := snap.At(0).ThreadID()
	if _, ok := snap.ThreadName(tid); !ok {
		t.Skip("thread-name facade unsupported or unnamed on this platform")
	}
}
