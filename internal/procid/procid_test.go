// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package procid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.emberlane.com/spantrace/internal/procid"
)

func TestGetMaximumProcessorIDNonNegative(t *testing.T) {
	max, err := procid.GetMaximumProcessorID()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, int(max), 0)
}

func TestGetCurrentProcessorIDWithinBound(t *testing.T) {
	max, err := procid.GetMaximumProcessorID()
	require.NoError(t, err)

	id, err := procid.GetCurrentProcessorID(procid.NewCache())
	if err != nil {
		t.Skipf("processor-id query unsupported on this platform: %v", err)
	}
	assert.LessOrEqual(t, id, max)
}
