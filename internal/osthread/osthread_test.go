// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package osthread_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code.emberlane.com/spantrace/internal/osthread"
)

func TestCurrentThreadIDNonZeroWhenSupported(t *testing.T) {
	tid, err := osthread.CurrentThreadID()
	if err != nil {
		t.Skipf("thread facade unsupported on this platform: %v", err)
	}
	assert.NotZero(t, tid)
}

func TestFetchNameOfCurrentThreadDoesNotError(t *testing.T) {
	_, err := osthread.FetchNameOfCurrentThread()
	if err != nil {
		t.Skipf("thread facade unsupported on this platform: %v", err)
	}
}
