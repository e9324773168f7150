// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package procid

import (
	"errors"
	"runtime"
)

// ErrUnsupported is returned by getCurrentProcessorID on platforms with no
// wired-up direct processor-id query. Per error taxonomy case 5, callers
// treat this as "unknown" (processor id 0) and log it at most once.
var ErrUnsupported = errors.New("procid: no processor-id query wired up for this platform")

func getCurrentProcessorID() (ID, error) {
	return 0, ErrUnsupported
}

func getMaximumProcessorID() (ID, error) {
	return ID(runtime.NumCPU() - 1), nil
}
