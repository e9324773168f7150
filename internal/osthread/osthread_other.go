// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package osthread

import "errors"

// ErrUnsupported is returned by every query on platforms with no wired-up
// thread-id/thread-name facade. Per error taxonomy case 5, callers treat
// this as "unknown" (empty name) and log it at most once.
var ErrUnsupported = errors.New("osthread: no thread facade wired up for this platform")

func currentThreadID() (ID, error) {
	return 0, ErrUnsupported
}

func fetchNameOfCurrentThread() (string, error) {
	return "", ErrUnsupported
}

func fetchNameForID(ID) (string, error) {
	return "", ErrUnsupported
}
