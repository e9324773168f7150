// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package osthread

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

func currentThreadID() (ID, error) {
	return ID(unix.Gettid()), nil
}

func fetchNameOfCurrentThread() (string, error) {
	return readComm(fmt.Sprintf("%d", unix.Gettid()))
}

func fetchNameForID(tid ID) (string, error) {
	return readComm(fmt.Sprintf("%d", tid))
}

// readComm reads /proc/self/task/<tid>/comm, the kernel's own record of a
// thread's name (what pthread_setname_np/prctl(PR_SET_NAME) write), the
// same file cxxtrace would shell out to an OS-specific API for on other
// platforms.
func readComm(tid string) (string, error) {
	data, err := os.ReadFile("/proc/self/task/" + tid + "/comm")
	if err != nil {
		return "", fmt.Errorf("osthread: read thread name: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
