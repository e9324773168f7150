// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package procid

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// getCurrentProcessorID is the direct hardware/kernel query strategy
// (analogous to the x86 cpuid leaves upstream uses): Linux publishes the
// current CPU directly through the getcpu(2) syscall. Called through
// unix.Syscall with unix.SYS_GETCPU rather than a convenience wrapper,
// since the unix package does not export one uniformly across
// architectures.
func getCurrentProcessorID() (ID, error) {
	var cpu, node uint32
	_, _, errno := unix.Syscall(unix.SYS_GETCPU, uintptr(unsafe.Pointer(&cpu)), uintptr(unsafe.Pointer(&node)), 0)
	if errno != 0 {
		return 0, fmt.Errorf("procid: getcpu: %w", errno)
	}
	return ID(cpu), nil
}

// getMaximumProcessorID uses the scheduling affinity mask of the whole
// process as the best available proxy for "how many logical CPUs could
// this process ever be scheduled onto" — runtime.NumCPU reports the
// machine's total, which can overcount when run under a cgroup or taskset
// restricting the process to fewer CPUs.
func getMaximumProcessorID() (ID, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return ID(runtime.NumCPU() - 1), nil
	}
	max := -1
	for i := 0; i < len(set)*64; i++ {
		if set.IsSet(i) {
			max = i
		}
	}
	if max < 0 {
		return ID(runtime.NumCPU() - 1), nil
	}
	return ID(max), nil
}
