// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package osthread is the platform-gated facade over OS thread identity
// and thread-name queries that spantrace's thread-name set depends on.
//
// Go goroutines are not pinned to OS threads: a goroutine can migrate
// between OS threads across any function call that may block or yield.
// ID therefore identifies the OS thread that happened to be running the
// calling goroutine at the moment of the call, not the goroutine itself.
// Callers that need a stable id across the lifetime of a span should pin
// with runtime.LockOSThread, the same caveat cxxtrace places on its users
// implicitly by being single-threaded-per-thread_id C++ code.
package osthread

// ID is the OS-native thread identifier type, wide enough for Linux's
// 32-bit tid and still safely representable should a 64-bit platform
// facade be added later.
type ID = uint64

// CurrentThreadID returns the id of the OS thread currently running the
// calling goroutine.
func CurrentThreadID() (ID, error) {
	return currentThreadID()
}

// FetchNameOfCurrentThread queries the OS for the calling thread's
// currently-set name. May return the empty string.
func FetchNameOfCurrentThread() (string, error) {
	return fetchNameOfCurrentThread()
}

// FetchNameForID queries the OS for the name of any thread belonging to
// this process, by id. May return the empty string.
func FetchNameForID(tid ID) (string, error) {
	return fetchNameForID(tid)
}
