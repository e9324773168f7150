// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// pad is cache line padding to prevent false sharing between hot atomic
// fields owned by different cores.
type pad [64]byte

// padShort pads a slot after one 8-byte cycle/sequence field.
type padShort [64 - 8]byte
